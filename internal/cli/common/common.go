// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/engine"
	"offspring.dev/offspring/internal/runtime"
)

// Persistent flag names shared by every command
const (
	FlagConfig   = "config"
	FlagDebug    = "debug"
	FlagMaxNodes = "max-nodes"
)

// ContextOptions builds runtime options from the persistent flags and the
// command's output streams
func ContextOptions(cmd *cobra.Command) runtime.Options {
	opts := runtime.Options{
		MaxNodes: -1,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}
	flags := cmd.Flags()
	if v, err := flags.GetString(FlagConfig); err == nil {
		opts.ConfigPath = v
	}
	if v, err := flags.GetBool(FlagDebug); err == nil {
		opts.Debug = v
	}
	if flags.Changed(FlagMaxNodes) {
		if v, err := flags.GetInt(FlagMaxNodes); err == nil {
			opts.MaxNodes = v
		}
	}
	return opts
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.NewContext(ContextOptions(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// CompleteNames is a helper for cobra.ValidArgsFunction that returns every
// name in the tree loaded from the first argument.
func CompleteNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	var names []string
	err := Run(cmd, func(ctx *runtime.Context) error {
		ctx.Splog.SetQuiet(true)
		session, err := ctx.LoadSession(args[0], false)
		if err != nil {
			return err
		}
		for node := range engine.BreadthFirst(session.Root()) {
			names = append(names, node.Name())
		}
		ctx.Engine.Destroy(session.Root())
		return nil
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
