package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/config"
	"offspring.dev/offspring/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set user configuration",
		Long: `Get and set user configuration values.

Keys: max-nodes, prompt, delimiter, log-file.

Examples:
  offspring config get max-nodes
  offspring config set max-nodes 1000
  offspring config set delimiter ";"`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"max-nodes", "prompt", "delimiter", "log-file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key := args[0]
				switch key {
				case "max-nodes":
					maxNodes, err := config.GetMaxNodes(ctx.ConfigPath)
					if err != nil {
						return fmt.Errorf("failed to get max-nodes: %w", err)
					}
					ctx.Splog.Info("%d", maxNodes)
				case "prompt":
					ctx.Splog.Info("%q", ctx.Prompt)
				case "delimiter":
					ctx.Splog.Info("%q", ctx.Delimiter)
				case "log-file":
					logFile, err := config.GetLogFile(ctx.ConfigPath)
					if err != nil {
						return fmt.Errorf("failed to get log-file: %w", err)
					}
					ctx.Splog.Info("%s", logFile)
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}
				return nil
			})
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"max-nodes", "prompt", "delimiter", "log-file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key := args[0]
				value := args[1]

				switch key {
				case "max-nodes":
					maxNodes, err := strconv.Atoi(value)
					if err != nil || maxNodes < 0 {
						return fmt.Errorf("invalid value for max-nodes: %s (must be a non-negative integer)", value)
					}
					if err := config.SetMaxNodes(ctx.ConfigPath, maxNodes); err != nil {
						return fmt.Errorf("failed to set max-nodes: %w", err)
					}
					ctx.Splog.Info("Set max-nodes to: %d", maxNodes)
				case "prompt":
					if err := config.SetPrompt(ctx.ConfigPath, value); err != nil {
						return fmt.Errorf("failed to set prompt: %w", err)
					}
					ctx.Splog.Info("Set prompt to: %q", value)
				case "delimiter":
					if value == "" {
						return fmt.Errorf("invalid value for delimiter: must not be empty")
					}
					if err := config.SetDelimiter(ctx.ConfigPath, value); err != nil {
						return fmt.Errorf("failed to set delimiter: %w", err)
					}
					ctx.Splog.Info("Set delimiter to: %q", value)
				case "log-file":
					if err := config.SetLogFile(ctx.ConfigPath, value); err != nil {
						return fmt.Errorf("failed to set log-file: %w", err)
					}
					ctx.Splog.Info("Set log-file to: %s", value)
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}

				return nil
			})
		},
	}

	return cmd
}
