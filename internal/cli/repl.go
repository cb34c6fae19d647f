package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/runtime"
	"offspring.dev/offspring/internal/utils"
)

// newREPLCmd creates the repl command
func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [file]",
		Short: "Load an optional file and start the interactive shell",
		Long: `Load an optional file of records and start the interactive shell.

Type help at the prompt for the list of commands. End of input behaves like quit.`,
		Aliases: []string{"shell"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, args)
		},
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		return fmt.Errorf("the shell reads commands from standard input; pass a file path instead of -")
	}

	return common.Run(cmd, func(ctx *runtime.Context) error {
		session, err := ctx.LoadSession(path, utils.IsInteractive())
		if err != nil {
			return err
		}
		return session.Run(cmd.Context(), cmd.InOrStdin())
	})
}
