package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/runtime"
	"offspring.dev/offspring/internal/tui"
)

// newBrowseCmd creates the browse command
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse the family tree interactively",
		Long: `Browse the family tree in breadth-first order.

Move with the arrow keys, press enter to list the selected person's
descendants and q to quit. With OFFSPRING_DEMO set and no file, a sample
family is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("browse requires an interactive terminal; use print or show instead")
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				path := ""
				if len(args) == 1 {
					path = args[0]
				}
				session, err := ctx.LoadSession(path, false)
				if err != nil {
					return err
				}
				root := session.Root()
				defer ctx.Engine.Destroy(root)

				if root == nil {
					ctx.Splog.Info("Tree is empty.")
					return nil
				}

				ctx.Splog.SetQuiet(true)
				defer ctx.Splog.SetQuiet(false)
				return tui.RunBrowseTUI(root, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}
