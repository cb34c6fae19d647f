package cli

import (
	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/output"
	"offspring.dev/offspring/internal/runtime"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	var (
		steps     int
		showDepth bool
		showSize  bool
		highlight string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "show <file> [name]",
		Short: "Draw the family tree, or the part below a person",
		Long: `Draw the family tree with box-drawing connectors, one person per line.

Each generation gets its own color. Pass a name to draw only that person and
their descendants.`,
		Aliases:           []string{"tree"},
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				session, err := ctx.LoadSession(args[0], false)
				if err != nil {
					return err
				}
				root := session.Root()
				defer ctx.Engine.Destroy(root)

				name := ""
				if len(args) > 1 {
					name = args[1]
				}
				node, err := ctx.Engine.Find(root, name)
				if err != nil {
					if root == nil {
						ctx.Splog.Info("Tree is empty.")
						return nil
					}
					ctx.Splog.Info("'%s' is not part of the family tree.", name)
					return nil
				}

				opts := output.TreeRenderOptions{
					ShowDepth: showDepth,
					ShowSize:  showSize,
					Highlight: highlight,
					NoColor:   noColor,
				}
				if steps > 0 {
					opts.Steps = &steps
				}

				for _, line := range output.NewFamilyTreeRenderer(opts).Render(node) {
					ctx.Splog.Info(line)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Only show this many generations below the start")
	cmd.Flags().BoolVarP(&showDepth, "depth", "d", false, "Show each person's generation")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "Show how many descendants each person has")
	cmd.Flags().StringVar(&highlight, "highlight", "", "Emphasize the person with this name")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")

	return cmd
}
