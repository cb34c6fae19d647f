package cli

import (
	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/output"
	"offspring.dev/offspring/internal/runtime"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <file> [name]",
		Short: "Write the family tree as nested YAML or JSON",
		Long: `Write the family tree, or the part below a person, as a nested document.

Every person is written with their name, generation and children.`,
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
					return err
				}
				return output.ExportTree(cmd.OutOrStdout(), node, format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", output.FormatYAML, "Output format: yaml or json")

	return cmd
}
