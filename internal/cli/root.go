package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "offspring [file]",
		Short: "Offspring builds and queries a family tree of named people",
		Long: `Offspring builds and queries a family tree of named people.

Records are lines of comma separated names: the first name is the parent and
the rest are its children. Without a subcommand, offspring loads the optional
file and starts the interactive shell.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, args)
		},
	}

	rootCmd.PersistentFlags().String(common.FlagConfig, "", "Path to the configuration file (default ~/.offspring/config.json)")
	rootCmd.PersistentFlags().Bool(common.FlagDebug, false, "Show debug output")
	rootCmd.PersistentFlags().Int(common.FlagMaxNodes, 0, "Maximum number of people in the tree, 0 for no limit")

	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newSizeCmd())
	rootCmd.AddCommand(newHeightCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
