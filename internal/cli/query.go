package cli

import (
	"github.com/spf13/cobra"

	"offspring.dev/offspring/internal/cli/common"
	"offspring.dev/offspring/internal/repl"
	"offspring.dev/offspring/internal/runtime"
)

// runQuery loads the file in args[0] and applies fn to the optional name in args[1]
func runQuery(cmd *cobra.Command, args []string, fn func(session *repl.Session, name string)) error {
	return common.Run(cmd, func(ctx *runtime.Context) error {
		session, err := ctx.LoadSession(args[0], false)
		if err != nil {
			return err
		}
		defer ctx.Engine.Destroy(session.Root())

		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		fn(session, name)
		return nil
	})
}

// newPrintCmd creates the print command
func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file> [name]",
		Short: "Print who had which children, generation by generation",
		Long: `Print one line per person in breadth-first order, listing their children.

Starts at the root unless a name is given.`,
		Aliases:           []string{"p"},
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, (*repl.Session).Print)
		},
	}
}

// newFindCmd creates the find command
func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "find <file> <name>",
		Short:             "Check whether a person is in the tree and list their descendants",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: common.CompleteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, (*repl.Session).Find)
		},
	}
}

// newSizeCmd creates the size command
func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "size <file> [name]",
		Short:             "Count the descendants of a person, the root by default",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, (*repl.Session).Size)
		},
	}
}

// newHeightCmd creates the height command
func newHeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "height <file> [name]",
		Short:             "Show how many generations separate a person from the root",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, (*repl.Session).Height)
		},
	}
}
