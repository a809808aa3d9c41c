package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
)

// changeFlags holds the flags shared by delete, off and on.
type changeFlags struct {
	yes         bool
	all         bool
	interactive bool
	dryRun      bool
	noRecursive bool
	exclude     []string
}

func (f *changeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "flag every output call, not only debug ones")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "pick the statements to change")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "d", false, "show a diff instead of changing files")
	cmd.Flags().BoolVar(&f.noRecursive, "no-recursive", false, "do not descend into subdirectories")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.MarkFlagsMutuallyExclusive("yes", "interactive")
}

func (f *changeFlags) args(paths []string) domain.ChangeArgs {
	return domain.ChangeArgs{
		ScanArgs:    scanArgs(paths, f.exclude, f.all, !f.noRecursive),
		Yes:         f.yes,
		Interactive: f.interactive,
		DryRun:      f.dryRun,
	}
}

func newChangeCmd(use, short, long string, flags *changeFlags, run func(context.Context, domain.ChangeArgs) error) *cobra.Command {
	*flags = changeFlags{}

	cmd := &cobra.Command{
		Use:   use + " [paths...]",
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags.args(args))
		},
	}
	flags.bind(cmd)

	return cmd
}
