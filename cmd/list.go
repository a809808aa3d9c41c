package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
	m "github.com/mouse-blink/dbgc/internal/model"
)

const listLongDescription = `List debug statements without changing any file.

Statements suppressed with a "dbgc:ignore" comment are shown and marked as
ignored. With --save a YAML report per file is written to the reports
directory; --changed then limits the scan to files that changed since.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listAllFlag bool
var listSaveFlag bool
var listChangedFlag bool
var listNoRecursiveFlag bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List debug statements",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs: scanArgs(args, listExcludeFlags, listAllFlag, !listNoRecursiveFlag),
				Reports:  m.Path(reportsOutputDirFlag),
				Save:     listSaveFlag,
				Changed:  listChangedFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "flag every output call, not only debug ones")
	cmd.Flags().BoolVarP(&listSaveFlag, "save", "s", false, "save a report per file to the reports directory")
	cmd.Flags().BoolVar(&listChangedFlag, "changed", false, "only scan files changed since the saved reports")
	cmd.Flags().BoolVar(&listNoRecursiveFlag, "no-recursive", false, "do not descend into subdirectories")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
