package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
	m "github.com/mouse-blink/dbgc/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View saved debug statement reports",
		Long:  "View reports saved by \"dbgc list --save\". Reports whose file changed since are marked stale.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
