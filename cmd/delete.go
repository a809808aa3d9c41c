package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
)

// deleteCmd represents the delete command.
var deleteCmd = newDeleteCmd()
var deleteFlags changeFlags

func newDeleteCmd() *cobra.Command {
	return newChangeCmd("delete", "Delete debug statements",
		`Delete debug statements, multi-line calls included. Every other line,
blank lines around a removed statement among them, is kept as is.`,
		&deleteFlags,
		func(ctx context.Context, args domain.ChangeArgs) error {
			return workflow.Delete(ctx, args)
		})
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
