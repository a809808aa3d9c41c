package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
)

// onCmd represents the on command.
var onCmd = newOnCmd()
var onFlags changeFlags

func newOnCmd() *cobra.Command {
	return newChangeCmd("on", "Uncomment debug statements",
		`Uncomment debug statements that were commented out with line comments.`,
		&onFlags,
		func(ctx context.Context, args domain.ChangeArgs) error {
			return workflow.On(ctx, args)
		})
}

func init() {
	rootCmd.AddCommand(onCmd)
}
