package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/domain"
)

// offCmd represents the off command.
var offCmd = newOffCmd()
var offFlags changeFlags

func newOffCmd() *cobra.Command {
	return newChangeCmd("off", "Comment out debug statements",
		`Comment out debug statements. Each line of a statement gets the
language's line comment token after its indentation; "dbgc on" reverses it.`,
		&offFlags,
		func(ctx context.Context, args domain.ChangeArgs) error {
			return workflow.Off(ctx, args)
		})
}

func init() {
	rootCmd.AddCommand(offCmd)
}
