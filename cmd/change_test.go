package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dbgc/internal/domain"
	domainmocks "github.com/mouse-blink/dbgc/internal/domain/mocks"
	m "github.com/mouse-blink/dbgc/internal/model"
)

type changeCase struct {
	name   string
	newCmd func() *cobra.Command
	expect func(w *domainmocks.MockWorkflow, matcher interface{}) *mock.Call
}

func changeCases() []changeCase {
	return []changeCase{
		{"delete", newDeleteCmd, func(w *domainmocks.MockWorkflow, matcher interface{}) *mock.Call {
			return w.EXPECT().Delete(mock.Anything, matcher).Return(nil).Call
		}},
		{"off", newOffCmd, func(w *domainmocks.MockWorkflow, matcher interface{}) *mock.Call {
			return w.EXPECT().Off(mock.Anything, matcher).Return(nil).Call
		}},
		{"on", newOnCmd, func(w *domainmocks.MockWorkflow, matcher interface{}) *mock.Call {
			return w.EXPECT().On(mock.Anything, matcher).Return(nil).Call
		}},
	}
}

func TestChangeCmds_Defaults(t *testing.T) {
	for _, tc := range changeCases() {
		t.Run(tc.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)

			cmd := newTestRootCmd(tc.newCmd())

			tc.expect(mockWorkflow, mock.MatchedBy(func(args domain.ChangeArgs) bool {
				return !args.Yes && !args.Interactive && !args.DryRun && !args.All &&
					args.Recursive && len(args.Paths) == 1 && args.Paths[0] == m.Path("src")
			})).Once()

			cmd.SetArgs([]string{tc.name, "src"})
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestChangeCmds_Flags(t *testing.T) {
	for _, tc := range changeCases() {
		t.Run(tc.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)

			cmd := newTestRootCmd(tc.newCmd())

			tc.expect(mockWorkflow, mock.MatchedBy(func(args domain.ChangeArgs) bool {
				return args.Yes && args.DryRun && args.All && !args.Recursive &&
					len(args.Exclude) == 1 && args.Exclude[0] == "gen" && args.Threads == 3
			})).Once()

			cmd.SetArgs([]string{tc.name, "-y", "-d", "-a", "--no-recursive", "-x", "gen", "-p", "3"})
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestChangeCmds_Interactive(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newDeleteCmd())

	mockWorkflow.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(args domain.ChangeArgs) bool {
		return args.Interactive && !args.Yes
	})).Return(nil).Once()

	cmd.SetArgs([]string{"delete", "-i"})
	require.NoError(t, cmd.Execute())
}

func TestChangeCmds_YesAndInteractiveConflict(t *testing.T) {
	withMockWorkflow(t)

	cmd := newTestRootCmd(newOffCmd())

	cmd.SetArgs([]string{"off", "-y", "-i"})
	require.Error(t, cmd.Execute())
}
