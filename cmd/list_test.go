package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dbgc/internal/domain"
)

func TestListCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Recursive && !args.All && !args.Save && !args.Changed && len(args.Exclude) == 0
	})).Return(nil).Once()

	cmd.SetArgs([]string{"list", "."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Exclude) == 2 && args.Exclude[0] == "^vendor/" && args.Exclude[1] == `_test\.go$`
	})).Return(nil).Once()

	cmd.SetArgs([]string{"list", "-x", "^vendor/", "--exclude", `_test\.go$`, "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_SaveChangedAll(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd(newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Save && args.Changed && args.All && !args.Recursive && args.Reports == "reports"
	})).Return(nil).Once()

	cmd.SetArgs([]string{"--reports", "reports", "list", "--save", "--changed", "-a", "--no-recursive"})
	require.NoError(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)

	for _, name := range []string{"exclude", "all", "save", "changed", "no-recursive"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}
