package detector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dbgc/internal/adapter"
	m "github.com/mouse-blink/dbgc/internal/model"
)

func profileFor(t *testing.T, name string) m.Profile {
	t.Helper()

	set, err := adapter.DefaultProfiles()
	require.NoError(t, err)

	p, ok := set.ByName(name)
	require.True(t, ok, "missing built-in profile %s", name)

	return p
}

func newDetector(t *testing.T, name string, opts ...Option) *Detector {
	t.Helper()

	d, err := New(profileFor(t, name), opts...)
	require.NoError(t, err)

	return d
}

func debugSpans(findings []m.Finding) []m.Span {
	spans := Spans(findings)
	if spans == nil {
		return []m.Span{}
	}

	return spans
}
