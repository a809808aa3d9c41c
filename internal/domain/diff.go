package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// unifiedDiff renders a change the way `diff -u` would.
func unifiedDiff(c m.Change) (string, error) {
	path := string(c.Source.File.Path)

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(c.Before),
		B:        difflib.SplitLines(c.After),
		FromFile: path,
		ToFile:   path,
		FromDate: "original",
		ToDate:   c.Action.Verb(),
		Context:  3,
	})
}
