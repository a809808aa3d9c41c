// Package controller provides the terminal front-ends of dbgc.
package controller

import (
	m "github.com/mouse-blink/dbgc/internal/model"
)

// UI defines what the workflow needs from a front-end.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayFindings lists the debug findings of every analyzed file.
	DisplayFindings(results []m.FileResult) error
	// SelectFindings lets the user pick which findings to change.
	SelectFindings(findings []m.Finding) ([]m.Finding, error)
	// Confirm asks a yes/no question; anything but yes is a no.
	Confirm(prompt string) (bool, error)
	DisplayDiff(path m.Path, diff string)
	DisplayWarning(message string)
	DisplaySummary(summary m.Summary)
	// DisplayReports lists saved reports; stale marks sources that changed
	// since the report was written.
	DisplayReports(reports []m.Report, stale map[m.Path]bool) error
}

// counts tallies the findings of one file.
type counts struct {
	debug   int
	ignored int
}

func countFindings(findings []m.Finding) counts {
	var c counts

	for _, f := range findings {
		switch {
		case f.Actionable():
			c.debug++
		case f.IsDebug && f.Ignored:
			c.ignored++
		}
	}

	return c
}

// findingLines splits a finding's text into numbered physical lines.
func findingLines(f m.Finding) []numberedLine {
	lines := splitKeepEmpty(f.Statement.Text)
	out := make([]numberedLine, 0, len(lines))

	for i, l := range lines {
		out = append(out, numberedLine{num: f.Statement.StartLine + i, text: l})
	}

	return out
}

type numberedLine struct {
	num  int
	text string
}
