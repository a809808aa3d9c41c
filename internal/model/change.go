package model

// Change is the rewrite of one file for an action.
type Change struct {
	Source   Source
	Action   Action
	Before   string
	After    string
	Findings []Finding // findings the rewrite applies
}

// Summary is the outcome of a workflow run.
type Summary struct {
	Action   Action
	DryRun   bool
	Files    int // files analyzed
	Changed  int // files rewritten, or that would be with DryRun
	Findings int // actionable findings
	Ignored  int // findings suppressed by dbgc:ignore
	Skipped  int // files not analyzed or not written
}
