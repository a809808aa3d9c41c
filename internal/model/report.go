package model

import "time"

// Action is the change applied to debug statements.
type Action string

const (
	// ActionList only reports findings.
	ActionList Action = "list"
	// ActionDelete removes debug statements.
	ActionDelete Action = "delete"
	// ActionCommentOut comments debug statements out.
	ActionCommentOut Action = "off"
	// ActionUncomment restores commented-out debug statements.
	ActionUncomment Action = "on"
)

// Verb returns the human readable form of the action.
func (a Action) Verb() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionCommentOut:
		return "comment out"
	case ActionUncomment:
		return "uncomment"
	default:
		return "list"
	}
}

// FileResult holds the findings for a single source file.
type FileResult struct {
	Source   Source
	Content  string
	Findings []Finding
	Err      error // unsupported language or read failure
}

// Report is the persisted outcome of a scan of one file.
type Report struct {
	Source    Source
	Action    Action
	CreatedAt time.Time
	Findings  []Finding
}
