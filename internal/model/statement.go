package model

// Tag classifies a single byte of source text.
type Tag uint8

const (
	// TagNormal is executable code.
	TagNormal Tag = iota
	// TagLineComment is part of a line comment, delimiter included.
	TagLineComment
	// TagBlockComment is part of a block comment, delimiters included.
	TagBlockComment
	// TagString is part of a string literal, quotes included.
	TagString
)

// IsComment reports whether the tag marks comment text.
func (t Tag) IsComment() bool {
	return t == TagLineComment || t == TagBlockComment
}

// Kind is the category of a logical statement.
type Kind string

const (
	// KindCode is a statement with executable tokens.
	KindCode Kind = "code"
	// KindComment is a statement made only of comment text.
	KindComment Kind = "comment"
	// KindBlank is a run of whitespace-only lines outside any statement.
	KindBlank Kind = "blank"
)

// Statement is one or more physical lines forming a single unit.
type Statement struct {
	StartLine int // 1-based, inclusive
	EndLine   int // 1-based, inclusive
	Text      string
	Kind      Kind
}

// Lines returns the number of physical lines covered by the statement.
func (s Statement) Lines() int {
	return s.EndLine - s.StartLine + 1
}

// Span returns the line range covered by the statement.
func (s Statement) Span() Span {
	return Span{StartLine: s.StartLine, EndLine: s.EndLine}
}

// Classification is the verdict for a code statement.
type Classification struct {
	IsDebug       bool
	MatchedMarker string // marker or call name that triggered the match
	Target        string // the statement's own call target, if any
	Ignored       bool   // suppressed by a dbgc:ignore directive
}

// Finding pairs a statement with its classification.
type Finding struct {
	Path      Path
	Statement Statement
	Classification
}

// Actionable reports whether the finding may be changed on disk.
func (f Finding) Actionable() bool {
	return f.IsDebug && !f.Ignored
}

// Span is an inclusive, 1-based line range.
type Span struct {
	StartLine int
	EndLine   int
}

// Contains reports whether line falls within the span.
func (s Span) Contains(line int) bool {
	return line >= s.StartLine && line <= s.EndLine
}

// Lines is the number of lines covered by the span.
func (s Span) Lines() int {
	return s.EndLine - s.StartLine + 1
}
