package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Delimiters is an open/close pair, used for block comments.
type Delimiters struct {
	Open  string
	Close string
}

// QuoteRule describes one kind of string literal. Delimiter opens the
// literal and Close ends it, defaulting to Delimiter. Escape is 0 for raw
// literals.
type QuoteRule struct {
	Delimiter string
	Close     string
	Escape    byte
	Multiline bool // literal may span lines without an escaped newline
	// Char restricts the literal to a single character or escape sequence.
	// A delimiter not followed by one, such as a Rust lifetime, stays code.
	Char bool
}

// Closer returns the delimiter that ends the literal.
func (q QuoteRule) Closer() string {
	if q.Close != "" {
		return q.Close
	}

	return q.Delimiter
}

// Profile is the static lexical description of a language. It is read-only
// once built.
type Profile struct {
	Name       string
	Extensions []string

	LineComment      string
	BlockComment     *Delimiters
	Quotes           []QuoteRule
	LineContinuation string
	Terminator       string
	// CommentSplicing extends a line comment onto the next line when it ends
	// with LineContinuation, as the C preprocessor does.
	CommentSplicing bool

	// ContinuationSuffixes keep a statement open when its last code token
	// is one of them. ContinuationPrefixes glue a line that starts with one
	// of them onto the previous unterminated statement.
	ContinuationSuffixes []string
	ContinuationPrefixes []string

	OutputCalls  []string
	DebugCalls   []string
	DebugMarkers []string
}

// IsZero reports whether the profile carries no lexical rules at all.
func (p Profile) IsZero() bool {
	return p.Name == "" && p.LineComment == "" && p.BlockComment == nil && len(p.Quotes) == 0
}

// Matches reports whether the profile handles files with the extension of path.
func (p Profile) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}

	for _, e := range p.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}

	return false
}

// ErrUnsupportedLanguage is returned when no profile is available for a file.
type ErrUnsupportedLanguage struct {
	Extension string
}

func (e *ErrUnsupportedLanguage) Error() string {
	if e.Extension == "" {
		return "unsupported language"
	}

	return fmt.Sprintf("unsupported language: %s", e.Extension)
}

// ProfileSet is the set of profiles available to a run.
type ProfileSet struct {
	Profiles []Profile
}

// ByName returns the profile called name.
func (s ProfileSet) ByName(name string) (Profile, bool) {
	for _, p := range s.Profiles {
		if p.Name == name {
			return p, true
		}
	}

	return Profile{}, false
}

// ForPath selects the profile for a file by its extension.
func (s ProfileSet) ForPath(path string) (Profile, error) {
	for _, p := range s.Profiles {
		if p.Matches(path) {
			return p, nil
		}
	}

	return Profile{}, &ErrUnsupportedLanguage{Extension: filepath.Ext(path)}
}

// Extensions lists every extension handled by the set.
func (s ProfileSet) Extensions() []string {
	var exts []string

	for _, p := range s.Profiles {
		exts = append(exts, p.Extensions...)
	}

	return exts
}
