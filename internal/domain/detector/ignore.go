package detector

import (
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

const (
	ignoreDirective = "dbgc:ignore"
	ignoreFileScope = "-file"
)

type ignoreScope uint8

const (
	ignoreStatement ignoreScope = iota
	ignoreFile
)

func (d *Detector) parseIgnoreDirective(commentText string) (ignoreScope, bool) {
	s := strings.TrimSpace(commentText)

	if tok := d.profile.LineComment; tok != "" && strings.HasPrefix(s, tok) {
		s = strings.TrimSpace(strings.TrimLeft(s, tok))
	} else if bc := d.profile.BlockComment; bc != nil && strings.HasPrefix(s, bc.Open) {
		s = strings.TrimSpace(strings.TrimPrefix(s, bc.Open))
		s = strings.TrimSpace(strings.TrimSuffix(s, bc.Close))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreStatement, false
	}

	if strings.HasPrefix(s[len(ignoreDirective):], ignoreFileScope) {
		return ignoreFile, true
	}

	return ignoreStatement, true
}

// ignoreIndex records which statements carry a dbgc:ignore directive.
type ignoreIndex struct {
	file  bool
	units map[int]struct{}
}

func (ix ignoreIndex) ignores(unitIdx int) bool {
	if ix.file {
		return true
	}

	_, ok := ix.units[unitIdx]

	return ok
}

// buildIgnoreIndex resolves directives. A directive inside a code statement
// covers that statement; one on the last line of a comment block covers the
// statement right below it. File directives count only before the first code
// statement.
func (d *Detector) buildIgnoreIndex(src string, tags []m.Tag, units []unit, lines []line) ignoreIndex {
	ix := ignoreIndex{units: make(map[int]struct{})}
	seenCode := false

	for i, u := range units {
		switch u.stmt.Kind {
		case m.KindCode:
			seenCode = true

			start, end := lines[u.first].start, lines[u.last].end
			for _, c := range commentFragments(src[start:end], tags[start:end]) {
				if scope, ok := d.parseIgnoreDirective(c); ok && scope == ignoreStatement {
					ix.units[i] = struct{}{}
				}
			}

		case m.KindComment:
			start, end := lines[u.first].start, lines[u.last].end
			for _, c := range commentFragments(src[start:end], tags[start:end]) {
				scope, ok := d.parseIgnoreDirective(c)
				if ok && scope == ignoreFile && !seenCode {
					ix.file = true
				}
			}

			last := lines[u.last]
			for _, c := range commentFragments(src[last.start:last.end], tags[last.start:last.end]) {
				if scope, ok := d.parseIgnoreDirective(c); ok && scope == ignoreStatement && i+1 < len(units) {
					ix.units[i+1] = struct{}{}
				}
			}
		}
	}

	return ix
}

// commentFragments returns each run of comment bytes, split at line breaks.
func commentFragments(text string, tags []m.Tag) []string {
	var fragments []string

	start := -1

	for i := 0; i < len(text); i++ {
		if tags[i].IsComment() && text[i] != '\n' {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			fragments = append(fragments, text[start:i])
			start = -1
		}
	}

	if start >= 0 {
		fragments = append(fragments, text[start:])
	}

	return fragments
}
