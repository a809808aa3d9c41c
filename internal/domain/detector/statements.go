package detector

import (
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// lineShape is what the reconstructor needs to know about one physical line.
type lineShape struct {
	blank   bool
	comment bool
	code    string // line with comment bytes blanked out, trimmed
	parens  []byte // '(' and ')' outside strings and comments, in order
	// openAtEnd is set when the line terminator itself sits inside a string
	// or comment, so the next line belongs to the same lexical context.
	openAtEnd bool
}

func shapeLine(src string, tags []m.Tag, ln line) lineShape {
	var (
		b          strings.Builder
		shape      lineShape
		hasCode    bool
		hasComment bool
	)

	b.Grow(ln.end - ln.start)

	for k := ln.start; k < ln.end; k++ {
		c := src[k]

		if tags[k].IsComment() {
			hasComment = true

			b.WriteByte(' ')

			continue
		}

		b.WriteByte(c)

		if !isSpace(c) {
			hasCode = true
		}

		if tags[k] == m.TagNormal && (c == '(' || c == ')') {
			shape.parens = append(shape.parens, c)
		}
	}

	if ln.end < len(src) {
		shape.openAtEnd = tags[ln.end] != m.TagNormal
	}

	commentAtEnd := shape.openAtEnd && tags[ln.end].IsComment()

	shape.code = strings.TrimSpace(b.String())
	shape.comment = !hasCode && (hasComment || commentAtEnd)
	shape.blank = !hasCode && !shape.comment

	return shape
}

// unit is a statement plus the line indexes it covers. extent is the last
// line of the enclosing call when the statement opens a closure argument whose
// body was split into statements of its own; otherwise it equals last.
type unit struct {
	stmt   m.Statement
	first  int
	last   int
	extent int
}

// callFrame follows the parentheses left open by a statement whose closure
// body was split off, until the call closes.
type callFrame struct {
	unit  int
	depth int
}

type openStatement struct {
	kind          m.Kind
	first         int
	last          int
	depth         int
	continued     bool // the next line must join this statement
	codeContinues bool // last code line ended with a continuation token
	terminated    bool
}

// accumulator groups lines into statements in a single forward pass. The only
// lookahead is deciding whether a depth-zero statement absorbs the next line.
type accumulator struct {
	src   string
	lines []line
	p     m.Profile
	units []unit
	cur   *openStatement

	frames []callFrame
	closes map[int]int // unit index -> line index closing its call
}

func reconstruct(src string, tags []m.Tag, lines []line, p m.Profile) []unit {
	acc := &accumulator{src: src, lines: lines, p: p, closes: make(map[int]int)}

	for idx, ln := range lines {
		sh := shapeLine(src, tags, ln)
		acc.trackFrames(idx, sh)
		acc.push(idx, sh)
	}

	acc.flush()

	// A call still open at EOF closes there.
	for _, f := range acc.frames {
		acc.closes[f.unit] = len(lines) - 1
	}

	acc.resolveExtents()

	return acc.units
}

// trackFrames applies the parentheses of line idx to every open call frame
// and records the line that balances each of them.
func (a *accumulator) trackFrames(idx int, sh lineShape) {
	if len(a.frames) == 0 {
		return
	}

	open := a.frames[:0]

	for _, f := range a.frames {
		for _, c := range sh.parens {
			if c == '(' {
				f.depth++
			} else {
				f.depth--
			}
		}

		if f.depth <= 0 {
			a.closes[f.unit] = idx
			continue
		}

		open = append(open, f)
	}

	a.frames = open
}

// resolveExtents widens each closing line to the unit that contains it.
func (a *accumulator) resolveExtents() {
	for i := range a.units {
		a.units[i].extent = a.units[i].last
	}

	for ui, closeIdx := range a.closes {
		for _, u := range a.units[ui:] {
			if u.first <= closeIdx && closeIdx <= u.last {
				a.units[ui].extent = u.last
				break
			}
		}
	}
}

func (a *accumulator) push(idx int, sh lineShape) {
	if a.cur != nil && a.cur.kind == m.KindCode && a.cur.continued {
		a.extendCode(idx, sh)
		return
	}

	switch {
	case !sh.blank && !sh.comment:
		if a.cur != nil && a.cur.kind == m.KindCode && !a.cur.terminated && hasAnyPrefix(sh.code, a.p.ContinuationPrefixes) {
			a.extendCode(idx, sh)
			return
		}

		a.flush()
		a.cur = &openStatement{kind: m.KindCode, first: idx}
		a.extendCode(idx, sh)

	case sh.comment:
		a.extendOrStart(idx, m.KindComment)

	default:
		a.extendOrStart(idx, m.KindBlank)
	}
}

func (a *accumulator) extendOrStart(idx int, kind m.Kind) {
	if a.cur != nil && a.cur.kind == kind {
		a.cur.last = idx
		return
	}

	a.flush()
	a.cur = &openStatement{kind: kind, first: idx, last: idx}
}

func (a *accumulator) extendCode(idx int, sh lineShape) {
	st := a.cur
	st.last = idx

	for _, c := range sh.parens {
		if c == '(' {
			st.depth++
		} else if st.depth > 0 {
			st.depth--
		}
	}

	if sh.code != "" {
		st.codeContinues = a.lineContinues(sh.code)
		st.terminated = a.p.Terminator != "" && strings.HasSuffix(sh.code, a.p.Terminator)

		// A closure body passed as an argument is not part of the call
		// statement; its lines are statements of their own.
		if st.depth > 0 && opensBlock(sh.code) {
			a.frames = append(a.frames, callFrame{unit: len(a.units), depth: st.depth})
			st.depth = 0
			st.codeContinues = false
		}
	}

	st.continued = st.depth > 0 || sh.openAtEnd || st.codeContinues
}

func (a *accumulator) lineContinues(code string) bool {
	if a.p.LineContinuation != "" && strings.HasSuffix(code, a.p.LineContinuation) {
		return true
	}

	for _, s := range a.p.ContinuationSuffixes {
		if s == "" || !strings.HasSuffix(code, s) {
			continue
		}

		// x++ and x-- end a statement even though "+" continues one.
		if len(s) == 1 && strings.HasSuffix(code, s+s) {
			continue
		}

		return true
	}

	return false
}

func (a *accumulator) flush() {
	if a.cur == nil {
		return
	}

	first, last := a.lines[a.cur.first], a.lines[a.cur.last]
	a.units = append(a.units, unit{
		stmt: m.Statement{
			StartLine: first.num,
			EndLine:   last.num,
			Text:      a.src[first.start:last.end],
			Kind:      a.cur.kind,
		},
		first: a.cur.first,
		last:  a.cur.last,
	})
	a.cur = nil
}

// opensBlock matches lines such as "func() {", "(x) => {" or "|x| {".
func opensBlock(code string) bool {
	head, ok := strings.CutSuffix(code, "{")
	if !ok {
		return false
	}

	head = strings.TrimSpace(head)

	return strings.HasSuffix(head, ")") || strings.HasSuffix(head, "=>") || strings.HasSuffix(head, "|")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}
