package detector

import (
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// CommentOut disables the actionable findings by commenting every line of
// their spans. Profiles without a line comment wrap the span in a block
// comment instead.
func (d *Detector) CommentOut(src string, findings []m.Finding) string {
	spans := Spans(findings)
	if len(spans) == 0 {
		return src
	}

	if tok := d.profile.LineComment; tok != "" {
		return rewriteLines(src, spans, func(content string, _ int, _ m.Span) string {
			if strings.TrimSpace(content) == "" {
				return content
			}

			indent := leadingIndent(content)

			return content[:indent] + tok + " " + content[indent:]
		})
	}

	bc := d.profile.BlockComment
	if bc == nil {
		return src
	}

	return rewriteLines(src, spans, func(content string, num int, span m.Span) string {
		if num == span.StartLine {
			indent := leadingIndent(content)
			content = content[:indent] + bc.Open + " " + content[indent:]
		}

		if num == span.EndLine {
			content += " " + bc.Close
		}

		return content
	})
}

// FindCommented returns commented-out statements that would be debug output
// once uncommented. Only line comments are considered.
func (d *Detector) FindCommented(src string) []m.Finding {
	tok := d.profile.LineComment
	if tok == "" {
		return nil
	}

	a := d.analyze(src)

	var findings []m.Finding

	for _, u := range a.units {
		if u.stmt.Kind != m.KindComment {
			continue
		}

		block := a.lines[u.first : u.last+1]
		inner := make([]string, 0, len(block))

		for _, ln := range block {
			text, _ := stripLineComment(src[ln.start:ln.end], tok)
			inner = append(inner, text)
		}

		for _, f := range d.Classify(strings.Join(inner, "\n")) {
			if !f.Actionable() {
				continue
			}

			first := block[f.Statement.StartLine-1]
			last := block[f.Statement.EndLine-1]

			f.Statement = m.Statement{
				StartLine: first.num,
				EndLine:   last.num,
				Text:      src[first.start:last.end],
				Kind:      m.KindComment,
			}
			findings = append(findings, f)
		}
	}

	return findings
}

// Uncomment removes the line comment token from each line of the findings.
func (d *Detector) Uncomment(src string, findings []m.Finding) string {
	tok := d.profile.LineComment
	spans := Spans(findings)

	if tok == "" || len(spans) == 0 {
		return src
	}

	return rewriteLines(src, spans, func(content string, _ int, _ m.Span) string {
		text, _ := stripLineComment(content, tok)
		return text
	})
}

// stripLineComment drops a leading comment token and one space after it,
// keeping the indentation.
func stripLineComment(content, tok string) (string, bool) {
	indent := leadingIndent(content)
	rest := content[indent:]

	if !strings.HasPrefix(rest, tok) {
		return content, false
	}

	rest = strings.TrimPrefix(rest[len(tok):], " ")

	return content[:indent] + rest, true
}

func leadingIndent(content string) int {
	return len(content) - len(strings.TrimLeft(content, " \t"))
}

// rewriteLines applies fn to every line inside spans, keeping terminators.
func rewriteLines(src string, spans []m.Span, fn func(content string, num int, span m.Span) string) string {
	sorted := normalizeSpans(spans)

	var b strings.Builder
	b.Grow(len(src) + len(spans)*4)

	si := 0

	for _, ln := range splitLines(src) {
		for si < len(sorted) && sorted[si].EndLine < ln.num {
			si++
		}

		if si < len(sorted) && sorted[si].Contains(ln.num) {
			content, cr := strings.CutSuffix(src[ln.start:ln.end], "\r")

			b.WriteString(fn(content, ln.num, sorted[si]))

			if cr {
				b.WriteByte('\r')
			}

			b.WriteString(src[ln.end:ln.next])

			continue
		}

		b.WriteString(src[ln.start:ln.next])
	}

	return b.String()
}
