// Package detector finds debug output statements in source text and deletes
// or toggles them without altering any other line.
//
// A pass runs Scan, then groups lines into logical statements, classifies the
// code statements and finally rewrites the text. Everything is pass-scoped,
// so a Detector may be shared by concurrent goroutines.
package detector

import (
	"context"
	"fmt"
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// Detector applies one language profile.
type Detector struct {
	profile   m.Profile
	quotes    []m.QuoteRule
	markers   []marker
	detectAll bool
}

type marker struct {
	name  string
	lower string
}

// Option configures a Detector.
type Option func(*Detector)

// WithDetectAll flags every output call, whatever its message says.
func WithDetectAll() Option {
	return func(d *Detector) {
		d.detectAll = true
	}
}

// New builds a Detector for profile. An empty profile is rejected before any
// text is processed.
func New(profile m.Profile, opts ...Option) (*Detector, error) {
	if profile.IsZero() {
		return nil, &m.ErrUnsupportedLanguage{}
	}

	if bc := profile.BlockComment; bc != nil && (bc.Open == "" || bc.Close == "") {
		return nil, fmt.Errorf("profile %s: block comment needs both delimiters", profile.Name)
	}

	d := &Detector{
		profile: profile,
		quotes:  sortQuotes(profile.Quotes),
	}

	for _, mk := range profile.DebugMarkers {
		if strings.TrimSpace(mk) == "" {
			continue
		}

		d.markers = append(d.markers, marker{name: mk, lower: strings.ToLower(mk)})
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Profile returns the profile the detector was built with.
func (d *Detector) Profile() m.Profile {
	return d.profile
}

type analysis struct {
	src   string
	tags  []m.Tag
	lines []line
	units []unit
}

func (d *Detector) analyze(src string) analysis {
	tags := scan(src, d.profile, d.quotes)
	lines := splitLines(src)

	return analysis{
		src:   src,
		tags:  tags,
		lines: lines,
		units: reconstruct(src, tags, lines, d.profile),
	}
}

// Statements returns every logical statement of src, in line order.
func (d *Detector) Statements(src string) []m.Statement {
	a := d.analyze(src)

	stmts := make([]m.Statement, 0, len(a.units))
	for _, u := range a.units {
		stmts = append(stmts, u.stmt)
	}

	return stmts
}

// Classify returns a finding for every code statement of src.
func (d *Detector) Classify(src string) []m.Finding {
	findings, _ := d.ClassifyContext(context.Background(), src)

	return findings
}

// ClassifyContext is Classify with cancellation checked at every statement
// boundary.
func (d *Detector) ClassifyContext(ctx context.Context, src string) ([]m.Finding, error) {
	a := d.analyze(src)
	ignored := d.buildIgnoreIndex(a.src, a.tags, a.units, a.lines)

	findings := make([]m.Finding, 0, len(a.units))
	absorbed := -1

	for i, u := range a.units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if u.stmt.Kind != m.KindCode || u.last <= absorbed {
			continue
		}

		c := d.classify(a.src, a.tags, u, a.lines)
		if c.IsDebug && ignored.ignores(i) {
			c.Ignored = true
		}

		stmt := u.stmt

		// A debug call owns the closure bodies passed to it.
		if c.IsDebug && u.extent > u.last {
			stmt = a.statement(u.first, u.extent)
			absorbed = u.extent
		}

		findings = append(findings, m.Finding{Statement: stmt, Classification: c})
	}

	return findings, nil
}

func (a analysis) statement(first, last int) m.Statement {
	lo, hi := a.lines[first], a.lines[last]

	return m.Statement{
		StartLine: lo.num,
		EndLine:   hi.num,
		Text:      a.src[lo.start:hi.end],
		Kind:      m.KindCode,
	}
}

// Strip removes every debug statement from src.
func (d *Detector) Strip(src string) string {
	return Remove(src, Spans(d.Classify(src)))
}

// Debug keeps the findings that may be changed on disk.
func Debug(findings []m.Finding) []m.Finding {
	var debug []m.Finding

	for _, f := range findings {
		if f.Actionable() {
			debug = append(debug, f)
		}
	}

	return debug
}

// Spans returns the line ranges of the actionable findings.
func Spans(findings []m.Finding) []m.Span {
	var spans []m.Span

	for _, f := range findings {
		if f.Actionable() {
			spans = append(spans, f.Statement.Span())
		}
	}

	return spans
}
