package detector

import (
	"cmp"
	"slices"
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// Remove deletes the given line ranges, terminators included. Every other
// line is copied unchanged; blank lines around a removed span are kept.
func Remove(src string, spans []m.Span) string {
	if len(spans) == 0 {
		return src
	}

	sorted := normalizeSpans(spans)

	var b strings.Builder
	b.Grow(len(src))

	si := 0

	for _, ln := range splitLines(src) {
		for si < len(sorted) && sorted[si].EndLine < ln.num {
			si++
		}

		if si < len(sorted) && sorted[si].Contains(ln.num) {
			continue
		}

		b.WriteString(src[ln.start:ln.next])
	}

	return b.String()
}

// normalizeSpans sorts spans and merges overlapping or touching ranges.
func normalizeSpans(spans []m.Span) []m.Span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b m.Span) int {
		return cmp.Compare(a.StartLine, b.StartLine)
	})

	merged := sorted[:0]

	for _, s := range sorted {
		if n := len(merged); n > 0 && s.StartLine <= merged[n-1].EndLine+1 {
			merged[n-1].EndLine = max(merged[n-1].EndLine, s.EndLine)
			continue
		}

		merged = append(merged, s)
	}

	return merged
}
