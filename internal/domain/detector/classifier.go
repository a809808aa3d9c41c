package detector

import (
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// callKeywords precede a parenthesis without being calls.
var callKeywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "switch": {}, "catch": {}, "return": {},
	"sizeof": {}, "elif": {}, "match": {}, "with": {}, "assert": {}, "not": {},
	"and": {}, "or": {}, "in": {}, "typeof": {}, "foreach": {}, "until": {},
}

// classify decides whether a code statement is debug output. Only the
// statement's own target and its own string literals are inspected.
func (d *Detector) classify(src string, tags []m.Tag, u unit, lines []line) m.Classification {
	start, end := lines[u.first].start, lines[u.last].end
	code := maskCode(src[start:end], tags[start:end])
	target := callTarget(code)

	result := m.Classification{Target: target}

	if target != "" {
		if name, ok := matchCall(target, d.profile.DebugCalls); ok {
			result.IsDebug = true
			result.MatchedMarker = name

			return result
		}
	}

	isOutput := false
	if target != "" {
		_, isOutput = matchCall(target, d.profile.OutputCalls)
	}

	if isOutput || len(d.profile.OutputCalls) == 0 {
		if marker, ok := d.matchMarker(src[start:end], tags[start:end]); ok {
			result.IsDebug = true
			result.MatchedMarker = marker

			return result
		}
	}

	if d.detectAll && isOutput {
		result.IsDebug = true
		result.MatchedMarker = target
	}

	return result
}

// maskCode keeps Normal bytes and blanks out strings and comments, so
// parentheses or operators inside literals are never seen as code.
func maskCode(text string, tags []m.Tag) string {
	b := []byte(text)

	for i := range b {
		if tags[i] != m.TagNormal {
			b[i] = ' '
		}
	}

	return string(b)
}

// callTarget returns the first call at paren depth zero, or the stream sink
// in front of the first depth-zero "<<", whichever comes first.
func callTarget(code string) string {
	depth := 0

	for i := 0; i < len(code); i++ {
		switch c := code[i]; {
		case c == '(':
			if depth == 0 {
				name := nameBefore(code, i)
				if _, keyword := callKeywords[name]; name != "" && !keyword {
					return name
				}
			}

			depth++

		case c == ')':
			if depth > 0 {
				depth--
			}

		case c == '<' && depth == 0 && strings.HasPrefix(code[i:], "<<"):
			if name := nameBefore(code, i); name != "" {
				return name
			}

			i++
		}
	}

	return ""
}

// nameBefore collects the qualified identifier that ends right before pos,
// skipping whitespace between it and pos.
func nameBefore(code string, pos int) string {
	j := pos - 1
	for j >= 0 && isSpace(code[j]) {
		j--
	}

	end := j + 1

	for j >= 0 {
		c := code[j]

		switch {
		case isIdentByte(c) || c == '.' || c == ':' || c == '!' || c == '$':
			j--
		case c == '>' && j > 0 && code[j-1] == '-':
			j -= 2
		default:
			return trimName(code[j+1 : end])
		}
	}

	return trimName(code[:end])
}

func trimName(name string) string {
	name = strings.TrimLeft(name, ".:!")
	if name == "" || isDigit(name[0]) {
		return ""
	}

	return name
}

// matchCall matches a target against configured names. A name starting with
// "." matches any receiver, e.g. ".printStackTrace".
func matchCall(target string, names []string) (string, bool) {
	for _, name := range names {
		if name == "" {
			continue
		}

		if target == name {
			return name, true
		}

		if strings.HasPrefix(name, ".") && strings.HasSuffix(target, name) {
			return name, true
		}
	}

	return "", false
}

// matchMarker looks for a marker in every string-literal fragment of the
// statement, case-insensitively.
func (d *Detector) matchMarker(text string, tags []m.Tag) (string, bool) {
	for _, fragment := range stringFragments(text, tags) {
		lower := strings.ToLower(fragment)

		for _, mk := range d.markers {
			if strings.Contains(lower, mk.lower) {
				return mk.name, true
			}
		}
	}

	return "", false
}

// stringFragments returns each contiguous run of string-literal bytes.
func stringFragments(text string, tags []m.Tag) []string {
	var fragments []string

	start := -1

	for i := 0; i < len(text); i++ {
		if tags[i] == m.TagString {
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

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
