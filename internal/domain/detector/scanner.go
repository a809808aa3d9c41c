package detector

import (
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/dbgc/internal/model"
)

type scanMode uint8

const (
	modeNormal scanMode = iota
	modeLineComment
	modeBlockComment
	modeString
)

// scanState is threaded through a single pass and dropped afterwards.
type scanState struct {
	mode  scanMode
	quote m.QuoteRule
}

// Scan tags every byte of src with its lexical context. Unterminated strings
// and block comments run to the end of the input.
func Scan(src string, p m.Profile) []m.Tag {
	return scan(src, p, sortQuotes(p.Quotes))
}

func scan(src string, p m.Profile, quotes []m.QuoteRule) []m.Tag {
	tags := make([]m.Tag, len(src))
	st := scanState{mode: modeNormal}

	for i := 0; i < len(src); {
		switch st.mode {
		case modeNormal:
			i = scanNormal(src, i, p, quotes, tags, &st)

		case modeLineComment:
			if src[i] == '\n' && !(p.CommentSplicing && endsWithToken(src, i, p.LineContinuation)) {
				st.mode = modeNormal
				tags[i] = m.TagNormal
				i++

				continue
			}

			tags[i] = m.TagLineComment
			i++

		case modeBlockComment:
			if strings.HasPrefix(src[i:], p.BlockComment.Close) {
				i = fill(tags, i, len(p.BlockComment.Close), m.TagBlockComment)
				st.mode = modeNormal

				continue
			}

			tags[i] = m.TagBlockComment
			i++

		case modeString:
			i = scanString(src, i, tags, &st)
		}
	}

	return tags
}

func scanNormal(src string, i int, p m.Profile, quotes []m.QuoteRule, tags []m.Tag, st *scanState) int {
	rest := src[i:]

	if p.LineComment != "" && strings.HasPrefix(rest, p.LineComment) {
		st.mode = modeLineComment
		return fill(tags, i, len(p.LineComment), m.TagLineComment)
	}

	if p.BlockComment != nil && p.BlockComment.Open != "" && strings.HasPrefix(rest, p.BlockComment.Open) {
		st.mode = modeBlockComment
		return fill(tags, i, len(p.BlockComment.Open), m.TagBlockComment)
	}

	for _, q := range quotes {
		if !strings.HasPrefix(rest, q.Delimiter) {
			continue
		}

		if q.Char {
			if n := charLiteralLen(rest, q); n > 0 {
				return fill(tags, i, n, m.TagString)
			}

			continue
		}

		st.mode = modeString
		st.quote = q

		return fill(tags, i, len(q.Delimiter), m.TagString)
	}

	tags[i] = m.TagNormal

	return i + 1
}

func scanString(src string, i int, tags []m.Tag, st *scanState) int {
	q := st.quote

	if q.Escape != 0 && src[i] == q.Escape {
		n := 2
		if strings.HasPrefix(src[i+1:], "\r\n") {
			n = 3
		}

		return fill(tags, i, min(n, len(src)-i), m.TagString)
	}

	if closer := q.Closer(); strings.HasPrefix(src[i:], closer) {
		st.mode = modeNormal
		return fill(tags, i, len(closer), m.TagString)
	}

	if src[i] == '\n' && !q.Multiline {
		st.mode = modeNormal
		tags[i] = m.TagNormal

		return i + 1
	}

	tags[i] = m.TagString

	return i + 1
}

// maxCharEscape bounds an escape sequence inside a char literal, enough for
// '\u{10FFFF}'.
const maxCharEscape = 10

// charLiteralLen returns the length of the char literal at the start of rest,
// or 0 when the delimiter does not open one.
func charLiteralLen(rest string, q m.QuoteRule) int {
	closer := q.Closer()
	body := rest[len(q.Delimiter):]

	if q.Escape != 0 && strings.HasPrefix(body, string(q.Escape)) {
		if len(body) < 2 || body[1] == '\n' {
			return 0
		}

		tail := body[2:]
		if len(tail) > maxCharEscape {
			tail = tail[:maxCharEscape]
		}

		end := strings.Index(tail, closer)
		if end < 0 || strings.IndexByte(tail[:end], '\n') >= 0 {
			return 0
		}

		return len(q.Delimiter) + 2 + end + len(closer)
	}

	r, size := utf8.DecodeRuneInString(body)
	if size == 0 || r == '\n' || strings.HasPrefix(body, closer) {
		return 0
	}

	if !strings.HasPrefix(body[size:], closer) {
		return 0
	}

	return len(q.Delimiter) + size + len(closer)
}

func fill(tags []m.Tag, from, n int, tag m.Tag) int {
	for k := from; k < from+n; k++ {
		tags[k] = tag
	}

	return from + n
}

// endsWithToken reports whether the text before the newline at nl ends with tok.
func endsWithToken(src string, nl int, tok string) bool {
	if tok == "" {
		return false
	}

	end := nl
	if end > 0 && src[end-1] == '\r' {
		end--
	}

	return strings.HasSuffix(src[:end], tok)
}

// sortQuotes orders quote rules longest delimiter first so that `"""` is
// tried before `"`.
func sortQuotes(quotes []m.QuoteRule) []m.QuoteRule {
	sorted := make([]m.QuoteRule, 0, len(quotes))

	for _, q := range quotes {
		if q.Delimiter != "" {
			sorted = append(sorted, q)
		}
	}

	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j].Delimiter) > len(sorted[j-1].Delimiter); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	return sorted
}
