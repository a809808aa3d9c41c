package detector

// line is one physical line. content is src[start:end]; next is the offset of
// the following line, so src[start:next] includes the terminator.
type line struct {
	num   int
	start int
	end   int
	next  int
}

func splitLines(src string) []line {
	var lines []line

	start := 0

	for i := 0; i < len(src); i++ {
		if src[i] != '\n' {
			continue
		}

		lines = append(lines, line{num: len(lines) + 1, start: start, end: i, next: i + 1})
		start = i + 1
	}

	if start < len(src) {
		lines = append(lines, line{num: len(lines) + 1, start: start, end: len(src), next: len(src)})
	}

	return lines
}
