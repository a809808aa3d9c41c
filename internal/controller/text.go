package controller

import (
	"strings"
)

func splitKeepEmpty(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// markerRange finds marker in line case-insensitively and returns its byte
// range, or -1 when absent.
func markerRange(line, marker string) (int, int) {
	if marker == "" {
		return -1, -1
	}

	idx := strings.Index(strings.ToLower(line), strings.ToLower(marker))
	if idx < 0 {
		return -1, -1
	}

	return idx, idx + len(marker)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
