package metrics

import (
	"strings"
	"unicode/utf8"
)

// Stats holds basic size features of a piece of turn text.
type Stats struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// Measure computes byte, rune, word, and line counts for s.
func Measure(s string) Stats {
	return Stats{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
		Lines: countLines(s),
	}
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of
// '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
