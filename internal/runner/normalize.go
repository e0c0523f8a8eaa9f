package runner

import "strings"

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// Normalized is the outcome of cleaning one raw model turn.
type Normalized struct {
	// Command is the intended command: raw output with any leading reasoning
	// block removed and, on a violation, the role marker stripped.
	Command string
	// Violation reports that the output began with the 'assistant>' marker.
	Violation bool
}

// Normalize prepares raw model output for the interpreter. A single
// reasoning block at the very start is discarded first; only then is the
// role marker checked, so a marker hidden behind a think block still counts.
func Normalize(raw string) Normalized {
	s := stripThinkBlock(strings.TrimSpace(raw))
	if rest, found := stripMarker(s); found {
		return Normalized{Command: rest, Violation: true}
	}
	return Normalized{Command: s}
}

// stripThinkBlock removes one leading <think>...</think> span, matching
// case-insensitively from the first opening tag to the first closing tag.
// An unclosed block is left untouched.
func stripThinkBlock(s string) string {
	if len(s) < len(thinkOpen) || !strings.EqualFold(s[:len(thinkOpen)], thinkOpen) {
		return s
	}
	rest := s[len(thinkOpen):]
	i := indexFold(rest, thinkClose)
	if i < 0 {
		return s
	}
	return strings.TrimSpace(rest[i+len(thinkClose):])
}

// stripMarker removes a leading assistant role marker, case-insensitively.
// The input is already trimmed, so the marker can only sit at position zero.
func stripMarker(s string) (string, bool) {
	if len(s) < len(assistantMarker) || !strings.EqualFold(s[:len(assistantMarker)], assistantMarker) {
		return s, false
	}
	return strings.TrimSpace(s[len(assistantMarker):]), true
}

// indexFold is a case-insensitive strings.Index. Inputs here are short
// (one model turn), so the byte-wise scan is fine.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
