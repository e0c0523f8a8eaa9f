package protocol

import "strings"

// Command is one parsed model command. Exactly one of the concrete types
// below is produced per raw input string.
type Command interface {
	isCommand()
}

// AddNote creates a new named note. Name must be non-empty; Text may be empty.
type AddNote struct {
	Name string
	Text string
}

// ListNotes asks for the names of all notes in insertion order.
type ListNotes struct{}

// GetNote reads one note back by name.
type GetNote struct {
	Name string
}

// Malformed carries any input that matched none of the command forms.
type Malformed struct {
	Raw string
}

func (AddNote) isCommand()   {}
func (ListNotes) isCommand() {}
func (GetNote) isCommand()   {}
func (Malformed) isCommand() {}

// Parse classifies a raw command string (surrounding whitespace is trimmed
// first) into exactly one Command. Matching is whole-string: trailing prose,
// stacked commands, or near-miss tag names all come back as Malformed.
func Parse(raw string) Command {
	s := strings.TrimSpace(raw)

	if cmd, ok := parseAddNote(s); ok {
		return cmd
	}
	if s == "<get-notes/>" {
		return ListNotes{}
	}
	if cmd, ok := parseGetNote(s); ok {
		return cmd
	}
	return Malformed{Raw: s}
}

// parseAddNote matches <add-note name="X" text="Y"/> exactly, with X
// non-empty. Attribute order is fixed.
func parseAddNote(s string) (AddNote, bool) {
	sc := scanner{src: s}
	if !sc.lit(`<add-note name="`) {
		return AddNote{}, false
	}
	name, ok := sc.quoted()
	if !ok || name == "" {
		return AddNote{}, false
	}
	if !sc.lit(` text="`) {
		return AddNote{}, false
	}
	text, ok := sc.quoted()
	if !ok {
		return AddNote{}, false
	}
	if !sc.lit(`/>`) || !sc.done() {
		return AddNote{}, false
	}
	return AddNote{Name: name, Text: text}, true
}

// parseGetNote matches <get-note name="X"/> exactly, with X non-empty.
func parseGetNote(s string) (GetNote, bool) {
	sc := scanner{src: s}
	if !sc.lit(`<get-note name="`) {
		return GetNote{}, false
	}
	name, ok := sc.quoted()
	if !ok || name == "" {
		return GetNote{}, false
	}
	if !sc.lit(`/>`) || !sc.done() {
		return GetNote{}, false
	}
	return GetNote{Name: name}, true
}

// scanner is a minimal cursor over one command string. Attribute values are
// runs of non-quote bytes terminated by the closing double quote; no quote
// escaping exists in the grammar.
type scanner struct {
	src string
	pos int
}

// lit consumes the exact literal l at the cursor.
func (sc *scanner) lit(l string) bool {
	if !strings.HasPrefix(sc.src[sc.pos:], l) {
		return false
	}
	sc.pos += len(l)
	return true
}

// quoted consumes up to (and including) the next double quote, returning the
// value before it. Fails when no closing quote remains.
func (sc *scanner) quoted() (string, bool) {
	i := strings.IndexByte(sc.src[sc.pos:], '"')
	if i < 0 {
		return "", false
	}
	v := sc.src[sc.pos : sc.pos+i]
	sc.pos += i + 1
	return v, true
}

// done reports whether the whole input has been consumed.
func (sc *scanner) done() bool {
	return sc.pos == len(sc.src)
}
