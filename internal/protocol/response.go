package protocol

import (
	"fmt"
	"strings"
)

// Fixed error reasons of the protocol. ReasonNotFound stays snake_case while
// the others are sentences; the inconsistency is part of the wire contract
// the model is prompted against, so it is preserved as-is.
const (
	ReasonNotFound        = "note_not_found"
	ReasonMalformed       = "Unknown or malformed command."
	ReasonAssistantPrefix = "Invalid command format: Do not include 'assistant>' prefix. Output only the command itself."
)

// DuplicateNameReason builds the error reason for an add against a taken name.
func DuplicateNameReason(name string) string {
	return fmt.Sprintf("Note name '%s' already exists.", name)
}

// GenerationFailedReason builds the error reason reported when the model
// backend itself fails to produce a turn.
func GenerationFailedReason(err error) string {
	return fmt.Sprintf("LLM generation failed: %v", err)
}

// Response is one environment reply to a command. Render is the only place
// the wire format is produced.
type Response interface {
	isResponse()
}

// NoteAdded acknowledges a successful add.
type NoteAdded struct {
	Name string
}

// NotesList carries all note names in insertion order. An empty store is a
// valid state and renders as names="", not as an error.
type NotesList struct {
	Names []string
}

// NoteContent returns one note's text. Text is stored raw and escaped only
// at render time.
type NoteContent struct {
	Name string
	Text string
}

// ErrorResponse reports any protocol, domain, format, or backend error.
type ErrorResponse struct {
	Reason string
}

func (NoteAdded) isResponse()     {}
func (NotesList) isResponse()     {}
func (NoteContent) isResponse()   {}
func (ErrorResponse) isResponse() {}

// Render serializes a response to its wire form.
func Render(r Response) string {
	switch v := r.(type) {
	case NoteAdded:
		return fmt.Sprintf(`<note-added name="%s"/>`, v.Name)
	case NotesList:
		return fmt.Sprintf(`<notes-list names="%s"/>`, strings.Join(v.Names, ","))
	case NoteContent:
		return fmt.Sprintf(`<note-content name="%s" text="%s"/>`, v.Name, EscapeText(v.Text))
	case ErrorResponse:
		return fmt.Sprintf(`<error reason="%s"/>`, v.Reason)
	default:
		return fmt.Sprintf(`<error reason="%s"/>`, ReasonMalformed)
	}
}

// Replacer runs a single pass, so the ampersands introduced by the entity
// replacements are never escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes note text for embedding in a note-content attribute.
func EscapeText(s string) string {
	return escaper.Replace(s)
}
