package runner

import (
	"context"

	"notecage/internal/notes"
	"notecage/internal/protocol"
	"notecage/internal/telemetry"
	"notecage/memory"
)

// Role markers used on the wire inside logged turn content. The model sees
// its own commands as "assistant> ..." and environment replies as
// "system> ...", matching the framing the system prompt teaches it.
const (
	assistantMarker = "assistant>"
	systemMarker    = "system>"
)

// Engine owns the note store and conversation log for one session.
type Engine struct {
	store *notes.Store
	conv  *memory.Conversation
}

func NewEngine(systemPrompt string) *Engine {
	return &Engine{
		store: notes.NewStore(),
		conv:  memory.NewConversation(systemPrompt),
	}
}

// Turn is the engine's verdict on one raw model output.
type Turn struct {
	// Command is the normalized intended command, as logged.
	Command string
	// Violation reports the disallowed 'assistant>' prefix was present.
	Violation bool
	// Suggested is the rendered response the interpreter proposes. The
	// caller may commit it as-is or substitute another string.
	Suggested string
}

// ProcessOutput normalizes one raw model turn, logs the intended command
// under the assistant role, and computes the suggested response. On a
// format violation the interpreter is not consulted.
func (e *Engine) ProcessOutput(ctx context.Context, raw string) Turn {
	n := Normalize(raw)
	e.conv.Append(memory.RoleAssistant, assistantMarker+" "+n.Command)

	var resp protocol.Response
	if n.Violation {
		resp = protocol.ErrorResponse{Reason: protocol.ReasonAssistantPrefix}
	} else {
		resp = Execute(protocol.Parse(n.Command), e.store)
	}
	suggested := protocol.Render(resp)

	turnID, _ := telemetry.TurnIDFromContext(ctx)
	telemetry.EmitTurnFeatures(ctx, raw)
	telemetry.Emit("turn_processed", map[string]any{
		"turn_id":   turnID,
		"command":   n.Command,
		"violation": n.Violation,
		"suggested": suggested,
		"notes":     e.store.Len(),
	})

	return Turn{Command: n.Command, Violation: n.Violation, Suggested: suggested}
}

// CommitResponse logs the actual response for the turn, which may differ
// from the suggested one when the operator overrides it.
func (e *Engine) CommitResponse(resp string) {
	e.conv.Append(memory.RoleUser, systemMarker+" "+resp)
}

// History returns the full conversation snapshot to send to the model.
func (e *Engine) History() []memory.Message {
	return e.conv.History()
}

// NoteCount reports how many notes the session currently holds.
func (e *Engine) NoteCount() int {
	return e.store.Len()
}

// Reset replaces the note store and clears the conversation. With a
// non-empty systemPrompt the log restarts from that prompt; otherwise an
// existing system turn is preserved. No partially-reset state is observable.
func (e *Engine) Reset(systemPrompt string) {
	e.store = notes.NewStore()
	e.conv.Clear(systemPrompt)
	telemetry.Emit("session_reset", map[string]any{
		"has_system_prompt": e.conv.Len() > 0,
	})
}

// Execute runs one parsed command against the store and produces the
// response to serialize. Only a successful add mutates the store.
func Execute(cmd protocol.Command, store *notes.Store) protocol.Response {
	switch c := cmd.(type) {
	case protocol.AddNote:
		if !store.Add(c.Name, c.Text) {
			return protocol.ErrorResponse{Reason: protocol.DuplicateNameReason(c.Name)}
		}
		return protocol.NoteAdded{Name: c.Name}
	case protocol.ListNotes:
		return protocol.NotesList{Names: store.Names()}
	case protocol.GetNote:
		text, ok := store.Get(c.Name)
		if !ok {
			return protocol.ErrorResponse{Reason: protocol.ReasonNotFound}
		}
		return protocol.NoteContent{Name: c.Name, Text: text}
	default:
		return protocol.ErrorResponse{Reason: protocol.ReasonMalformed}
	}
}
