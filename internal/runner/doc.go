// Package runner drives one agent session: it normalizes raw model output,
// interprets the resulting command against the note store, and keeps the
// conversation log in step.
//
// Invariants:
//   - One turn at a time: normalize -> interpret -> log, then the next model
//     call. Nothing here is concurrent.
//   - The note store mutates only on the success path of an add command.
//   - A format violation (leading 'assistant>' marker) means the interpreter
//     is never invoked for that turn; the fixed violation error is suggested
//     instead.
//   - The suggested response is a value. The caller may substitute its own
//     before committing; the engine never logs a response on its own.
package runner
