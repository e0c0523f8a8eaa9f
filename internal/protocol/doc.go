// Package protocol defines the textual command protocol between the model
// and the note environment.
//
// Includes:
//   - Command: sum type for the three recognized command forms plus Malformed.
//   - Parse: whole-string grammar matching; anything not exactly well-formed
//     is Malformed, with no partial or prefix matches.
//   - Response: sum type for the environment's replies, with a single Render
//     function owning the wire format.
//
// Invariant: attribute order and quoting are part of the wire contract. The
// model has to learn to reproduce these forms byte-for-byte, so the parser
// never guesses at intent.
package protocol
