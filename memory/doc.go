// Package memory holds the conversation log for one agent session.
//
// Model:
//   - Append-only sequence of role-tagged text turns.
//   - The full history is sent to the model every turn; nothing is windowed
//     or summarized, and nothing survives the process.
//   - A system turn, when present, is always turn zero and is never
//     duplicated; Clear either keeps it or swaps in a replacement.
package memory
