// Package document implements the document commands: README and release
// notes generation, plus the update commands that are declared but not
// implemented yet.
//
// A generation runs in two steps. The instruction is resolved first, from a
// stored prompt template when one is available and from a built-in default
// otherwise. The instruction and then the wrapped context are sent to one
// chat session, and the reply to the second message is the document.
package document
