package generation

import "context"

// ChatModel opens chat sessions against a generative model.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type ChatModel interface {
	// StartChat opens a new session with empty history.
	StartChat(ctx context.Context) (ChatSession, error)
}

// ChatSession is a stateful conversation. Every message sent becomes part of
// the history the model sees for the next one.
type ChatSession interface {
	// Send delivers one user message and returns the text of the model reply.
	// Errors wrap one of the sentinel errors in errors.go.
	Send(ctx context.Context, message string) (string, error)
}
