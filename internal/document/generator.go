package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/devai/internal/generation"
	"github.com/phrazzld/devai/internal/prompt"
)

// PromptSource resolves custom prompt templates.
type PromptSource interface {
	Get(ctx context.Context, secretID string) prompt.Lookup
}

// ContextFormatter turns a context reference into prompt text.
type ContextFormatter interface {
	Format(ref string) (string, error)
}

// Request describes one document command.
type Request struct {
	Kind Kind

	// ContextRef is a file, directory, glob or literal code.
	ContextRef string

	// File is the existing document to update. Accepted by update-readme but not used yet.
	File string

	// Version is the release version. Accepted by update-releasenotes but not used yet.
	Version string
}

// Generator produces documents by chatting with a generative model.
type Generator struct {
	prompts   PromptSource
	model     generation.ChatModel
	formatter ContextFormatter
	logger    *slog.Logger
}

// NewGenerator creates a Generator with the provided dependencies.
//
// Parameters:
//   - prompts: source of custom templates; lookups never fail hard
//   - model: chat model documents are generated with
//   - formatter: renders the context reference of a request
//   - logger: structured logger for the generation flow
//
// Returns:
//   - A Generator, or an error when a dependency is missing
func NewGenerator(
	prompts PromptSource,
	model generation.ChatModel,
	formatter ContextFormatter,
	logger *slog.Logger,
) (*Generator, error) {
	if prompts == nil {
		return nil, errors.New("prompt source cannot be nil")
	}
	if model == nil {
		return nil, errors.New("chat model cannot be nil")
	}
	if formatter == nil {
		return nil, errors.New("context formatter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Generator{
		prompts:   prompts,
		model:     model,
		formatter: formatter,
		logger:    logger.With("component", "document_generator"),
	}, nil
}

// Run executes req and returns the text to print.
//
// Implemented kinds look up their template once, fall back to the built-in
// default on any lookup failure, then send the instruction and the wrapped
// context to a single chat session. The reply to the instruction is
// discarded; the reply to the context is returned unchanged. Chat failures
// are returned as is and no partial output is produced.
//
// Update kinds return their acknowledgment without touching the prompt
// source or the model.
func (g *Generator) Run(ctx context.Context, req Request) (string, error) {
	log := g.logger.With("kind", req.Kind.String())

	if !req.Kind.Implemented() {
		return g.acknowledge(ctx, log, req)
	}

	instruction := g.resolveInstruction(ctx, log, req.Kind)

	formatted, err := g.formatter.Format(req.ContextRef)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContextFormat, err)
	}

	session, err := g.model.StartChat(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to start chat session", "error", err)
		return "", err
	}

	if _, err := session.Send(ctx, instruction); err != nil {
		log.ErrorContext(ctx, "Instruction message failed", "error", err)
		return "", err
	}

	reply, err := session.Send(ctx, WrapContext(formatted))
	if err != nil {
		log.ErrorContext(ctx, "Context message failed", "error", err)
		return "", err
	}

	log.InfoContext(ctx, "Document generated", "length", len(reply))
	return reply, nil
}

func (g *Generator) acknowledge(ctx context.Context, log *slog.Logger, req Request) (string, error) {
	msg := req.Kind.StubMessage()
	if msg == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, req.Kind)
	}

	// TODO: pass File and Version through once the update flows exist.
	if req.File != "" || req.Version != "" {
		log.WarnContext(ctx, "Update options are accepted but not used yet",
			"file", req.File,
			"version", req.Version)
	}

	return msg, nil
}

// resolveInstruction returns the stored template for kind, or its default.
func (g *Generator) resolveInstruction(ctx context.Context, log *slog.Logger, kind Kind) string {
	lookup := g.prompts.Get(ctx, kind.SecretID())
	if lookup.Degraded() {
		log.InfoContext(ctx, "Using built-in prompt template",
			"secret_id", kind.SecretID(),
			"lookup_status", lookup.Status.String())
		return kind.DefaultTemplate()
	}

	log.DebugContext(ctx, "Using stored prompt template", "secret_id", kind.SecretID())
	return lookup.Text
}
