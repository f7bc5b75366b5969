package cli

import (
	"context"
	"sync"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/contextfmt"
	"github.com/phrazzld/devai/internal/document"
	"github.com/phrazzld/devai/internal/generation"
	"github.com/phrazzld/devai/internal/platform/gemini"
	"github.com/phrazzld/devai/internal/platform/logger"
	"github.com/phrazzld/devai/internal/platform/secretmanager"
	"github.com/phrazzld/devai/internal/prompt"
)

// Runner executes document requests.
type Runner interface {
	Run(ctx context.Context, req document.Request) (string, error)
}

// GeneratorFactory builds the Runner used by the document commands.
// The invocation logger travels in ctx.
type GeneratorFactory func(ctx context.Context, cfg *config.Config) (Runner, error)

// NewGenerator wires a document.Generator to Secret Manager and Gemini.
// No remote client is opened here: secrets are read per lookup and the Gemini
// client is built on the first chat.
func NewGenerator(ctx context.Context, cfg *config.Config) (Runner, error) {
	log := logger.FromContext(ctx)

	prompts, err := prompt.NewClient(
		secretmanager.NewAccessor(cfg.LLM.UserAgent),
		config.NewResolver(),
		log.With("component", "prompt_store"),
	)
	if err != nil {
		return nil, err
	}

	model := &lazyChatModel{
		build: func(ctx context.Context) (generation.ChatModel, error) {
			return gemini.NewChatModel(ctx, log.With("component", "gemini"), cfg.LLM, cfg.Project.ID)
		},
	}

	return document.NewGenerator(prompts, model, contextfmt.New(log), log)
}

// lazyChatModel defers building the underlying model until a chat is started.
type lazyChatModel struct {
	build func(ctx context.Context) (generation.ChatModel, error)

	once  sync.Once
	model generation.ChatModel
	err   error
}

func (m *lazyChatModel) StartChat(ctx context.Context) (generation.ChatSession, error) {
	m.once.Do(func() {
		m.model, m.err = m.build(ctx)
	})
	if m.err != nil {
		return nil, m.err
	}
	return m.model.StartChat(ctx)
}
