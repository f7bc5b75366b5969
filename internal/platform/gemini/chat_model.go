package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/generation"
	"github.com/phrazzld/devai/internal/redact"
)

// chatSender is the part of *genai.Chat a session needs.
type chatSender interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// chatFactory opens a chat on the named model with empty history.
type chatFactory func(ctx context.Context, model string) (chatSender, error)

// ChatModel implements generation.ChatModel on top of a genai client.
type ChatModel struct {
	// logger is used for structured logging
	logger *slog.Logger

	// model is the name of the Gemini model to use
	model string

	// newChat opens chats; it wraps client.Chats.Create in production
	newChat chatFactory
}

var _ generation.ChatModel = (*ChatModel)(nil)

// NewChatModel creates a ChatModel with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client construction
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing model name, backend and user agent
//   - projectID: Google Cloud project for the Vertex AI backend; may be empty,
//     in which case the SDK falls back to its own environment lookup
//
// Returns:
//   - A ChatModel or an error wrapping generation.ErrInvalidConfig
func NewChatModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, projectID string) (*ChatModel, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	clientConfig, err := clientConfigFor(cfg, projectID)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.DebugContext(ctx, "Gemini client created",
		"model", cfg.ModelName,
		"backend", cfg.Backend)

	return &ChatModel{
		logger: logger,
		model:  cfg.ModelName,
		newChat: func(ctx context.Context, model string) (chatSender, error) {
			chat, err := client.Chats.Create(ctx, model, nil, nil)
			if err != nil {
				return nil, err
			}
			return chat, nil
		},
	}, nil
}

// clientConfigFor translates LLM settings into a genai client configuration.
func clientConfigFor(cfg config.LLMConfig, projectID string) (*genai.ClientConfig, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("%w: user agent cannot be empty", generation.ErrInvalidConfig)
	}

	headers := http.Header{}
	headers.Set("User-Agent", cfg.UserAgent)

	clientConfig := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{Headers: headers},
	}

	switch strings.ToLower(cfg.Backend) {
	case "vertexai":
		if cfg.Location == "" {
			return nil, fmt.Errorf("%w: location cannot be empty for the vertexai backend", generation.ErrInvalidConfig)
		}
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = projectID
		clientConfig.Location = cfg.Location
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
		}
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = cfg.APIKey
	default:
		return nil, fmt.Errorf("%w: unsupported backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}

	return clientConfig, nil
}

// StartChat opens a new chat session with empty history.
func (m *ChatModel) StartChat(ctx context.Context) (generation.ChatSession, error) {
	chat, err := m.newChat(ctx, m.model)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start chat: %v", generation.ErrGenerationFailed, redact.Error(err))
	}

	m.logger.DebugContext(ctx, "Chat session started", "model", m.model)

	return &chatSession{logger: m.logger, model: m.model, chat: chat}, nil
}

// chatSession implements generation.ChatSession for one genai chat.
type chatSession struct {
	logger *slog.Logger
	model  string
	chat   chatSender
	turn   int
}

// Send delivers message as a single text part and returns the reply text.
func (s *chatSession) Send(ctx context.Context, message string) (string, error) {
	s.turn++

	s.logger.InfoContext(ctx, "Making Gemini API call",
		"model", s.model,
		"turn", s.turn,
		"message_length", len(message))

	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		s.logger.ErrorContext(ctx, "Gemini API call failed",
			"turn", s.turn,
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, redact.Error(err))
	}

	text, err := responseText(resp)
	if err != nil {
		s.logger.ErrorContext(ctx, "Gemini API returned an unusable response",
			"turn", s.turn,
			"error", err)
		return "", err
	}

	s.logger.InfoContext(ctx, "Gemini API call successful",
		"turn", s.turn,
		"response_length", len(text))

	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response has no text", generation.ErrInvalidResponse)
	}

	return b.String(), nil
}
