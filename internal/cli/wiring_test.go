package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/document"
	"github.com/phrazzld/devai/internal/generation"
	"github.com/phrazzld/devai/internal/mocks"
	"github.com/phrazzld/devai/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyChatModelBuildsOnce(t *testing.T) {
	builds := 0
	inner := mocks.NewMockChatModelWithReplies("ok")
	m := &lazyChatModel{build: func(context.Context) (generation.ChatModel, error) {
		builds++
		return inner, nil
	}}

	for i := 0; i < 2; i++ {
		_, err := m.StartChat(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, builds)
	assert.Equal(t, 2, inner.StartChatCount())
}

func TestLazyChatModelBuildFailure(t *testing.T) {
	m := &lazyChatModel{build: func(context.Context) (generation.ChatModel, error) {
		return nil, generation.ErrInvalidConfig
	}}

	_, err := m.StartChat(context.Background())

	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}

func TestNewGeneratorOpensNoClients(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)
	cfg := &config.Config{LLM: config.LLMConfig{
		ModelName: config.DefaultModelName,
		UserAgent: config.DefaultUserAgent,
		Backend:   "gemini",
	}}

	runner, err := NewGenerator(ctx, cfg)
	require.NoError(t, err)

	out, err := runner.Run(ctx, document.Request{Kind: document.KindUpdateReadme, File: "README.md"})

	require.NoError(t, err)
	assert.Equal(t, document.UpdateReadmeMessage, out)
	logger.AssertLogContains(t, buf, "Update options are accepted but not used yet")
}
