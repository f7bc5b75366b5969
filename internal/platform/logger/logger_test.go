// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts the original default logger back after the test.
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupJSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.Setup(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("hidden message")
	l.Info("visible message", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "Debug records should be filtered at info level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.NotEmpty(t, entry["invocation_id"], "Every record should carry an invocation id")
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupText(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.Setup(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Info("hidden message")
	l.Warn("visible message")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "msg=\"visible message\"")
}

func TestSetupUnsupportedFormat(t *testing.T) {
	restoreDefault(t)

	l, err := logger.Setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})

	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestSetupUnsupportedLevel(t *testing.T) {
	restoreDefault(t)
	before := slog.Default()

	l, err := logger.Setup(config.LogConfig{Level: "chatty", Format: "json"}, &bytes.Buffer{})

	assert.ErrorContains(t, err, "unsupported log level")
	assert.Nil(t, l)
	assert.Same(t, before, slog.Default(), "A rejected config must not replace the default logger")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelWarn, false},
		{"fatal", slog.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestTestLogBuffer(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	l.Info("first", "n", 1)
	l.Warn("second")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entry, ok := logger.FindEntry(t, buf, "second")
	require.True(t, ok)
	assert.Equal(t, "WARN", entry["level"])

	logger.AssertLogContains(t, buf, "first")
	logger.AssertLogField(t, buf, "n", float64(1))

	buf.Reset()
	assert.Empty(t, buf.String())
}
