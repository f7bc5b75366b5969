// Package logger provides structured logging functionality for the application.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/devai/internal/config"
)

// ParseLevel converts a configured level name into a slog.Level.
// Unknown names fall back to warn, which mirrors the default configuration,
// and the returned bool reports whether the name was recognized.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured logger with the
// appropriate level and format and sets it as the default logger.
//
// Every record carries an invocation_id so the log lines of one command run
// can be told apart. When out is nil, logs go to stderr. An unknown level or
// format is an error and leaves the default logger untouched.
func Setup(cfg config.LogConfig, out io.Writer) (*slog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	level, ok := ParseLevel(cfg.Level)
	if !ok {
		return nil, errors.New("unsupported log level: " + cfg.Level)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text", "":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, errors.New("unsupported log format: " + cfg.Format)
	}

	logger := slog.New(handler).With("invocation_id", uuid.NewString())

	// Set this logger as the default for the application
	slog.SetDefault(logger)

	return logger, nil
}
