// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured logging
// with configurable log levels and JSON or text output. Logs are written to stderr
// so that standard output carries only the generated document.
package logger
