// Package log provides the structured logger shared by the msqlite
// packages. It is a thin wrapper on top of slog that logs in JSON
// format with deterministic key ordering.
package log

import (
	"io"
	"log/slog"
)

// Namespaces used to differentiate logs from different parts.
const (
	NsConn  = "conn"
	NsShell = "shell"
	NsBench = "bench"
)

// Logger is a custom structured logger on top of slog.Logger
// that logs in JSON format.
type Logger struct {
	slogger *slog.Logger
}

// NewLogger creates a new Logger that writes to the given writer.
// The writer is typically os.Stdout but can be any io.Writer.
func NewLogger(writer io.Writer) Logger {
	slogger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return Logger{
		slogger: slogger,
	}
}

// IsInitialized returns whether this logger is backed by a real slog
// logger. The zero Logger is valid and discards everything.
func (l *Logger) IsInitialized() bool {
	return l.slogger != nil
}

// Info logs a structured info message.
//
// Accepts a message and a list of key-value pairs to be logged.
func (l *Logger) Info(msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Info(msg, kvToArgs(keyVals...)...)
}

// InfoNs logs a structured info message with a namespace.
//
// The namespace is used to differentiate logs from different parts
// and will be included as the first key-value pair in the log.
func (l *Logger) InfoNs(namespace string, msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Info(msg, kvToArgsNs(namespace, keyVals...)...)
}

// Debug logs a structured debug message.
//
// Accepts a message and a list of key-value pairs to be logged.
func (l *Logger) Debug(msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Debug(msg, kvToArgs(keyVals...)...)
}

// DebugNs logs a structured debug message with a namespace.
//
// The namespace is used to differentiate logs from different parts
// and will be included as the first key-value pair in the log.
func (l *Logger) DebugNs(namespace string, msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Debug(msg, kvToArgsNs(namespace, keyVals...)...)
}

// Warn logs a structured warning message.
//
// Accepts a message and a list of key-value pairs to be logged.
func (l *Logger) Warn(msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Warn(msg, kvToArgs(keyVals...)...)
}

// Error logs a structured error message.
//
// Accepts a message and a list of key-value pairs to be logged.
func (l *Logger) Error(msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Error(msg, kvToArgs(keyVals...)...)
}

// ErrorNs logs a structured error message with a namespace.
//
// The namespace is used to differentiate logs from different parts
// and will be included as the first key-value pair in the log.
func (l *Logger) ErrorNs(namespace string, msg string, keyVals ...KV) {
	if !l.IsInitialized() {
		return
	}
	l.slogger.Error(msg, kvToArgsNs(namespace, keyVals...)...)
}
