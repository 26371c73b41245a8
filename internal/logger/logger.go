package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the application logger, a thin wrapper over slog's text
// handler with a Fatal shortcut for startup failures.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to stdout at the given level.
func New(level int) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w at the given level.
// Tests use this to capture or discard server output.
func NewWithWriter(w io.Writer, level int) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})
	return &Logger{Logger: slog.New(handler)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
