// Package log provides leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a leveled logger.
// The zero value is not usable; use New or Discard.
type Logger struct{ *slog.Logger }

// New builds a logger that writes to the given writer.
// The logger defaults to level Info and plain, uncolored output.
func New(w io.Writer) *Logger {
	return &Logger{slog.New(&handler{
		W:     w,
		Level: Info,
	})}
}

// Level reports the minimum level of messages that will be logged.
func (l *Logger) Level() Level {
	if h, ok := l.Handler().(*handler); ok {
		return h.Level
	}
	return Error + 1
}

// WithLevel builds a copy of this logger that logs messages
// at or above the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	return l.withHandler(func(h *handler) { h.Level = lvl })
}

// WithColor builds a copy of this logger
// that highlights levels and messages with ANSI escape codes.
func (l *Logger) WithColor(color bool) *Logger {
	return l.withHandler(func(h *handler) { h.Color = color })
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
//
// Names nest: WithName("a").WithName("b") logs messages prefixed with [a.b].
func (l *Logger) WithName(name string) *Logger {
	return l.withHandler(func(h *handler) {
		if len(h.name) > 0 {
			h.name += "."
		}
		h.name += name
	})
}

func (l *Logger) withHandler(fn func(*handler)) *Logger {
	h, ok := l.Handler().(*handler)
	if !ok {
		return l // discard
	}

	out := *h
	fn(&out)
	return &Logger{slog.New(&out)}
}
