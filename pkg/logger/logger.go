package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output is where every handler in this package writes. Stdout belongs to
// the terminal view, so diagnostics go to stderr (the console in a browser).
var Output io.Writer = os.Stderr

func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	h := handler(ParseLevel(level))
	return slog.New(h)
}

// HandlerFor picks a handler factory by LOGFORMAT.
func HandlerFor(format string) func(level slog.Level) slog.Handler {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONHandler
	default:
		return NewConsoleHandler
	}
}

// ---- Helpers ----
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
