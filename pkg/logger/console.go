package logger

import (
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewConsoleHandler returns a colourised, human-oriented handler.
func NewConsoleHandler(level slog.Level) slog.Handler {
	return tint.NewHandler(Output, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}
