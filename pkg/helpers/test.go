package helpers

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/GregMSThompson/chat-client/pkg/logger"
)

// TestCtx returns a context carrying a test logger.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}

// CaptureCtx returns a context whose logger writes text records into the
// returned buffer, for tests that assert on what was logged.
func CaptureCtx() (context.Context, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger.ToContext(context.Background(), log), buf
}
