package bootstrap

import (
	"testing"

	"github.com/GregMSThompson/chat-client/internal/config"
	"github.com/GregMSThompson/chat-client/internal/messages"
)

func TestRunWiresComponents(t *testing.T) {
	cfg := &config.Config{
		BaseURL:     "http://localhost:5000",
		ContextPath: "/app",
		ChatPath:    "/chat",
		Locale:      "pt-BR",
		LogLevel:    "error",
	}

	bs, err := Run(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bs.Log == nil || bs.Chat == nil || bs.Renderer == nil || bs.Metrics == nil {
		t.Fatalf("bootstrap left components nil: %+v", bs)
	}
	if bs.Chat.Endpoint() != "http://localhost:5000/app/chat" {
		t.Fatalf("unexpected endpoint %q", bs.Chat.Endpoint())
	}
	if bs.Messages != messages.Portuguese {
		t.Fatalf("expected Portuguese catalogue")
	}
}

func TestRunRejectsInvalidEndpoint(t *testing.T) {
	cfg := &config.Config{BaseURL: "http://bad host\x7f", ChatPath: "/chat", LogLevel: "error"}

	bs, err := Run(cfg)
	if err == nil {
		t.Fatalf("expected an error for an unparseable endpoint")
	}
	if bs == nil || bs.Log == nil {
		t.Fatalf("logger must be available for exitOnError even on failure")
	}
}

func TestInitHTTPClientHasNoTimeout(t *testing.T) {
	if InitHTTPClient().Timeout != 0 {
		t.Fatalf("chat requests must not time out client-side")
	}
}
