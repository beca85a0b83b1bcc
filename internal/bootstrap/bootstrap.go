package bootstrap

import (
	"fmt"
	"log/slog"
	"net/url"

	chatclient "github.com/GregMSThompson/chat-client/internal/client/chat"
	"github.com/GregMSThompson/chat-client/internal/config"
	"github.com/GregMSThompson/chat-client/internal/messages"
	"github.com/GregMSThompson/chat-client/internal/metrics"
	"github.com/GregMSThompson/chat-client/internal/render"
	"github.com/GregMSThompson/chat-client/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Messages messages.Catalogue
	Chat     *chatclient.Adapter
	Renderer *render.Markdown
	Metrics  *metrics.Metrics
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.HandlerFor(cfg.LogFormat))
	bs.Messages = messages.For(cfg.Locale)
	bs.Renderer = render.NewMarkdown()
	bs.Metrics = metrics.New()

	endpoint := cfg.Endpoint()
	if _, err := url.Parse(endpoint); err != nil {
		return bs, fmt.Errorf("invalid chat endpoint %q: %w", endpoint, err)
	}
	bs.Chat = chatclient.NewAdapter(InitHTTPClient(), endpoint)

	bs.Log.Info("chat client configured", "endpoint", endpoint, "locale", cfg.Locale)
	return bs, nil
}
