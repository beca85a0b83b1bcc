package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/chat-client/internal/bootstrap"
	"github.com/GregMSThompson/chat-client/internal/config"
	"github.com/GregMSThompson/chat-client/internal/form"
	"github.com/GregMSThompson/chat-client/internal/router"
	"github.com/GregMSThompson/chat-client/internal/terminal"
	"github.com/GregMSThompson/chat-client/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	ctx := logger.ToContext(context.Background(), bs.Log)

	// diagnostics
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: router.NewDiagnosticsRouter(bs.Log, bs.Metrics),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				bs.Log.Error("diagnostics server stopped", "error", err, "addr", cfg.MetricsAddr)
			}
		}()
		defer srv.Close()
		bs.Log.Info("diagnostics listening", "addr", cfg.MetricsAddr)
	}

	// form
	view := terminal.New(os.Stdin, os.Stdout, bs.Messages)
	ctrl := form.NewController(view, bs.Chat, bs.Renderer, bs.Messages, bs.Metrics)
	ctrl.Bind(ctx)

	err = view.Run(ctx)
	exitOnError("reading prompts failed", err, bs.Log)
}
