//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/GregMSThompson/chat-client/internal/bootstrap"
	"github.com/GregMSThompson/chat-client/internal/config"
	"github.com/GregMSThompson/chat-client/internal/form"
	"github.com/GregMSThompson/chat-client/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap; the page is the environment here
	cfg := config.New()
	cfg.BaseURL = ""
	cfg.ContextPath = pageString("contextPath")
	if lang := js.Global().Get("document").Get("documentElement").Get("lang"); lang.Type() == js.TypeString && lang.String() != "" {
		cfg.Locale = lang.String()
	}
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	ctx := logger.ToContext(context.Background(), bs.Log)

	onReady(func() {
		view, err := newDOMView(js.Global().Get("document"))
		if err != nil {
			bs.Log.Error("page is missing form elements", "error", err)
			return
		}
		ctrl := form.NewController(view, bs.Chat, bs.Renderer, bs.Messages, bs.Metrics)
		ctrl.Bind(ctx)
		bs.Log.Debug("form bound", "endpoint", bs.Chat.Endpoint())
	})

	// callbacks need the Go runtime alive
	select {}
}

// pageString reads a global the host page may define, "" when absent.
func pageString(name string) string {
	v := js.Global().Get(name)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

// onReady runs fn once the DOM is parsed.
func onReady(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", cb)
}
