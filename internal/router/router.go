package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GregMSThompson/chat-client/internal/metrics"
	"github.com/GregMSThompson/chat-client/internal/middleware"
)

// NewDiagnosticsRouter exposes the form's metrics and a liveness probe.
func NewDiagnosticsRouter(log *slog.Logger, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	return r
}
