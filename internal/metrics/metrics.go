package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	namespace = "chatform"
	subsystem = "form"
)

// Metrics is the form's own registry, kept off the global default so each
// binary (and each test) sees only its own series.
type Metrics struct {
	Registry *prometheus.Registry

	// SubmissionsTotal counts finished submissions by outcome.
	SubmissionsTotal *prometheus.CounterVec

	// RequestDurationSeconds is the time from disabling the form to
	// re-enabling it, for submissions that reached the network.
	RequestDurationSeconds *prometheus.HistogramVec

	// Submitting is 1 while the submit control is disabled.
	Submitting prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "submissions_total",
			Help:      "Form submissions handled, labeled by outcome.",
		}, []string{"outcome"}),
		RequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time a submission kept the form disabled, labeled by outcome.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60, 120},
		}, []string{"outcome"}),
		Submitting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "submitting",
			Help:      "Whether a submission is currently in flight.",
		}),
	}

	m.Registry.MustRegister(
		m.SubmissionsTotal,
		m.RequestDurationSeconds,
		m.Submitting,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) SetSubmitting(submitting bool) {
	if submitting {
		m.Submitting.Set(1)
		return
	}
	m.Submitting.Set(0)
}

// Observe records one finished submission. A zero elapsed time means the
// submission never reached the network and only the counter moves.
func (m *Metrics) Observe(outcome string, elapsed time.Duration) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.RequestDurationSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
	}
}
