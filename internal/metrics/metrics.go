// Package metrics exposes Prometheus collectors for generation requests and provider calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for GenerationsTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeBadRequest   = "bad_request"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// Provider call kinds.
const (
	CallText  = "text"
	CallImage = "image"
)

type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
	ProviderErrors   *prometheus.CounterVec
	FeedbackTotal    *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		GenerationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profiler",
			Name:      "generations_total",
			Help:      "Profile strategy generation requests by outcome.",
		}, []string{"outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "profiler",
			Name:      "provider_call_duration_seconds",
			Help:      "Latency of calls to the generative provider.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"call"}),
		ProviderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profiler",
			Name:      "provider_errors_total",
			Help:      "Failed calls to the generative provider.",
		}, []string{"call"}),
		FeedbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profiler",
			Name:      "feedback_total",
			Help:      "User feedback on generated results.",
		}, []string{"rating"}),
	}

	reg.MustRegister(
		m.GenerationsTotal,
		m.ProviderDuration,
		m.ProviderErrors,
		m.FeedbackTotal,
		prometheus.NewGoCollector(),
	)

	return m
}

// ObserveProviderCall records the latency of one provider call and counts it as failed when err is set.
// Safe to call on a nil *Metrics.
func (m *Metrics) ObserveProviderCall(call string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.ProviderDuration.WithLabelValues(call).Observe(time.Since(started).Seconds())
	if err != nil {
		m.ProviderErrors.WithLabelValues(call).Inc()
	}
}

func (m *Metrics) CountGeneration(outcome string) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CountFeedback(rating string) {
	if m == nil {
		return
	}
	m.FeedbackTotal.WithLabelValues(rating).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
