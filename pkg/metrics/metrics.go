package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry with the inference client and ranking
// collectors. It satisfies ollama.Observer and similarity.Observer.
type Metrics struct {
	Registry *prometheus.Registry

	ollamaRequests *prometheus.CounterVec
	ollamaDuration *prometheus.HistogramVec
	comparisons    *prometheus.CounterVec
}

// New builds the registry and registers every collector.
func New(cfg Config) *Metrics {
	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	registry := prometheus.NewRegistry()
	if cfg.EnableDefaultCollectors {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry: registry,
		ollamaRequests: createCounterVec(ns, "ollama_requests_total",
			"Calls to the inference server by endpoint and outcome.",
			[]string{"endpoint", "outcome"}),
		ollamaDuration: createHistogramVec(ns, "ollama_request_duration_seconds",
			"Wall time of inference server calls, including the streamed body.",
			[]string{"endpoint"},
			[]float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 70}),
		comparisons: createCounterVec(ns, "similarity_comparisons_total",
			"Candidate comparisons by outcome.",
			[]string{"outcome"}),
	}

	registry.MustRegister(m.ollamaRequests, m.ollamaDuration, m.comparisons)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveRequest records one finished inference server call.
func (m *Metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	m.ollamaRequests.WithLabelValues(endpoint, outcome).Inc()
	m.ollamaDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveComparison records the outcome of one candidate comparison.
func (m *Metrics) ObserveComparison(outcome string) {
	m.comparisons.WithLabelValues(outcome).Inc()
}
