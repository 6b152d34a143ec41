// Package metrics defines the Prometheus collectors exported by the
// service. Collectors are registered on a caller supplied registry so
// tests can use a fresh one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
	Fetches      *prometheus.CounterVec
	FetchLatency *prometheus.HistogramVec
	Degraded     *prometheus.CounterVec
	CacheHits    *prometheus.CounterVec
}

// New creates and registers all collectors on a new registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfbi",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "perfbi",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfbi",
			Name:      "datasource_fetch_total",
			Help:      "Dataset fetches by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		FetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "perfbi",
			Name:      "datasource_fetch_duration_seconds",
			Help:      "Dataset fetch latency including retries.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"dataset"}),
		Degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfbi",
			Name:      "decode_degraded_cells_total",
			Help:      "Malformed spreadsheet cells replaced by zero values.",
		}, []string{"dataset", "field"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfbi",
			Name:      "decode_cache_total",
			Help:      "Decoded dataset cache lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		m.HTTPRequests, m.HTTPLatency, m.Fetches, m.FetchLatency, m.Degraded, m.CacheHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
