package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server exposing
// the /metrics endpoint.
//
// Each service instance maintains its own isolated registry to avoid metric
// name collisions, and all metrics carry a constant `service` label.
type Metrics struct {
	// Server exposes the /metrics endpoint on its own listener.
	Server *http.Server

	// Registry is the isolated Prometheus registry of this service.
	Registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendDuration *prometheus.HistogramVec
}

// NewMetrics builds an isolated registry, registers the built-in metrics of
// the facade (request counts, request latency, embedding-engine and store
// call latency) plus the standard Go runtime collectors, and wraps it in an
// HTTP server for Prometheus scraping.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{Registry: registry}

	m.requestsTotal = createCounterVec(
		"requests_total",
		"Total number of handled HTTP requests",
		[]string{"route", "status"},
	)
	m.requestDuration = createHistogramVec(
		"request_duration_seconds",
		"Duration of HTTP requests in seconds",
		[]string{"route"},
		prometheus.DefBuckets,
	)
	m.backendDuration = createHistogramVec(
		"backend_call_duration_seconds",
		"Duration of embedding-engine and vector-store calls in seconds",
		[]string{"backend", "operation"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.backendDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}
