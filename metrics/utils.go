package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveRequest records one handled HTTP request: increments the per-route
// counter with its status code and observes the handling duration.
//
// Example: defer m.ObserveRequest(time.Now(), "/search/", 200)
func (m *Metrics) ObserveRequest(start time.Time, route string, status int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// ObserveBackendCall records the duration of one call to an external backend.
//
// Example: defer m.ObserveBackendCall(time.Now(), "qdrant", "upsert")
func (m *Metrics) ObserveBackendCall(start time.Time, backend, operation string) {
	m.backendDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
