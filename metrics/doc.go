// Package metrics exposes Prometheus instrumentation for the colbertgate
// service.
//
// A dedicated HTTP server (METRICS_ADDR, default ":9090") serves /metrics
// from a private registry. Three collectors cover the service:
//
//   - request counter and latency histogram, labeled by route and status
//   - backend call latency histogram, labeled by backend (embedding,
//     qdrant) and operation
//
// Handlers and adapters record through ObserveRequest and
// ObserveBackendCall; they never touch the registry directly.
package metrics
