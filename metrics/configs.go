package metrics

import "os"

// Config holds settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string

	// ServiceName is attached to all metrics as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors controls registration of the Go runtime,
	// process and build info collectors.
	EnableDefaultCollectors bool
}

// NewConfig builds the metrics configuration from the environment.
// METRICS_ADDR defaults to ":9090".
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		addr = ":9090"
	}

	return Config{
		Address:                 addr,
		ServiceName:             "colbertgate",
		EnableDefaultCollectors: true,
	}
}
