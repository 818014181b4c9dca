package tracer

import "os"

// Config holds tracing settings.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string

	// AppEnv is the deployment environment attribute (e.g. "production").
	AppEnv string

	// EnableExport controls whether spans are exported over OTLP/HTTP.
	// When disabled the provider still runs, so span creation stays cheap
	// and callers never need to branch on tracing being on.
	EnableExport bool
}

// NewConfig builds the tracer configuration from the environment.
//
// TRACING_ENABLED ("true") turns on OTLP export; the exporter endpoint is
// taken from the standard OTEL_EXPORTER_OTLP_* variables by the SDK itself.
// APP_ENV defaults to "development".
func NewConfig() Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  "colbertgate",
		AppEnv:       env,
		EnableExport: os.Getenv("TRACING_ENABLED") == "true",
	}
}
