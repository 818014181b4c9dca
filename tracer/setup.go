package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/colbertgate/colbertgate/logger"
)

// Tracer provides a simplified API for distributed tracing with
// OpenTelemetry. It wraps the TracerProvider and offers helpers for
// creating spans and recording errors on them.
//
// The Tracer is safe for concurrent use and is shared across all request
// handlers.
type Tracer struct {
	tracer *trace.TracerProvider
	logger *logger.Logger
}

// NewClient sets up the OpenTelemetry tracer provider.
//
// When export is enabled an OTLP/HTTP exporter is attached; failing to build
// the exporter is fatal since the operator explicitly asked for traces.
// Resource attributes identify the service and its deployment environment.
func NewClient(cfg Config, log *logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Fatal("cannot initiate tracer", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Tracer{tracer: tp, logger: log}
}
