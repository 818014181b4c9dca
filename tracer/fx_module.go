package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires distributed tracing into an Fx application.
//
// It provides the Tracer and registers a shutdown hook so pending spans are
// flushed to the exporter before the process terminates.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts down the tracer provider on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if t.tracer == nil {
				return nil
			}
			return t.tracer.Shutdown(ctx)
		},
	})
}
