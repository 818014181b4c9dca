package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/colbertgate/colbertgate/logger"
)

// FXModule wires the Qdrant store into an Fx application.
//
// It provides *Config, *Client and *Store, and registers the lifecycle
// hooks: collection reconciliation on start (before the HTTP server begins
// accepting — start hooks run in module registration order) and client
// shutdown on stop. A reconciliation error fails process startup.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewClient,
		NewStore,
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// RegisterStoreLifecycle reconciles the collection at startup and closes
// the client connection on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store, client *Client, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.Reconcile(ctx)
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing qdrant client", nil, nil)
			return client.Close()
		},
	})
}
