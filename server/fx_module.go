package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/colbertgate/colbertgate/embedding"
	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/qdrant"
)

// FXModule wires the HTTP facade into an Fx application.
//
// The concrete embedding client and qdrant store are narrowed to the
// Encoder and Store interfaces the handlers depend on, so tests can swap
// in fakes without touching the wiring.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewServer,
		func(c *embedding.Client) Encoder { return c },
		func(s *qdrant.Store) Store { return s },
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the API server in the background once all
// earlier start hooks (notably collection reconciliation) have completed,
// and shuts it down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting API server", nil, map[string]interface{}{
					"address": s.http.Addr,
				})
				if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("API server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down API server", nil, nil)
			return s.http.Shutdown(ctx)
		},
	})
}
