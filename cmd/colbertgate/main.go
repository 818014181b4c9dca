// Command colbertgate runs the ColBERT embedding + Qdrant retrieval API.
//
// The process wires its components through Fx; start hooks run in module
// order, so the Qdrant collection is reconciled before the API server
// begins accepting requests.
package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/colbertgate/colbertgate/embedding"
	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/qdrant"
	"github.com/colbertgate/colbertgate/server"
	"github.com/colbertgate/colbertgate/tracer"
)

func main() {
	fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		embedding.FXModule,
		qdrant.FXModule,
		server.FXModule,
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
	).Run()
}
