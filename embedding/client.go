package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/tracer"
)

// Client is the public entrypoint for computing pooled embeddings.
//
// It hides all provider details (inference endpoint, HTTP, pooling) from
// the application layer. Application code should depend on *Client, not on
// Provider or the inference provider.
type Client struct {
	provider Provider
	log      *logger.Logger
	trc      *tracer.Tracer
	metrics  *metrics.Metrics
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
func NewClient(cfg *Config, log *logger.Logger, trc *tracer.Tracer, m *metrics.Metrics) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	log.Info("embedding client ready", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"model":    cfg.ModelName,
	})

	return &Client{provider: p, log: log, trc: trc, metrics: m}, nil
}

// EncodePooled encodes the given texts and mean-pools each resulting
// multi-vector into a single fixed-size vector. The output is length- and
// order-preserving: pooled[i] corresponds to texts[i].
func (c *Client) EncodePooled(ctx context.Context, texts []string, mode Mode) ([][]float32, error) {
	ctx, span := c.trc.StartSpan(ctx, "embedding.encode")
	defer span.End()
	c.trc.SetAttributes(span, map[string]interface{}{
		"texts.count": len(texts),
		"is_query":    mode.isQuery(),
	})
	defer c.metrics.ObserveBackendCall(time.Now(), "embedding", "encode")

	multis, err := c.provider.Encode(ctx, texts, mode)
	if err != nil {
		c.trc.RecordErrorOnSpan(span, err)
		return nil, fmt.Errorf("embedding: encode failed: %w", err)
	}

	pooled := make([][]float32, len(multis))
	for i, multi := range multis {
		pooled[i] = MeanPool(multi)
	}
	return pooled, nil
}

// Close releases any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
