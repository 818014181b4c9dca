package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/colbertgate/colbertgate/logger"
)

// Client wraps the official Qdrant Go client.
//
// It manages connection lifecycle and configuration; the higher-level
// collection and point operations live on Store.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	log     *logger.Logger
	started bool
}

// NewClient constructs a new Client and validates connectivity via a health
// check. The Qdrant Go SDK creates lightweight gRPC connections, so the
// immediate health check fails fast if the service is unreachable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	log.Info("connecting to qdrant", nil, map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
	})

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Host,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		log:     log,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Info("qdrant client connected", nil, nil)
	return c, nil
}

// healthCheck verifies the availability of the Qdrant service. It is
// lightweight and fast, suitable for startup and readiness probes.
func (c *Client) healthCheck() error {
	if !c.started || c.api == nil {
		return fmt.Errorf("[Qdrant] client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	c.log.Debug("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.Title,
		"version": resp.Version,
	})
	return nil
}

// Close gracefully shuts down the Qdrant client.
//
// The SDK doesn't maintain persistent connections, so this exists for
// lifecycle symmetry.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	return c.api.Close()
}
