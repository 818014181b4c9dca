package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// EMBEDDING_ENDPOINT must point to the root of the ColBERT inference
// service (no path appended). The provider appends paths automatically,
// so callers only need to supply the host base URL.

type Config struct {
	// Inference endpoint and model selection
	Endpoint     string // Base URL of the ColBERT inference service
	ModelName    string // Model identifier forwarded on every encode call
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	endpoint := os.Getenv("EMBEDDING_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://colbert:8000"
	}

	model := os.Getenv("MODEL_NAME")
	if model == "" {
		model = "LiquidAI/LFM2-ColBERT-350M"
	}

	return &Config{
		Endpoint:     endpoint,
		ModelName:    model,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.ModelName == "" {
		return fmt.Errorf("embedding: missing MODEL_NAME")
	}
	return nil
}
