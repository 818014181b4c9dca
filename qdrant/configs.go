package qdrant

import (
	"os"
	"strconv"
	"time"
)

// Config holds connection and collection settings for the Qdrant store.
type Config struct {
	// Hostname of the Qdrant server.
	Host string

	// Port of the Qdrant server.
	Port int

	// Optional authentication token for secured deployments.
	ApiKey string

	// Collection is the single collection this service operates on.
	Collection string

	// VectorSize is the dimension of every stored vector. It must match
	// the embedding engine's pooled output dimension.
	VectorSize uint64

	// Timeout bounds startup-time probe calls.
	Timeout time.Duration

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool
}

// NewConfig builds the store configuration from the environment.
//
// QDRANT_HOST defaults to "qdrant", QDRANT_PORT to 6333, COLLECTION_NAME to
// "colbert_docs" and VECTOR_SIZE to 128.
func NewConfig() *Config {
	cfg := &Config{
		Host:       "qdrant",
		Port:       6333,
		Collection: "colbert_docs",
		VectorSize: 128,
		Timeout:    5 * time.Second,
	}

	if v := os.Getenv("QDRANT_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
	if v := os.Getenv("COLLECTION_NAME"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("VECTOR_SIZE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			cfg.VectorSize = n
		}
	}

	return cfg
}
