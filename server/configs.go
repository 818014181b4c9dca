package server

import "os"

// Config holds the HTTP server settings and the two route secrets.
//
// The internal routes and the OpenAI-compatible route are guarded by two
// independently configured secrets; they are never unified.
type Config struct {
	// Addr is the listen address of the API server.
	Addr string

	// APIKey is the shared secret for the internal routes, delivered via
	// the X-API-Key header.
	APIKey string

	// BearerToken is the secret for the OpenAI-compatible route, delivered
	// as "Authorization: Bearer <token>".
	BearerToken string
}

// NewConfig builds the server configuration from the environment.
//
// LISTEN_ADDR defaults to ":8000". API_KEY and OPENAI_BEARER_TOKEN carry
// the original deployment defaults and must be overridden in production.
func NewConfig() *Config {
	cfg := &Config{
		Addr:        ":8000",
		APIKey:      "change_this_key",
		BearerToken: "change_this_openai_token",
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENAI_BEARER_TOKEN"); v != "" {
		cfg.BearerToken = v
	}

	return cfg
}
