package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type inferenceProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &inferenceProvider{
		baseURL:    base,
		model:      cfg.ModelName,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Encode requests one multi-vector per input text from the inference
// service. The response preserves input order; the number of multi-vectors
// must equal the number of texts.
func (p *inferenceProvider) Encode(ctx context.Context, texts []string, mode Mode) ([][][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("inference: no texts provided")
	}

	reqBody := map[string]any{
		"model":    p.model,
		"texts":    texts,
		"is_query": mode.isQuery(),
	}

	url := fmt.Sprintf("%s/encode", p.baseURL)

	var parsed struct {
		Embeddings [][][]float32 `json:"embeddings"`
	}

	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("inference: expected %d embeddings, got %d", len(texts), len(parsed.Embeddings))
	}

	return parsed.Embeddings, nil
}
