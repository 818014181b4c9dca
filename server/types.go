package server

import (
	"context"

	"github.com/colbertgate/colbertgate/embedding"
	"github.com/colbertgate/colbertgate/qdrant"
)

// Encoder is the embedding adapter surface the handlers depend on.
// *embedding.Client satisfies it.
type Encoder interface {
	EncodePooled(ctx context.Context, texts []string, mode embedding.Mode) ([][]float32, error)
}

// Store is the vector store surface the handlers depend on.
// *qdrant.Store satisfies it.
type Store interface {
	Upsert(ctx context.Context, points []qdrant.Point) (int, error)
	Search(ctx context.Context, vector []float32, topK int) ([]qdrant.SearchHit, error)
	CollectionInfo(ctx context.Context) (*qdrant.Collection, error)
}

// IndexRequest indexes one document under a caller-assigned id.
type IndexRequest struct {
	DocID string `json:"doc_id" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

// IndexResponse acknowledges a single-document index.
type IndexResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// QueryRequest searches the collection with one or more query texts.
// TopK defaults to 3 when omitted.
type QueryRequest struct {
	QueryTexts []string `json:"query_texts" binding:"required"`
	TopK       *int     `json:"top_k"`
}

// BatchIndexRequest indexes several documents in one call.
type BatchIndexRequest struct {
	Docs []IndexRequest `json:"docs" binding:"required"`
}

// BatchIndexResponse acknowledges a batch index.
type BatchIndexResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// BatchQueryRequest searches the collection with a batch of query texts.
// TopK defaults to 3 when omitted.
type BatchQueryRequest struct {
	Queries []string `json:"queries" binding:"required"`
	TopK    *int     `json:"top_k"`
}

// QueryResult pairs one query text with its hits, in input order.
type QueryResult struct {
	Query   string             `json:"query"`
	Results []qdrant.SearchHit `json:"results"`
}

// EmbeddingsRequest is the OpenAI-compatible request body. Exactly one of
// Input (single string) or Inputs (list) is expected; Input wins when both
// are present.
type EmbeddingsRequest struct {
	Model  string   `json:"model"`
	Input  *string  `json:"input"`
	Inputs []string `json:"inputs"`
}

// EmbeddingObject is one entry of the OpenAI-compatible response.
// Index is the 0-based position matching input order.
type EmbeddingObject struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingsResponse is the OpenAI-compatible embeddings response.
// Usage always serializes as an empty object; no token accounting exists.
type EmbeddingsResponse struct {
	Object string            `json:"object"`
	Data   []EmbeddingObject `json:"data"`
	Model  string            `json:"model"`
	Usage  struct{}          `json:"usage"`
}

// HealthResponse reports store reachability. The call itself never fails;
// errors are embedded in the body.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details"`
}

const defaultTopK = 3

// topKOrDefault applies the documented default when the field was omitted.
func topKOrDefault(v *int) int {
	if v == nil {
		return defaultTopK
	}
	return *v
}
