package qdrant

// Point is the stored unit in the vector collection: an id, its pooled
// vector and the document payload. Upserting a point whose id already
// exists replaces the previous point entirely.
type Point struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

// SearchHit is a single similarity-search result.
type SearchHit struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar under cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// Collection contains metadata about the vector collection.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Red")
	Status string `json:"status"`

	// Points is the number of stored points
	Points uint64 `json:"points"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine")
	Distance string `json:"distance"`
}
