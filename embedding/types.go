package embedding

import "context"

// Mode selects how the engine encodes a text. ColBERT-style models use
// different internal representations for queries and documents; beyond that
// the distinction is opaque to this package.
type Mode int

const (
	ModeDocument Mode = iota
	ModeQuery
)

// isQuery is the wire representation of the mode flag.
func (m Mode) isQuery() bool {
	return m == ModeQuery
}

// Provider contract
type Provider interface {
	// Encode produces one multi-vector (rows x dim, one row per token) for
	// each input text, preserving input order.
	Encode(ctx context.Context, texts []string, mode Mode) ([][][]float32, error)
}
