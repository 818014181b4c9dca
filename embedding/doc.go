// Package embedding provides a high-level API for computing pooled ColBERT
// embeddings through an external inference service.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// inference HTTP protocol and the pooling step:
//
//	client, err := embedding.NewClient(cfg, log, trc, m)
//	vectors, err := client.EncodePooled(ctx, texts, embedding.ModeDocument)
//
// The inference service returns one multi-vector per text (one row per
// token). EncodePooled reduces each multi-vector to a single fixed-size
// vector by arithmetic mean pooling across the token axis, so vectors[i]
// always corresponds to texts[i] and has the model's output dimension.
//
// # Modes
//
// ColBERT-style models encode queries and documents differently. Callers
// pick the representation with ModeQuery or ModeDocument; the flag is
// forwarded to the engine as-is.
//
// # Configuration
//
// Configuration is sourced from environment variables via NewConfig():
//
//   - EMBEDDING_ENDPOINT — base URL of the inference service
//     (default "http://colbert:8000")
//   - MODEL_NAME — model identifier sent on every encode call
//     (default "LiquidAI/LFM2-ColBERT-350M")
//   - EMBEDDING_HTTP_TIMEOUT_SECONDS — HTTP timeout (default 30)
package embedding
