// Package server implements the HTTP facade of colbertgate.
//
// The surface is small and fixed:
//
//	GET  /health         — unauthenticated store reachability probe
//	POST /index/         — index one document            (X-API-Key)
//	POST /search/        — search with query texts       (X-API-Key)
//	POST /batch_index/   — index a document batch        (X-API-Key)
//	POST /batch_search/  — search with a query batch     (X-API-Key)
//	POST /v1/embeddings  — OpenAI-compatible embeddings  (Bearer token)
//
// Every handler follows the same translation: validate, encode through the
// embedding adapter, forward to the store, shape the response. Failures of
// either backend surface as HTTP 500 with the underlying error as the
// detail string; no retries, no partial recovery. Error bodies use the
// `{"detail": ...}` shape existing callers already parse.
package server
