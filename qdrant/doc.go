// Package qdrant is a thin wrapper around the official Qdrant Go client,
// bound to the single collection this service operates on.
//
// Responsibilities:
//   - Establish and validate connectivity with Qdrant.
//   - Reconcile the collection at startup (create if missing, recreate if
//     unhealthy, leave alone if healthy).
//   - Upsert points and run similarity searches.
//   - Probe collection metadata for the health endpoint.
//
// The wrapper intentionally hides Qdrant SDK internals (protobuf point ids,
// payload values, nested collection config) so the application layer works
// with plain Point, SearchHit and Collection values.
package qdrant
