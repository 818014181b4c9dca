// Package tracer wires OpenTelemetry tracing for the colbertgate service.
//
// Export is off by default and enabled with TRACING_ENABLED=true, in which
// case spans are batched to an OTLP/HTTP collector. Without export the
// provider still runs, so span creation stays cheap and callers never
// branch on whether tracing is on.
//
// The wrapper offers StartSpan, SetAttributes and RecordErrorOnSpan;
// request middleware opens the root span and the adapters nest theirs
// under it through the request context.
package tracer
