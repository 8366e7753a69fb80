// Package traceline provides X-Ray format trace identifiers for distributed
// request tracking.
//
// A trace ID names one end-to-end request path through a system. Its
// canonical string form is 35 ASCII characters in three hex fields:
//
//	1-5759e988-bd862e3fe1be46a994272793
//	^ ^^^^^^^^ ^^^^^^^^^^^^^^^^^^^^^^^^
//	version    96-bit random value
//	  epoch seconds
//
// # Generating and parsing
//
// NewTraceID mints an identifier from the current clock and the process
// entropy source. ParseTraceID decodes the canonical form and is total:
// malformed input yields a freshly generated identifier rather than an
// error, so a service never stalls on a bad inbound value.
//
//	id := traceline.ParseTraceID(header)
//	log := logger.With(zap.String("trace_id", id.String()))
//
// Tooling that must reject bad input instead of papering over it uses
// ValidateTraceID first.
//
// # Propagation
//
// TraceHeader decodes and renders the X-Amzn-Trace-Id header, which carries
// the trace ID between services along with a parent segment ID and the
// upstream sampling decision. The middleware package wires this into
// net/http, Fiber, and gRPC; the otelprop package bridges it to
// OpenTelemetry context propagation.
//
// # Concurrency
//
// TraceID and SegmentID are immutable values and safe to share freely.
// All generation and parsing functions are safe for concurrent use.
package traceline
