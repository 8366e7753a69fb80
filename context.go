package traceline

import "context"

type contextKey int

const (
	traceIDKey contextKey = iota
	traceHeaderKey
)

// WithTraceID returns a new context carrying id.
func WithTraceID(ctx context.Context, id TraceID) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceIDFromContext returns the trace ID carried by ctx, if any.
func TraceIDFromContext(ctx context.Context) (TraceID, bool) {
	id, ok := ctx.Value(traceIDKey).(TraceID)
	return id, ok
}

// WithTraceHeader returns a new context carrying the full propagation
// header, so downstream injection keeps Parent, Sampled, and Extra intact.
func WithTraceHeader(ctx context.Context, h TraceHeader) context.Context {
	return context.WithValue(ctx, traceHeaderKey, h)
}

// TraceHeaderFromContext returns the propagation header carried by ctx, if
// any.
func TraceHeaderFromContext(ctx context.Context) (TraceHeader, bool) {
	h, ok := ctx.Value(traceHeaderKey).(TraceHeader)
	return h, ok
}
