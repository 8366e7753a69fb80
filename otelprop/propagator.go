// Package otelprop bridges traceline identifiers to OpenTelemetry context
// propagation.
//
// Propagator carries OpenTelemetry span contexts over the X-Amzn-Trace-Id
// header. The mapping between the two identifier forms is byte-exact: the
// 128-bit OpenTelemetry trace ID is the big-endian epoch followed by the
// 96-bit random value, and the 64-bit span ID is the segment ID.
package otelprop

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	traceline "github.com/traceline/traceline-go"
)

// Propagator implements propagation.TextMapPropagator using the
// X-Amzn-Trace-Id header format.
type Propagator struct{}

var _ propagation.TextMapPropagator = Propagator{}

// Inject writes the span context from ctx into the carrier. An invalid
// span context injects nothing.
func (Propagator) Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return
	}

	header := traceline.TraceHeader{
		Root:     traceline.TraceIDFromBytes(sc.TraceID()),
		Parent:   traceline.SegmentIDFromBytes(sc.SpanID()),
		Decision: traceline.NotSampled,
	}
	if sc.TraceFlags().IsSampled() {
		header.Decision = traceline.Sampled
	}

	carrier.Set(traceline.TraceHeaderName, header.String())
}

// Extract reads the trace header from the carrier into a remote span
// context. Forming a span context needs both a root and a parent; when
// either is missing or unusable, ctx is returned unchanged and the tracer
// falls back to its own ID generation.
func (Propagator) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	header := traceline.ParseTraceHeader(carrier.Get(traceline.TraceHeaderName))
	if !header.Root.IsValid() || !header.Parent.IsValid() {
		return ctx
	}

	var flags trace.TraceFlags
	if header.Decision == traceline.Sampled {
		flags = trace.FlagsSampled
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID(header.Root.Bytes()),
		SpanID:     trace.SpanID(header.Parent.Bytes()),
		TraceFlags: flags,
		Remote:     true,
	})
	if !sc.IsValid() {
		return ctx
	}

	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

// Fields returns the header keys this propagator reads and writes.
func (Propagator) Fields() []string {
	return []string{traceline.TraceHeaderName}
}
