package traceline

import (
	"sort"
	"strings"
)

// TraceHeaderName is the canonical propagation header name.
const TraceHeaderName = "X-Amzn-Trace-Id"

// SampleDecision is the sampling decision byte carried by the propagation
// header. This library transports the decision unchanged; it never makes
// one.
type SampleDecision string

// Sampling decisions understood by the trace header codec.
const (
	// Sampled means the upstream service decided to record the trace.
	Sampled SampleDecision = "1"
	// NotSampled means the upstream service decided not to record the trace.
	NotSampled SampleDecision = "0"
	// SampleRequested means the upstream service defers the decision
	// downstream.
	SampleRequested SampleDecision = "?"
	// SampleUnknown means the header carried no recognizable decision.
	SampleUnknown SampleDecision = ""
)

// TraceHeader is the decoded form of an X-Amzn-Trace-Id header value, e.g.
//
//	Root=1-5759e988-bd862e3fe1be46a994272793;Parent=53995c3f42cd8ad8;Sampled=1
//
// Root is the trace ID, Parent the segment ID of the immediate upstream
// caller, and Decision the propagated sampling decision. Entries other than
// Root, Parent, and Sampled travel untouched in Extra; the Self entry that
// AWS load balancers insert lands there.
type TraceHeader struct {
	Root     TraceID
	Parent   SegmentID
	Decision SampleDecision
	Extra    map[string]string
}

// ParseTraceHeader decodes a propagation header value. It is lenient and
// total: entries it cannot decode are dropped, a malformed Root or Parent
// is left zero, and an unrecognized Sampled value maps to SampleUnknown.
// Callers that need a usable trace ID check Root.IsValid and mint their
// own; the middleware package does exactly that.
func ParseTraceHeader(value string) TraceHeader {
	var h TraceHeader
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, val, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch strings.ToLower(key) {
		case "root":
			if id, ok := parseTraceID(val); ok {
				h.Root = id
			}
		case "parent":
			if id, err := ParseSegmentID(val); err == nil {
				h.Parent = id
			}
		case "sampled":
			switch SampleDecision(val) {
			case Sampled, NotSampled, SampleRequested:
				h.Decision = SampleDecision(val)
			default:
				h.Decision = SampleUnknown
			}
		default:
			if key == "" {
				continue
			}
			if h.Extra == nil {
				h.Extra = make(map[string]string)
			}
			h.Extra[key] = val
		}
	}
	return h
}

// String renders the canonical header value: Root, Parent, and Sampled in
// that order when set, then Extra entries sorted by key. A header with no
// set fields renders as the empty string.
func (h TraceHeader) String() string {
	parts := make([]string, 0, 3+len(h.Extra))
	if h.Root.IsValid() {
		parts = append(parts, "Root="+h.Root.String())
	}
	if h.Parent.IsValid() {
		parts = append(parts, "Parent="+h.Parent.String())
	}
	if h.Decision != SampleUnknown {
		parts = append(parts, "Sampled="+string(h.Decision))
	}

	if len(h.Extra) > 0 {
		keys := make([]string, 0, len(h.Extra))
		for k := range h.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+"="+h.Extra[k])
		}
	}

	return strings.Join(parts, ";")
}
