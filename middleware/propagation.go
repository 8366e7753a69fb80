package middleware

import (
	"strings"

	traceline "github.com/traceline/traceline-go"
)

// Extraction outcomes, used as the outcome label on propagation metrics.
const (
	// OutcomeContinued means the inbound header carried a usable root.
	OutcomeContinued = "continued"
	// OutcomeStarted means no header was present and a trace was started.
	OutcomeStarted = "started"
	// OutcomeMalformed means a header was present but its root was
	// unusable, so a trace was started in its place.
	OutcomeMalformed = "malformed"
)

// extractHeader decodes an inbound header value and guarantees a usable
// root. When the root is unusable the partially decoded fields are dropped
// with it: a parent segment must not reattach to a trace it never belonged
// to.
func extractHeader(value string) (traceline.TraceHeader, string) {
	header := traceline.ParseTraceHeader(value)
	if header.Root.IsValid() {
		return header, OutcomeContinued
	}

	outcome := OutcomeStarted
	if strings.TrimSpace(value) != "" {
		outcome = OutcomeMalformed
		header = traceline.TraceHeader{}
	}

	header.Root = traceline.NewTraceID()
	return header, outcome
}
