// Package middleware provides HTTP, Fiber, and gRPC middleware that
// propagate trace identifiers across service boundaries.
package middleware

import (
	"net/http"

	"go.uber.org/zap"

	traceline "github.com/traceline/traceline-go"
)

// HTTPConfig holds configuration for the HTTP middleware.
type HTTPConfig struct {
	// HeaderName is the propagation header to read and write. Defaults to
	// traceline.TraceHeaderName.
	HeaderName string

	// EchoHeader writes the canonical header value to the response so
	// callers can read back the trace ID that was assigned.
	EchoHeader bool

	// SkipPaths is a list of paths to leave untouched.
	SkipPaths []string

	// Logger receives a debug line when an inbound header is replaced.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// HTTP returns middleware that guarantees every request context carries a
// trace ID. A valid inbound header root is continued; a missing or
// unusable one is replaced by a fresh identifier. The decoded header is
// stored alongside the ID so handlers can forward Parent, Sampled, and
// Extra downstream.
func HTTP(config *HTTPConfig) func(http.Handler) http.Handler {
	if config == nil {
		config = &HTTPConfig{}
	}
	if config.HeaderName == "" {
		config.HeaderName = traceline.TraceHeaderName
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	skipPaths := make(map[string]struct{})
	for _, path := range config.SkipPaths {
		skipPaths[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check if path should be skipped
			if _, skip := skipPaths[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			value := r.Header.Get(config.HeaderName)
			header, outcome := extractHeader(value)
			RecordPropagation("http", outcome)

			if outcome == OutcomeMalformed {
				config.Logger.Debug("replaced unusable trace header",
					zap.String("header", value),
					zap.String("trace_id", header.Root.String()),
				)
			}

			ctx := traceline.WithTraceID(r.Context(), header.Root)
			ctx = traceline.WithTraceHeader(ctx, header)

			if config.EchoHeader {
				w.Header().Set(config.HeaderName, header.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
