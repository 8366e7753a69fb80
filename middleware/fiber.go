package middleware

import (
	"github.com/gofiber/fiber/v2"

	traceline "github.com/traceline/traceline-go"
)

// FiberConfig configures the Fiber middleware.
type FiberConfig struct {
	// HeaderName is the propagation header to read and write. Defaults to
	// traceline.TraceHeaderName.
	HeaderName string
	// EchoHeader writes the canonical header value to the response.
	EchoHeader bool
}

// DefaultFiberConfig returns the default Fiber middleware config.
func DefaultFiberConfig() FiberConfig {
	return FiberConfig{
		HeaderName: traceline.TraceHeaderName,
		EchoHeader: true,
	}
}

// Fiber creates a trace propagation middleware for Fiber apps. The trace ID
// and decoded header are stored both in locals ("traceID", "traceHeader")
// and in the request's user context.
func Fiber(config ...FiberConfig) fiber.Handler {
	cfg := DefaultFiberConfig()
	if len(config) > 0 {
		cfg = config[0]
		if cfg.HeaderName == "" {
			cfg.HeaderName = traceline.TraceHeaderName
		}
	}

	return func(c *fiber.Ctx) error {
		header, outcome := extractHeader(c.Get(cfg.HeaderName))
		RecordPropagation("fiber", outcome)

		// Store in locals for use in handlers
		c.Locals("traceID", header.Root)
		c.Locals("traceHeader", header)

		ctx := traceline.WithTraceID(c.UserContext(), header.Root)
		ctx = traceline.WithTraceHeader(ctx, header)
		c.SetUserContext(ctx)

		if cfg.EchoHeader {
			c.Set(cfg.HeaderName, header.String())
		}

		return c.Next()
	}
}
