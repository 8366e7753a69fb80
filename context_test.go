package traceline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	t.Run("stores and retrieves a trace ID", func(t *testing.T) {
		id := NewTraceID()
		ctx := WithTraceID(context.Background(), id)

		got, ok := TraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("reports absence", func(t *testing.T) {
		got, ok := TraceIDFromContext(context.Background())

		assert.False(t, ok)
		assert.False(t, got.IsValid())
	})
}

func TestTraceHeaderContext(t *testing.T) {
	t.Run("stores and retrieves a header", func(t *testing.T) {
		h := TraceHeader{
			Root:     NewTraceID(),
			Parent:   NewSegmentID(),
			Decision: Sampled,
		}
		ctx := WithTraceHeader(context.Background(), h)

		got, ok := TraceHeaderFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, h, got)
	})

	t.Run("reports absence", func(t *testing.T) {
		_, ok := TraceHeaderFromContext(context.Background())

		assert.False(t, ok)
	})

	t.Run("does not collide with the trace ID key", func(t *testing.T) {
		id := NewTraceID()
		ctx := WithTraceID(context.Background(), id)

		_, ok := TraceHeaderFromContext(ctx)
		assert.False(t, ok)

		got, ok := TraceIDFromContext(WithTraceHeader(ctx, TraceHeader{Root: id}))
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})
}
