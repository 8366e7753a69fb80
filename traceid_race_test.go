package traceline

import (
	"sync"
	"testing"
)

// TestNewTraceID_Concurrent tests for race conditions in concurrent generation
func TestNewTraceID_Concurrent(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := make(map[TraceID]struct{})

	var wg sync.WaitGroup
	numGoroutines := 50
	idsPerGoroutine := 200

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]TraceID, 0, idsPerGoroutine)
			for j := 0; j < idsPerGoroutine; j++ {
				id := NewTraceID()
				if !id.IsValid() {
					t.Errorf("generated invalid trace ID %s", id)
					return
				}
				local = append(local, id)
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	expected := numGoroutines * idsPerGoroutine
	if len(seen) != expected {
		t.Errorf("expected %d distinct trace IDs, got %d", expected, len(seen))
	}
}

// TestParseTraceID_Concurrent tests for race conditions in concurrent parsing
func TestParseTraceID_Concurrent(t *testing.T) {
	t.Parallel()

	const canonical = "1-5759e988-bd862e3fe1be46a994272793"
	want := ParseTraceID(canonical)

	var wg sync.WaitGroup
	numGoroutines := 50
	parsesPerGoroutine := 200

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < parsesPerGoroutine; j++ {
				if got := ParseTraceID(canonical); got != want {
					t.Errorf("expected %s, got %s", want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestParseTraceID_ConcurrentFallback tests concurrent fallback generation
func TestParseTraceID_ConcurrentFallback(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	numGoroutines := 50
	parsesPerGoroutine := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < parsesPerGoroutine; j++ {
				if id := ParseTraceID("not-a-trace-id"); !id.IsValid() {
					t.Errorf("fallback produced invalid trace ID %s", id)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestSetDefaultGenerator_Concurrent tests for race conditions when the
// default generator is swapped while identifiers are being generated
func TestSetDefaultGenerator_Concurrent(t *testing.T) {
	t.Parallel()

	a := NewGenerator(GeneratorConfig{})
	b := NewGenerator(GeneratorConfig{})

	var wg sync.WaitGroup
	numWriters := 4
	numReaders := 16
	iterations := 100

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if (n+j)%2 == 0 {
					SetDefaultGenerator(a)
				} else {
					SetDefaultGenerator(b)
				}
			}
		}(i)
	}

	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if id := NewTraceID(); !id.IsValid() {
					t.Errorf("generated invalid trace ID %s", id)
					return
				}
				if id := NewSegmentID(); !id.IsValid() {
					t.Errorf("generated invalid segment ID %s", id)
					return
				}
			}
		}()
	}
	wg.Wait()

	SetDefaultGenerator(NewGenerator(GeneratorConfig{}))
}
