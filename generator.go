package traceline

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"time"
)

// GeneratorConfig holds configuration for a Generator.
type GeneratorConfig struct {
	// Rand is the entropy source for identifier random fields. Defaults to
	// crypto/rand.Reader. A custom reader must be safe for concurrent use.
	Rand io.Reader

	// Now is the clock for trace ID timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Generator produces trace and segment identifiers from an injected clock
// and entropy source. It is safe for concurrent use as long as its Rand is.
type Generator struct {
	rand io.Reader
	now  func() time.Time
}

// NewGenerator creates a Generator, filling in defaults for any unset
// config field.
func NewGenerator(cfg GeneratorConfig) *Generator {
	g := &Generator{rand: cfg.Rand, now: cfg.Now}
	if g.rand == nil {
		g.rand = rand.Reader
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// TraceID generates a trace ID stamped with the generator's current clock
// second. It never fails.
func (g *Generator) TraceID() TraceID {
	var id TraceID
	id.epoch = uint32(g.now().Unix())
	g.fill(id.random[:])
	return id
}

// SegmentID generates a segment ID. It never fails.
func (g *Generator) SegmentID() SegmentID {
	var id SegmentID
	g.fill(id[:])
	return id
}

// fill loads buf with random bytes.
func (g *Generator) fill(buf []byte) {
	if _, err := io.ReadFull(g.rand, buf); err == nil {
		return
	}

	// Fallback to time-based bits if random fails
	for len(buf) > 0 {
		var clock [8]byte
		binary.BigEndian.PutUint64(clock[:], uint64(g.now().UnixNano()))
		buf = buf[copy(buf, clock[:]):]
	}
}

var (
	defaultGenerator = NewGenerator(GeneratorConfig{})
	defaultGenMu     sync.RWMutex
)

// DefaultGenerator returns the process-wide generator backing NewTraceID
// and NewSegmentID.
func DefaultGenerator() *Generator {
	defaultGenMu.RLock()
	defer defaultGenMu.RUnlock()
	return defaultGenerator
}

// SetDefaultGenerator replaces the process-wide generator. A nil generator
// is ignored. Intended for process startup and tests.
func SetDefaultGenerator(g *Generator) {
	if g == nil {
		return
	}
	defaultGenMu.Lock()
	defer defaultGenMu.Unlock()
	defaultGenerator = g
}
