package traceline

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TraceIDLength is the length of a canonical trace ID string (35 ASCII characters)
const TraceIDLength = 35

const (
	traceIDVersion = '1'
	traceIDDelim   = '-'
)

// TraceID identifies a single trace across service boundaries.
//
// The zero value is the invalid trace ID. TraceID is comparable: two IDs
// are equal exactly when their timestamp and random fields are equal, so
// values work directly as map keys.
type TraceID struct {
	epoch  uint32
	random [12]byte
}

// NewTraceID generates a new trace ID from the current time and the
// default generator's entropy source. It never fails.
func NewTraceID() TraceID {
	return DefaultGenerator().TraceID()
}

// ParseTraceID decodes the canonical string form of a trace ID.
//
// It is a total function: if text is not a well-formed trace ID, the result
// is a freshly generated one rather than an error, so callers always hold a
// usable identifier. Surrounding whitespace is ignored and hex digits may be
// upper or lower case. Use ValidateTraceID first when malformed input must
// be reported instead of replaced.
func ParseTraceID(text string) TraceID {
	if id, ok := parseTraceID(text); ok {
		return id
	}
	return NewTraceID()
}

// parseTraceID is the strict decoder shared by ParseTraceID,
// ValidateTraceID, and the trace header codec.
func parseTraceID(text string) (TraceID, bool) {
	s := strings.TrimSpace(text)

	// 1-XXXXXXXX-YYYYYYYYYYYYYYYYYYYYYYYY
	if len(s) != TraceIDLength {
		return TraceID{}, false
	}
	if s[0] != traceIDVersion || s[1] != traceIDDelim || s[10] != traceIDDelim {
		return TraceID{}, false
	}

	epoch, err := strconv.ParseUint(s[2:10], 16, 32)
	if err != nil {
		return TraceID{}, false
	}

	var id TraceID
	id.epoch = uint32(epoch)
	if _, err := hex.Decode(id.random[:], []byte(s[11:])); err != nil {
		return TraceID{}, false
	}
	return id, true
}

// InvalidTraceID returns the distinguished invalid trace ID, all of whose
// fields are zero. It marks the absence of a real identifier.
func InvalidTraceID() TraceID {
	return TraceID{}
}

// TraceIDFromBytes builds a TraceID from its 16-byte binary form: the
// big-endian timestamp followed by the 12-byte random value. This is the
// layout OpenTelemetry uses for 128-bit trace IDs.
func TraceIDFromBytes(b [16]byte) TraceID {
	var id TraceID
	id.epoch = binary.BigEndian.Uint32(b[:4])
	copy(id.random[:], b[4:])
	return id
}

// String returns the canonical 35-character form: the version, the
// timestamp as 8 lowercase hex digits, and the random value as 24 lowercase
// hex digits, separated by dashes. It is the exact inverse of a successful
// parse.
func (t TraceID) String() string {
	return fmt.Sprintf("1-%08x-%s", t.epoch, hex.EncodeToString(t.random[:]))
}

// IsValid reports whether t is a usable identifier, i.e. not the invalid
// trace ID.
func (t TraceID) IsValid() bool {
	return t != TraceID{}
}

// Epoch returns the timestamp field as seconds since the Unix epoch.
func (t TraceID) Epoch() int64 {
	return int64(t.epoch)
}

// Time returns the timestamp field as a time.Time.
func (t TraceID) Time() time.Time {
	return time.Unix(int64(t.epoch), 0)
}

// Random returns the 96-bit random field.
func (t TraceID) Random() [12]byte {
	return t.random
}

// Bytes returns the 16-byte binary form: the big-endian timestamp followed
// by the 12-byte random value.
func (t TraceID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[:4], t.epoch)
	copy(b[4:], t.random[:])
	return b
}

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (t TraceID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same total
// contract as ParseTraceID: malformed text yields a freshly generated
// identifier and a nil error, never a decode failure.
func (t *TraceID) UnmarshalText(text []byte) error {
	*t = ParseTraceID(string(text))
	return nil
}

// ValidateTraceID reports whether text is a well-formed trace ID string.
func ValidateTraceID(text string) bool {
	_, ok := parseTraceID(text)
	return ok
}
