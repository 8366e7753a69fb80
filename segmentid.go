package traceline

import (
	"encoding/hex"
	"errors"
	"strings"
)

// SegmentIDLength is the length of a canonical segment ID string (16 hex characters)
const SegmentIDLength = 16

// ErrMalformedSegmentID is returned when parsing text that is not exactly
// 16 hex digits.
var ErrMalformedSegmentID = errors.New("traceline: malformed segment ID")

// SegmentID identifies one unit of work within a trace. The propagation
// header's Parent field carries the segment ID of the immediate upstream
// caller.
//
// The zero value is the invalid segment ID.
type SegmentID [8]byte

// NewSegmentID generates a new segment ID from the default generator's
// entropy source. It never fails.
func NewSegmentID() SegmentID {
	return DefaultGenerator().SegmentID()
}

// ParseSegmentID decodes the canonical string form of a segment ID.
// Surrounding whitespace is ignored and hex digits may be upper or lower
// case. Unlike trace IDs there is no generated fallback: inventing a parent
// would attach work to a segment that never existed.
func ParseSegmentID(text string) (SegmentID, error) {
	s := strings.TrimSpace(text)
	if len(s) != SegmentIDLength {
		return SegmentID{}, ErrMalformedSegmentID
	}
	var id SegmentID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return SegmentID{}, ErrMalformedSegmentID
	}
	return id, nil
}

// SegmentIDFromBytes builds a SegmentID from its 8 raw bytes.
func SegmentIDFromBytes(b [8]byte) SegmentID {
	return SegmentID(b)
}

// String returns the canonical form: 16 lowercase hex digits.
func (s SegmentID) String() string {
	return hex.EncodeToString(s[:])
}

// IsValid reports whether s is a usable identifier, i.e. not the invalid
// segment ID.
func (s SegmentID) IsValid() bool {
	return s != SegmentID{}
}

// Bytes returns the segment ID's 8 raw bytes.
func (s SegmentID) Bytes() [8]byte {
	return [8]byte(s)
}

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (s SegmentID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SegmentID) UnmarshalText(text []byte) error {
	id, err := ParseSegmentID(string(text))
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// ValidateSegmentID reports whether text is a well-formed segment ID string.
func ValidateSegmentID(text string) bool {
	_, err := ParseSegmentID(text)
	return err == nil
}
