package crcrev

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrWidth    = errors.New("crcrev: unsupported width; expected 16 or 32")              // definition width is neither 16 nor 32
	ErrStyle    = errors.New("crcrev: unknown table style")                               // definition style is outside the enumeration
	ErrPosition = errors.New("crcrev: patch position is located outside available input") // patch does not fit the buffer
	ErrUnwrite  = errors.New("crcrev: cannot unwrite more bytes than were written")       // Digest.Unwrite past the start of the stream
)

// InverseError reports that a freshly derived inverse table does not undo the
// forward update of one of its validation states. The table is discarded.
type InverseError struct {
	Variant   string
	Reference uint32
	Byte      byte
	Got       uint32
}

func (e *InverseError) Error() string {
	return fmt.Sprintf("crcrev: %s inverse table validation failed; retreat(advance(0x%X, 0x%02X)) = 0x%X", e.Variant, e.Reference, e.Byte, e.Got)
}

// VerifyError reports the first (state, byte) pair for which
// Retreat(Advance(State, Byte), Byte) != State.
type VerifyError struct {
	Variant string
	State   uint32
	Byte    byte
	Got     uint32
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("crcrev: %s self-check failed for state 0x%X, byte 0x%02X; retreat(advance) = 0x%X", e.Variant, e.State, e.Byte, e.Got)
}

// CheckError reports a checksum that disagrees with its reference,
// either a published check value or the bit-serial computation.
type CheckError struct {
	Variant  string
	Input    []byte
	Expected uint32
	Got      uint32
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("crcrev: %s checksum of %q mismatch; expected 0x%X, got 0x%X", e.Variant, e.Input, e.Expected, e.Got)
}
