package levelset

import (
	"errors"
	"fmt"
)

var (
	// ErrCutDataStride is returned when flat cut data does not consist of
	// whole segment records.
	ErrCutDataStride = errors.New("levelset: cut data length is not a multiple of the segment stride")
	// ErrDegenerateSegment is returned for a segment whose endpoints coincide.
	ErrDegenerateSegment = errors.New("levelset: zero-length segment")
	// ErrNonFinite is returned for a segment with a NaN or infinite coordinate
	// or payload.
	ErrNonFinite = errors.New("levelset: non-finite segment coordinate or payload")
	// ErrGeometry is returned when decoded geometry cannot form a cut set.
	ErrGeometry = errors.New("levelset: unsupported geometry")
	// ErrUnknownProperty is returned when a property store lacks a value.
	ErrUnknownProperty = errors.New("levelset: unknown property")
	// ErrNoValueJump is returned for an interface sample whose two sides carry
	// the same value but different fluxes.
	ErrNoValueJump = errors.New("levelset: no value jump across interface")
)

// SegmentError records which segment of a cut set failed validation.
type SegmentError struct {
	Index int
	Err   error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d: %s", e.Index, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
