package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrIncompatibleModel  = errors.New("incompatible model type")
	ErrMissingArray       = errors.New("required array missing")
	ErrOffsetOverlap      = errors.New("array offsets overlap")
	ErrOutOfBounds        = errors.New("array extends beyond data section")
)

// LayoutError provides detailed information about array layout failures.
type LayoutError struct {
	Type    string // Type of error (e.g. "offset_overlap", "out_of_bounds")
	Array   string // Primary array name involved
	Array2  string // Secondary array name (for overlap errors)
	Details string // Additional details
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Type, e.Array, e.Array2, e.Details)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Type, e.Array, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
