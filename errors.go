package signpad

import (
	"errors"
	"fmt"
)

// Errors returned by Pad operations.
var (
	// ErrNoSavedSignature is returned by Recover when the persistence slot is empty.
	ErrNoSavedSignature = errors.New("signpad: no saved signature")

	// ErrClosed is returned when an action is submitted to a closed Pad.
	ErrClosed = errors.New("signpad: pad is closed")

	// ErrInvalidSize is returned when a Pad is created with a non-positive dimension.
	ErrInvalidSize = errors.New("signpad: invalid surface size")

	// ErrInvalidColor is returned by ParseHex for malformed input.
	ErrInvalidColor = errors.New("signpad: invalid color")
)

// DecodeError reports a snapshot or stored image that could not be decoded
// into raster pixels. The surface is left in its pre-operation state.
type DecodeError struct {
	// Source names what was being decoded: "undo", "redo" or "storage".
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("signpad: decode %s snapshot: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StorageError reports a failed read or write of the persistence backend.
// A StorageError from Save never prevents the download from happening.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("signpad: storage %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
