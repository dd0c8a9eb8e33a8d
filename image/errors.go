package image

import "errors"

// Sentinel errors returned by image accessors. All are wrapped with
// positional context; test with errors.Is.
var (
	// ErrOutOfRange indicates a read or write past the end of the buffer.
	ErrOutOfRange = errors.New("position out of range")

	// ErrTooShort indicates the buffer is too small to hold the header
	// field being accessed.
	ErrTooShort = errors.New("image too short")

	// ErrInvalidClockMode indicates an unrecognized clock mode value.
	ErrInvalidClockMode = errors.New("invalid clock mode")

	// ErrInvalidImage indicates an operation that requires a structurally
	// valid image was attempted on an invalid one.
	ErrInvalidImage = errors.New("invalid image")
)
