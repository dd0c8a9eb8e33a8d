package loader

import (
	"fmt"
	"time"
)

// ImageError indicates the image failed validation before download.
type ImageError struct {
	FileName string
	Reason   string
}

func (e *ImageError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("image not loadable: %s", e.Reason)
	}
	return fmt.Sprintf("image %q not loadable: %s", e.FileName, e.Reason)
}

// VersionError indicates the attached chip reported an unsupported version.
type VersionError struct {
	Version uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported chip version %d: only the Propeller 1 is supported", e.Version)
}

// NakError indicates the chip answered a checksum, program, or verify step
// with a NAK bit.
type NakError struct {
	// Operation is the step the chip rejected
	Operation string
}

func (e *NakError) Error() string {
	return fmt.Sprintf("%s rejected by chip", e.Operation)
}

// TimeoutError indicates the chip did not acknowledge within the
// configured window.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout waiting for %s after %s", e.Operation, e.Timeout)
}
