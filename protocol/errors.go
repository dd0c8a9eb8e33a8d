package protocol

import "fmt"

// HandshakeError indicates the chip's echo of the LFSR stream diverged
// from the expected sequence.
type HandshakeError struct {
	// Index is the position of the first mismatched bit
	Index int

	// Got is the received bit value
	Got uint8

	// Expected is the bit the LFSR stream called for
	Expected uint8
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("handshake echo mismatch at bit %d: got %d, expected %d",
		e.Index, e.Got, e.Expected)
}

// IsHandshakeError returns true if the error is a HandshakeError.
func IsHandshakeError(err error) bool {
	_, ok := err.(*HandshakeError)
	return ok
}
