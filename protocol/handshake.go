package protocol

import "fmt"

// LFSR is the 8-bit linear feedback shift register used by the Propeller
// boot ROM to generate the handshake bit stream. Taps at bits 7, 5, 4,
// and 1; the output is the low bit of the current state.
type LFSR struct {
	state uint8
}

// NewLFSR returns an LFSR in the boot ROM's initial state.
func NewLFSR() *LFSR {
	return &LFSR{state: LFSRSeed}
}

// Next returns the next bit (0 or 1) of the sequence and advances the
// register.
func (l *LFSR) Next() uint8 {
	bit := l.state & 1
	l.state = ((l.state << 1) & 0xFE) |
		(((l.state >> 7) ^ (l.state >> 5) ^ (l.state >> 4) ^ (l.state >> 1)) & 1)
	return bit
}

// HandshakeSequence returns the HandshakeBits transmit bytes of the host
// handshake. Each bit travels as one byte, 0xFE for a zero bit and 0xFF
// for a one bit, so the chip can recover it from the low-pulse width.
func HandshakeSequence() []byte {
	lfsr := NewLFSR()
	seq := make([]byte, HandshakeBits)
	for i := range seq {
		seq[i] = lfsr.Next() | 0xFE
	}
	return seq
}

// EchoSequence returns the HandshakeBits bits (one per byte, 0 or 1) the
// chip is expected to echo: the continuation of the LFSR stream after the
// host's portion.
func EchoSequence() []byte {
	lfsr := NewLFSR()
	for i := 0; i < HandshakeBits; i++ {
		lfsr.Next()
	}
	seq := make([]byte, HandshakeBits)
	for i := range seq {
		seq[i] = lfsr.Next()
	}
	return seq
}

// ValidateEcho checks the chip's echo of the LFSR stream. Only the low bit
// of each received byte is significant. A mismatch usually means no
// Propeller is attached or the reset timing was off.
func ValidateEcho(received []byte) error {
	if len(received) != HandshakeBits {
		return fmt.Errorf("echo length: got %d bits, expected %d", len(received), HandshakeBits)
	}
	expected := EchoSequence()
	for i, b := range received {
		if b&1 != expected[i] {
			return &HandshakeError{Index: i, Got: b & 1, Expected: expected[i]}
		}
	}
	return nil
}

// DecodeVersion decodes the chip version from the VersionBits response
// bits, least significant bit first. Only the low bit of each received
// byte is significant.
func DecodeVersion(received []byte) (uint8, error) {
	if len(received) != VersionBits {
		return 0, fmt.Errorf("version length: got %d bits, expected %d", len(received), VersionBits)
	}
	var version uint8
	for i, b := range received {
		version |= (b & 1) << i
	}
	return version, nil
}
