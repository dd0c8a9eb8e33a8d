package protocol

import (
	"errors"
	"testing"
)

func TestLFSRSequence(t *testing.T) {
	// First bits of the boot ROM stream for seed 'P'.
	expected := []uint8{0, 1, 0, 1}

	lfsr := NewLFSR()
	for i, want := range expected {
		if got := lfsr.Next(); got != want {
			t.Errorf("bit %d = %d, want %d", i, got, want)
		}
	}
}

func TestHandshakeSequence(t *testing.T) {
	seq := HandshakeSequence()

	if len(seq) != HandshakeBits {
		t.Fatalf("len = %d, want %d", len(seq), HandshakeBits)
	}
	for i, b := range seq {
		if b != 0xFE && b != 0xFF {
			t.Fatalf("byte %d = 0x%02X, want 0xFE or 0xFF", i, b)
		}
	}

	// Same leading bits as the raw LFSR stream.
	if seq[0] != 0xFE || seq[1] != 0xFF || seq[2] != 0xFE || seq[3] != 0xFF {
		t.Errorf("leading bytes = % X, want FE FF FE FF", seq[:4])
	}
}

func TestEchoSequenceContinuesStream(t *testing.T) {
	lfsr := NewLFSR()
	for i := 0; i < HandshakeBits; i++ {
		lfsr.Next()
	}

	echo := EchoSequence()
	if len(echo) != HandshakeBits {
		t.Fatalf("len = %d, want %d", len(echo), HandshakeBits)
	}
	for i, b := range echo {
		if want := lfsr.Next(); b != want {
			t.Fatalf("echo bit %d = %d, want %d", i, b, want)
		}
	}
}

func TestValidateEcho(t *testing.T) {
	t.Run("exact echo", func(t *testing.T) {
		if err := ValidateEcho(EchoSequence()); err != nil {
			t.Errorf("ValidateEcho() error = %v", err)
		}
	})

	t.Run("marker bits are ignored", func(t *testing.T) {
		echo := EchoSequence()
		for i := range echo {
			echo[i] |= 0xFE
		}
		if err := ValidateEcho(echo); err != nil {
			t.Errorf("ValidateEcho() error = %v", err)
		}
	})

	t.Run("flipped bit", func(t *testing.T) {
		echo := EchoSequence()
		echo[17] ^= 1

		err := ValidateEcho(echo)
		var hkErr *HandshakeError
		if !errors.As(err, &hkErr) {
			t.Fatalf("ValidateEcho() error = %v, want HandshakeError", err)
		}
		if hkErr.Index != 17 {
			t.Errorf("Index = %d, want 17", hkErr.Index)
		}
		if !IsHandshakeError(err) {
			t.Error("IsHandshakeError() = false")
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		if err := ValidateEcho(make([]byte, 10)); err == nil {
			t.Error("ValidateEcho() error = nil for short echo")
		}
	})
}

func TestDecodeVersion(t *testing.T) {
	tests := []struct {
		name     string
		bits     []byte
		expected uint8
	}{
		{
			name:     "propeller 1",
			bits:     []byte{1, 0, 0, 0, 0, 0, 0, 0},
			expected: 1,
		},
		{
			name:     "all zeros",
			bits:     []byte{0, 0, 0, 0, 0, 0, 0, 0},
			expected: 0,
		},
		{
			name:     "lsb first ordering",
			bits:     []byte{0, 1, 0, 0, 0, 0, 0, 1},
			expected: 0x82,
		},
		{
			name:     "marker bits ignored",
			bits:     []byte{0xFF, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, err := DecodeVersion(tt.bits)
			if err != nil {
				t.Fatalf("DecodeVersion() error = %v", err)
			}
			if version != tt.expected {
				t.Errorf("DecodeVersion() = %d, want %d", version, tt.expected)
			}
		})
	}

	if _, err := DecodeVersion([]byte{1, 0}); err == nil {
		t.Error("DecodeVersion() error = nil for short input")
	}
}

func BenchmarkHandshakeSequence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HandshakeSequence()
	}
}
