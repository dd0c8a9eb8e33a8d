package image

import (
	"errors"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	img := New(make([]byte, 64), "")

	tests := []struct {
		name  string
		write func(pos int) error
		read  func(pos int) (uint32, error)
		pos   int
		value uint32
	}{
		{
			name:  "byte",
			write: func(pos int) error { return img.WriteByte(pos, 0xA5) },
			read: func(pos int) (uint32, error) {
				v, err := img.ReadByte(pos)
				return uint32(v), err
			},
			pos:   0,
			value: 0xA5,
		},
		{
			name:  "byte at last position",
			write: func(pos int) error { return img.WriteByte(pos, 0x7E) },
			read: func(pos int) (uint32, error) {
				v, err := img.ReadByte(pos)
				return uint32(v), err
			},
			pos:   63,
			value: 0x7E,
		},
		{
			name:  "word",
			write: func(pos int) error { return img.WriteWord(pos, 0xBEEF) },
			read: func(pos int) (uint32, error) {
				v, err := img.ReadWord(pos)
				return uint32(v), err
			},
			pos:   10,
			value: 0xBEEF,
		},
		{
			name:  "long",
			write: func(pos int) error { return img.WriteLong(pos, 0xDEADBEEF) },
			read: func(pos int) (uint32, error) {
				v, err := img.ReadLong(pos)
				return uint32(v), err
			},
			pos:   20,
			value: 0xDEADBEEF,
		},
		{
			name:  "long at odd position",
			write: func(pos int) error { return img.WriteLong(pos, 0x01020304) },
			read: func(pos int) (uint32, error) {
				v, err := img.ReadLong(pos)
				return uint32(v), err
			},
			pos:   33,
			value: 0x01020304,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.write(tt.pos); err != nil {
				t.Fatalf("write error = %v", err)
			}
			got, err := tt.read(tt.pos)
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if got != tt.value {
				t.Errorf("read back 0x%X, want 0x%X", got, tt.value)
			}
		})
	}
}

func TestLittleEndianLayout(t *testing.T) {
	img := New(make([]byte, 8), "")

	if err := img.WriteLong(0, 0x04030201); err != nil {
		t.Fatalf("WriteLong() error = %v", err)
	}
	for pos, want := range []uint8{0x01, 0x02, 0x03, 0x04} {
		got, err := img.ReadByte(pos)
		if err != nil {
			t.Fatalf("ReadByte(%d) error = %v", pos, err)
		}
		if got != want {
			t.Errorf("byte at %d = 0x%02X, want 0x%02X", pos, got, want)
		}
	}

	word, err := img.ReadWord(1)
	if err != nil {
		t.Fatalf("ReadWord() error = %v", err)
	}
	if word != 0x0302 {
		t.Errorf("ReadWord(1) = 0x%04X, want 0x0302", word)
	}
}

func TestReadOutOfRange(t *testing.T) {
	img := New(make([]byte, 8), "")

	tests := []struct {
		name string
		read func() error
	}{
		{"byte past end", func() error { _, err := img.ReadByte(8); return err }},
		{"byte at negative position", func() error { _, err := img.ReadByte(-1); return err }},
		{"word straddling end", func() error { _, err := img.ReadWord(7); return err }},
		{"long straddling end", func() error { _, err := img.ReadLong(5); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.read(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

// Writes past the current buffer length are rejected rather than growing
// the buffer: the format assumes fixed pre-sized buffers.
func TestWriteNeverGrows(t *testing.T) {
	img := New(make([]byte, 8), "")

	tests := []struct {
		name  string
		write func() error
	}{
		{"byte past end", func() error { return img.WriteByte(8, 0xFF) }},
		{"word straddling end", func() error { return img.WriteWord(7, 0xFFFF) }},
		{"long straddling end", func() error { return img.WriteLong(6, 0xFFFFFFFF) }},
		{"long far past end", func() error { return img.WriteLong(100, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.write(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
			if got := img.ImageSize(); got != 8 {
				t.Errorf("ImageSize() = %d after rejected write, want 8", got)
			}
		})
	}

	// A partially out-of-range write must not touch the in-range bytes.
	for pos := 0; pos < 8; pos++ {
		b, err := img.ReadByte(pos)
		if err != nil {
			t.Fatalf("ReadByte(%d) error = %v", pos, err)
		}
		if b != 0 {
			t.Errorf("byte at %d = 0x%02X after rejected writes, want 0x00", pos, b)
		}
	}
}
