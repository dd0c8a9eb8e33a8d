package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint8
	}{
		{
			name:     "all zeros",
			data:     make([]byte, 16),
			expected: 0x00,
		},
		{
			name:     "single data byte",
			data:     []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
			expected: 0xFF, // complement of 0x01
		},
		{
			name:     "stored checksum is excluded from the sum",
			data:     []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x55},
			expected: 0xFF, // same as above regardless of byte 5
		},
		{
			name:     "overflowing sum",
			data:     []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00},
			expected: 0x05, // complement of 0xFB (0x4FB mod 256)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.data, "")
			checksum, err := img.Checksum()
			if err != nil {
				t.Fatalf("Checksum() error = %v", err)
			}
			if checksum != tt.expected {
				t.Errorf("Checksum() = 0x%02X, want 0x%02X", checksum, tt.expected)
			}
		})
	}
}

func TestChecksumTooShort(t *testing.T) {
	img := New([]byte{0x01, 0x02, 0x03}, "")

	if _, err := img.Checksum(); !errors.Is(err, ErrTooShort) {
		t.Errorf("Checksum() error = %v, want ErrTooShort", err)
	}
	if err := img.RecalculateChecksum(); !errors.Is(err, ErrTooShort) {
		t.Errorf("RecalculateChecksum() error = %v, want ErrTooShort", err)
	}
}

func TestRecalculateChecksum(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 7)
	}
	img := New(data, "")

	if err := img.RecalculateChecksum(); err != nil {
		t.Fatalf("RecalculateChecksum() error = %v", err)
	}
	if !img.ChecksumIsValid() {
		t.Error("ChecksumIsValid() = false after RecalculateChecksum()")
	}

	// Writing the checksum must make the total sum zero mod 256.
	var sum uint8
	for _, b := range img.Data() {
		sum += b
	}
	if sum != 0 {
		t.Errorf("image byte sum = 0x%02X, want 0x00", sum)
	}
}

func TestRecalculateChecksumIdempotent(t *testing.T) {
	data := make([]byte, 128)
	for i := range data {
		data[i] = byte(i ^ 0xA5)
	}
	img := New(data, "")

	if err := img.RecalculateChecksum(); err != nil {
		t.Fatalf("first RecalculateChecksum() error = %v", err)
	}
	first := append([]byte(nil), img.Data()...)

	if err := img.RecalculateChecksum(); err != nil {
		t.Fatalf("second RecalculateChecksum() error = %v", err)
	}
	if !bytes.Equal(first, img.Data()) {
		t.Error("second RecalculateChecksum() changed the buffer")
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		image func() *Image
		valid bool
	}{
		{
			name: "valid binary",
			image: func() *Image {
				return testImage(t, 512)
			},
			valid: true,
		},
		{
			name: "valid eeprom",
			image: func() *Image {
				return testImage(t, EEPROMSize)
			},
			valid: true,
		},
		{
			name: "wrong start of code",
			image: func() *Image {
				img := testImage(t, 512)
				mustWriteWord(t, img, OffsetStartOfCode, 0x0020)
				mustRecalculate(t, img)
				return img
			},
			valid: false,
		},
		{
			name: "corrupted checksum",
			image: func() *Image {
				img := testImage(t, 512)
				stored, err := img.ReadByte(OffsetChecksum)
				if err != nil {
					t.Fatalf("ReadByte() error = %v", err)
				}
				mustWriteByte(t, img, OffsetChecksum, stored+1)
				return img
			},
			valid: false,
		},
		{
			name: "too short",
			image: func() *Image {
				return New(make([]byte, 10), "")
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.image().IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	img := New(make([]byte, EEPROMSize), "")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = img.Checksum()
	}
}
