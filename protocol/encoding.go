package protocol

import (
	"encoding/binary"
	"fmt"
)

// EncodeLong encodes a 32-bit value for host-to-chip transmission: three
// bits per byte across ten bytes, then the final two bits in an eleventh.
// The fixed marker bits let the chip recover each data bit from serial
// edge timing regardless of value.
func EncodeLong(value uint32) []byte {
	encoded := make([]byte, 0, BytesPerLong)
	for i := 0; i < 10; i++ {
		encoded = append(encoded, byte(0x92|(value&1)|((value&2)<<2)|((value&4)<<4)))
		value >>= 3
	}
	encoded = append(encoded, byte(0xF2|(value&1)|((value&2)<<2)))
	return encoded
}

// EncodeImage encodes a complete image payload for transmission: the image
// length in longs followed by every image long, all transmit-encoded.
// Images whose length is not a multiple of four bytes are zero-padded to
// the next long boundary; zero padding cannot disturb the image checksum.
func EncodeImage(data []byte) ([]byte, error) {
	if rem := len(data) % 4; rem != 0 {
		padded := make([]byte, len(data)+4-rem)
		copy(padded, data)
		data = padded
	}

	longs := len(data) / 4
	if longs > MaxImageLongs {
		return nil, fmt.Errorf("image too large: %d longs, chip accepts at most %d", longs, MaxImageLongs)
	}

	encoded := make([]byte, 0, (longs+1)*BytesPerLong)
	encoded = append(encoded, EncodeLong(uint32(longs))...)
	for i := 0; i < longs; i++ {
		encoded = append(encoded, EncodeLong(binary.LittleEndian.Uint32(data[i*4:]))...)
	}
	return encoded, nil
}
