package image

import (
	"encoding/binary"
	"fmt"
)

// checkRange validates that width bytes at pos fall inside the buffer.
func (i *Image) checkRange(pos, width int) error {
	if pos < 0 || pos+width > len(i.data) {
		return fmt.Errorf("%w: %d bytes at position %d, image size is %d",
			ErrOutOfRange, width, pos, len(i.data))
	}
	return nil
}

// ReadByte reads the byte at pos.
func (i *Image) ReadByte(pos int) (uint8, error) {
	if err := i.checkRange(pos, 1); err != nil {
		return 0, err
	}
	return i.data[pos], nil
}

// ReadWord reads a little-endian 16-bit value at pos.
func (i *Image) ReadWord(pos int) (uint16, error) {
	if err := i.checkRange(pos, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(i.data[pos:]), nil
}

// ReadLong reads a little-endian 32-bit value at pos.
func (i *Image) ReadLong(pos int) (uint32, error) {
	if err := i.checkRange(pos, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(i.data[pos:]), nil
}

// WriteByte writes a byte at pos. Writes past the end of the buffer are
// rejected with ErrOutOfRange; the buffer never grows, because the format
// assumes fixed pre-sized buffers. Use SetData to resize.
func (i *Image) WriteByte(pos int, value uint8) error {
	if err := i.checkRange(pos, 1); err != nil {
		return err
	}
	i.data[pos] = value
	return nil
}

// WriteWord writes a little-endian 16-bit value at pos. Same bounds policy
// as WriteByte.
func (i *Image) WriteWord(pos int, value uint16) error {
	if err := i.checkRange(pos, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(i.data[pos:], value)
	return nil
}

// WriteLong writes a little-endian 32-bit value at pos. Same bounds policy
// as WriteByte.
func (i *Image) WriteLong(pos int, value uint32) error {
	if err := i.checkRange(pos, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(i.data[pos:], value)
	return nil
}
