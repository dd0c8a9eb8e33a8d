package image

import "fmt"

// Checksum computes the byte value that, stored at OffsetChecksum, makes
// the additive sum of the whole image zero mod 256. This is the additive
// complement of every other byte, not the value currently stored.
func (i *Image) Checksum() (uint8, error) {
	if len(i.data) <= OffsetChecksum {
		return 0, fmt.Errorf("%w: %d bytes, checksum lives at offset %d",
			ErrTooShort, len(i.data), OffsetChecksum)
	}

	var sum uint8
	for _, b := range i.data {
		sum += b
	}
	sum -= i.data[OffsetChecksum]

	return -sum, nil
}

// ChecksumIsValid reports whether the additive sum of every byte in the
// buffer, including the stored checksum byte, is zero mod 256.
func (i *Image) ChecksumIsValid() bool {
	var sum uint8
	for _, b := range i.data {
		sum += b
	}
	return sum == 0
}

// RecalculateChecksum computes the checksum and stores it at
// OffsetChecksum. Idempotent: a second call leaves the buffer unchanged.
func (i *Image) RecalculateChecksum() error {
	checksum, err := i.Checksum()
	if err != nil {
		return err
	}
	return i.WriteByte(OffsetChecksum, checksum)
}

// IsValid reports whether the image is structurally and content valid: the
// start-of-code pointer is CodeStart, the stored checksum balances the
// image, and the buffer length classifies as Binary or Eeprom.
func (i *Image) IsValid() bool {
	start, err := i.StartOfCode()
	if err != nil || start != CodeStart {
		return false
	}
	return i.ChecksumIsValid() && i.Type() != Invalid
}
