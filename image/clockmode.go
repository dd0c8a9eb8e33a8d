package image

import "fmt"

// clockModeNames maps raw clock mode bytes to the oscillator and PLL
// configuration they select. Built once; shared read-only across all
// images.
var clockModeNames = map[uint8]string{
	0x00: "RCFAST",
	0x01: "RCSLOW",
	0x22: "XINPUT",
	0x2A: "XTAL1",
	0x32: "XTAL2",
	0x3A: "XTAL3",
	0x63: "XINPUT+PLL1X",
	0x64: "XINPUT+PLL2X",
	0x65: "XINPUT+PLL4X",
	0x66: "XINPUT+PLL8X",
	0x67: "XINPUT+PLL16X",
	0x6B: "XTAL1+PLL1X",
	0x6C: "XTAL1+PLL2X",
	0x6D: "XTAL1+PLL4X",
	0x6E: "XTAL1+PLL8X",
	0x6F: "XTAL1+PLL16X",
	0x73: "XTAL2+PLL1X",
	0x74: "XTAL2+PLL2X",
	0x75: "XTAL2+PLL4X",
	0x76: "XTAL2+PLL8X",
	0x77: "XTAL2+PLL16X",
	0x7B: "XTAL3+PLL1X",
	0x7C: "XTAL3+PLL2X",
	0x7D: "XTAL3+PLL4X",
	0x7E: "XTAL3+PLL8X",
	0x7F: "XTAL3+PLL16X",
}

// ClockModeName returns the human-readable name of a raw clock mode value,
// or "Invalid" for values the Propeller does not define.
func ClockModeName(value uint8) string {
	if name, ok := clockModeNames[value]; ok {
		return name
	}
	return "Invalid"
}

// ValidClockMode reports whether value is a clock mode the Propeller
// defines.
func ValidClockMode(value uint8) bool {
	_, ok := clockModeNames[value]
	return ok
}

// ClockFrequency returns the clock frequency of the image in Hz.
func (i *Image) ClockFrequency() (uint32, error) {
	if len(i.data) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrTooShort, len(i.data), HeaderSize)
	}
	return i.ReadLong(OffsetClockFrequency)
}

// SetClockFrequency assigns a new clock frequency in Hz. The caller is
// expected to RecalculateChecksum afterwards.
func (i *Image) SetClockFrequency(frequency uint32) error {
	return i.WriteLong(OffsetClockFrequency, frequency)
}

// ClockMode returns the raw clock mode byte of the image.
func (i *Image) ClockMode() (uint8, error) {
	if len(i.data) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrTooShort, len(i.data), HeaderSize)
	}
	return i.ReadByte(OffsetClockMode)
}

// ClockModeName returns the human-readable name of the image's current
// clock mode.
func (i *Image) ClockModeName() (string, error) {
	mode, err := i.ClockMode()
	if err != nil {
		return "", err
	}
	return ClockModeName(mode), nil
}

// SetClockMode assigns a new clock mode. Values the Propeller does not
// define are rejected with ErrInvalidClockMode and leave the image
// untouched. The caller is expected to RecalculateChecksum afterwards.
func (i *Image) SetClockMode(value uint8) error {
	if !ValidClockMode(value) {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidClockMode, value)
	}
	return i.WriteByte(OffsetClockMode, value)
}
