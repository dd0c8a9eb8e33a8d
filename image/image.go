package image

import "fmt"

// Header field offsets and format constants, fixed by the Propeller
// hardware platform.
const (
	// OffsetClockFrequency is the offset of the 4-byte clock frequency field
	OffsetClockFrequency = 0

	// OffsetClockMode is the offset of the 1-byte clock mode field
	OffsetClockMode = 4

	// OffsetChecksum is the offset of the 1-byte checksum field
	OffsetChecksum = 5

	// OffsetStartOfCode is the offset of the start-of-code pointer
	OffsetStartOfCode = 6

	// OffsetStartOfVariables is the offset of the start-of-variables pointer
	OffsetStartOfVariables = 8

	// OffsetStartOfStackSpace is the offset of the start-of-stack-space pointer
	OffsetStartOfStackSpace = 10

	// OffsetCurrentProgram is the offset of the current program pointer
	OffsetCurrentProgram = 12

	// OffsetCurrentStackSpace is the offset of the current stack space pointer
	OffsetCurrentStackSpace = 14

	// HeaderSize is the size of the initialization header in bytes
	HeaderSize = 16

	// EEPROMSize is the total size of a complete EEPROM image
	EEPROMSize = 32768

	// CodeStart is the required value of the start-of-code pointer
	CodeStart = 0x0010
)

// Type classifies an application image buffer.
type Type int

// Image types recognized by the loader.
const (
	// Invalid is a buffer that is not a usable image
	Invalid Type = iota

	// Binary is a program-data-only image (usually a .binary file)
	Binary

	// Eeprom is a complete 32768-byte memory image (usually a .eeprom file)
	Eeprom
)

// String returns the human-readable name of the image type.
func (t Type) String() string {
	switch t {
	case Binary:
		return "Binary"
	case Eeprom:
		return "EEPROM"
	default:
		return "Invalid"
	}
}

// Image wraps a Propeller application image buffer and provides checked
// access to its header fields.
//
// Image is not safe for concurrent mutation; callers sharing an instance
// across goroutines must serialize access externally.
type Image struct {
	data     []byte
	filename string
}

// New creates an Image wrapping the given buffer. The filename is an opaque
// diagnostic label and is never interpreted or validated.
//
// The buffer is held by reference, not copied; the Image owns it from this
// point on.
func New(data []byte, filename string) *Image {
	return &Image{
		data:     data,
		filename: filename,
	}
}

// Data returns the raw image buffer. Mutations made through the Image are
// visible in the returned slice.
func (i *Image) Data() []byte {
	return i.data
}

// SetData replaces the image buffer wholesale. This is the only way to
// change the buffer length; the checked writers never grow it.
func (i *Image) SetData(data []byte) {
	i.data = data
}

// FileName returns the diagnostic label supplied at construction.
func (i *Image) FileName() string {
	return i.filename
}

// Type classifies the image from its current buffer length and header
// contents. The classification is recomputed on every call so it can never
// go stale after a mutation.
func (i *Image) Type() Type {
	switch {
	case len(i.data) == EEPROMSize:
		return Eeprom
	case len(i.data) >= HeaderSize && len(i.data) < EEPROMSize:
		start, err := i.StartOfCode()
		if err == nil && start == CodeStart {
			return Binary
		}
		return Invalid
	default:
		return Invalid
	}
}

// ImageSize returns the total size of the image buffer in bytes.
func (i *Image) ImageSize() int {
	return len(i.data)
}

// ProgramSize returns the size of the code block in bytes.
func (i *Image) ProgramSize() (int, error) {
	code, err := i.StartOfCode()
	if err != nil {
		return 0, err
	}
	vars, err := i.StartOfVariables()
	if err != nil {
		return 0, err
	}
	return int(vars) - int(code), nil
}

// VariableSize returns the size of the variable block in bytes.
func (i *Image) VariableSize() (int, error) {
	vars, err := i.StartOfVariables()
	if err != nil {
		return 0, err
	}
	stack, err := i.StartOfStackSpace()
	if err != nil {
		return 0, err
	}
	return int(stack) - int(vars), nil
}

// StackSize returns the size of the stack and free space block in bytes.
// Binary images omit the zero-filled tail, so their stack size is reported
// as zero.
func (i *Image) StackSize() (int, error) {
	stack, err := i.StartOfStackSpace()
	if err != nil {
		return 0, err
	}
	if i.Type() != Eeprom {
		return 0, nil
	}
	return len(i.data) - int(stack), nil
}

// StartOfCode returns the start-of-code pointer. It is CodeStart in every
// well-formed image.
func (i *Image) StartOfCode() (uint16, error) {
	return i.headerWord(OffsetStartOfCode)
}

// StartOfVariables returns the start-of-variables pointer, the boundary
// between code and variable space.
func (i *Image) StartOfVariables() (uint16, error) {
	return i.headerWord(OffsetStartOfVariables)
}

// StartOfStackSpace returns the start-of-stack-space pointer, the boundary
// between variable space and the stack.
func (i *Image) StartOfStackSpace() (uint16, error) {
	return i.headerWord(OffsetStartOfStackSpace)
}

// CurrentProgram returns the current program pointer, which points to the
// first public method of the top object.
func (i *Image) CurrentProgram() (uint16, error) {
	return i.headerWord(OffsetCurrentProgram)
}

// CurrentStackSpace returns the current stack space pointer, which points
// to the first run-time usable space of the stack.
func (i *Image) CurrentStackSpace() (uint16, error) {
	return i.headerWord(OffsetCurrentStackSpace)
}

// headerWord reads a word-sized header field, mapping a bounds failure to
// ErrTooShort since header offsets are fixed and only a short buffer can
// make them unreadable.
func (i *Image) headerWord(offset int) (uint16, error) {
	if len(i.data) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrTooShort, len(i.data), HeaderSize)
	}
	return i.ReadWord(offset)
}

// ToEeprom grows a valid image to a complete EEPROM image by zero-filling
// the tail up to EEPROMSize and recalculating the checksum. Growing an
// image that is already EEPROM-sized is a no-op.
func (i *Image) ToEeprom() error {
	if i.Type() == Invalid {
		return fmt.Errorf("%w: cannot convert", ErrInvalidImage)
	}
	if len(i.data) < EEPROMSize {
		i.data = append(i.data, make([]byte, EEPROMSize-len(i.data))...)
	}
	return i.RecalculateChecksum()
}

// ToBinary truncates a valid image to its code block (header through the
// start of variables) and recalculates the checksum. The discarded tail of
// an EEPROM image is zero-filled by the chip at startup, so no information
// is lost.
func (i *Image) ToBinary() error {
	if i.Type() == Invalid {
		return fmt.Errorf("%w: cannot convert", ErrInvalidImage)
	}
	vars, err := i.StartOfVariables()
	if err != nil {
		return err
	}
	if int(vars) < len(i.data) {
		i.data = i.data[:vars]
	}
	return i.RecalculateChecksum()
}
