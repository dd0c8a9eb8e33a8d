package protocol

import "fmt"

// Command is a loader command long sent after a successful handshake.
type Command uint32

// Loader commands understood by the Propeller boot ROM.
const (
	// CmdShutdown stops the boot loader without loading an image
	CmdShutdown Command = 0

	// CmdLoadRun loads the image into RAM and runs it
	CmdLoadRun Command = 1

	// CmdProgramShutdown programs the image into EEPROM and shuts down
	CmdProgramShutdown Command = 2

	// CmdProgramRun programs the image into EEPROM and runs it
	CmdProgramRun Command = 3
)

// String returns the human-readable name of the command.
func (c Command) String() string {
	switch c {
	case CmdShutdown:
		return "shutdown"
	case CmdLoadRun:
		return "load and run"
	case CmdProgramShutdown:
		return "program EEPROM"
	case CmdProgramRun:
		return "program EEPROM and run"
	default:
		return fmt.Sprintf("unknown command %d", uint32(c))
	}
}

// SendsImage reports whether the command is followed by an image payload.
func (c Command) SendsImage() bool {
	return c == CmdLoadRun || c == CmdProgramShutdown || c == CmdProgramRun
}

// ProgramsEeprom reports whether the command writes the image to EEPROM,
// which adds the program and verify acknowledgement steps.
func (c Command) ProgramsEeprom() bool {
	return c == CmdProgramShutdown || c == CmdProgramRun
}

// Framing and timing constants fixed by the Propeller 1 boot ROM.
const (
	// DefaultBaudRate is the download baud rate
	DefaultBaudRate = 115200

	// CalibrationByte carries the host timing template (0xF9); it is also
	// transmitted once per response bit to clock data out of the chip
	CalibrationByte = 0xF9

	// HandshakeBits is the length of the LFSR handshake and echo sequences
	HandshakeBits = 250

	// VersionBits is the number of bits in the chip version reply
	VersionBits = 8

	// LFSRSeed is the initial LFSR state ('P')
	LFSRSeed = 0x50

	// Propeller1Version is the version reported by the Propeller 1 boot ROM
	Propeller1Version = 1

	// BytesPerLong is the transmit-encoded size of one long
	BytesPerLong = 11

	// MaxImageLongs is the largest image payload, in longs, the chip
	// accepts (32768 bytes of RAM)
	MaxImageLongs = 32768 / 4
)
