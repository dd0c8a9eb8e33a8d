// Package image models the Parallax Propeller application image format.
//
// # Image Format
//
// A Propeller application image is a flat byte buffer consisting of an
// initialization header followed by code, variable, and stack space. The
// header describes the application's startup parameters, including the
// position of the other blocks within the image:
//
//	| size | offset | description                                          |
//	|------|--------|------------------------------------------------------|
//	| long | 0      | clock frequency in Hz                                |
//	| byte | 4      | clock mode                                           |
//	| byte | 5      | checksum (makes the additive sum of the image zero)  |
//	| word | 6      | start of code pointer (always 0x0010)                |
//	| word | 8      | start of variables pointer                           |
//	| word | 10     | start of stack space pointer                         |
//	| word | 12     | current program pointer                              |
//	| word | 14     | current stack space pointer                          |
//
// All multi-byte fields are little-endian.
//
// Two image kinds exist. Binary images (usually `.binary` files) carry only
// the header and code block; the chip zero-fills the remainder of RAM at
// startup. EEPROM images (usually `.eeprom` files) are complete 32768-byte
// memory images including the zero-filled tail.
//
// # Usage
//
// Wrap a raw buffer and inspect it:
//
//	img := image.New(data, "blink.binary")
//	fmt.Println(img.Type())       // Binary
//	fmt.Println(img.IsValid())    // true
//	size, _ := img.ProgramSize()
//
// Retarget a binary and restore checksum integrity:
//
//	img.SetClockFrequency(80000000)
//	_ = img.SetClockMode(0x6F)    // XTAL1 + PLL16X
//	_ = img.RecalculateChecksum()
//
// Mutators never recalculate the checksum on their own; callers decide when
// to pay for a full buffer scan by calling RecalculateChecksum.
//
// # Error Handling
//
// All failures are recoverable and reported as wrapped sentinel errors:
//   - ErrOutOfRange: read or write beyond the buffer bounds
//   - ErrTooShort: buffer too small to hold the header field required
//   - ErrInvalidClockMode: unrecognized clock mode value on write
//
// An Invalid classification is not an error; Type and IsValid report it as
// an ordinary result for callers to check.
//
// The package performs no file I/O; loading and saving image bytes is the
// caller's concern.
package image
