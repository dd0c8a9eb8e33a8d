// Package loader provides a high-level API for downloading application
// images to a Parallax Propeller 1.
//
// # Overview
//
// This package orchestrates the complete download sequence:
//   - Handshaking with the boot ROM and checking the chip version
//   - Transmitting the command, long count, and encoded image
//   - Waiting for the RAM checksum acknowledgement
//   - Waiting for the EEPROM program and verify acknowledgements when the
//     command writes to EEPROM
//
// # Basic Usage
//
//	// User provides the serial connection (io.ReadWriter), already reset.
//	port := openAndResetPort("/dev/ttyUSB0")
//
//	img := image.New(data, "blink.binary")
//
//	l := loader.New(port)
//	err := l.Load(context.Background(), img, protocol.CmdLoadRun)
//
// # Progress Tracking
//
//	l := loader.New(port,
//	    loader.WithProgressCallback(func(p loader.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
//
// # Hardware Independence
//
// This package does NOT open serial ports or toggle reset lines. Callers
// supply an io.ReadWriter for a connection whose chip has just been reset
// (typically by pulsing DTR) and whose receive buffer has been drained.
// This keeps the package testable against mock devices and usable with any
// transport that reaches the chip's serial pins.
//
// # Error Handling
//
// The package provides structured error types:
//   - ImageError: the image failed validation before any byte was sent
//   - VersionError: the attached chip is not a Propeller 1
//   - NakError: the chip rejected a checksum, program, or verify step
//   - TimeoutError: the chip never acknowledged within the configured window
//   - protocol.HandshakeError: the handshake echo diverged
package loader
