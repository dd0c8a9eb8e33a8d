// Package protocol implements the Propeller 1 serial download protocol.
//
// This package provides the low-level pieces of the boot loader
// conversation: the LFSR handshake sequence, the chip version decoding,
// and the three-bits-per-byte transmit encoding used for host-to-chip
// longs. It performs no I/O itself; the loader package drives a serial
// connection with the sequences built here.
//
// # Protocol Overview
//
// After a hardware reset the Propeller boot ROM listens on its serial pins
// at 115200 baud. The conversation proceeds in fixed steps:
//
//  1. Host sends the timing calibration byte (0xF9) followed by a 250-bit
//     pseudo-random handshake sequence generated by an 8-bit LFSR seeded
//     with 'P'.
//  2. The chip echoes the next 250 bits of the same LFSR stream, then 8
//     bits encoding its version (1 for the Propeller 1). Each response bit
//     is clocked out by the host transmitting one calibration byte.
//  3. Host sends a command long selecting shutdown, load-and-run, or one
//     of the EEPROM programming commands.
//  4. For image-carrying commands, host sends the image length in longs
//     followed by the image longs themselves.
//  5. The chip acknowledges the RAM checksum, and for EEPROM commands the
//     program and verify steps, with single ACK/NAK bits polled by the
//     host.
//
// All host-to-chip longs after calibration are transmitted three bits per
// byte, eleven bytes per long, so the chip can recover bits from serial
// edge timing. Handshake bits travel one per byte (0xFE or 0xFF).
//
// # Usage
//
// Build the handshake and validate the chip's reply:
//
//	tx := protocol.HandshakeSequence()
//	// write tx, clock back the 250 echo bytes and 8 version bytes...
//	if err := protocol.ValidateEcho(echo); err != nil { ... }
//	version, err := protocol.DecodeVersion(versionBits)
//
// Encode an image for transmission:
//
//	payload, err := protocol.EncodeImage(img.Data())
//	// write protocol.EncodeLong(uint32(protocol.CmdProgramRun)), then payload
package protocol
