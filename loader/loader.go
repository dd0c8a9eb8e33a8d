package loader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/propeller-tools/go-propeller/image"
	"github.com/propeller-tools/go-propeller/protocol"
)

// sendChunkSize is the number of encoded bytes written per chunk while
// transmitting the image, bounding the granularity of progress reports.
const sendChunkSize = 1024

// Loader orchestrates image downloads to a Propeller 1 boot ROM over a
// serial connection supplied by the caller.
type Loader struct {
	conn   io.ReadWriter
	config Config
}

// New creates a Loader for the given connection. The connection must reach
// a chip that has just been reset; see the package documentation.
func New(conn io.ReadWriter, opts ...Option) *Loader {
	if conn == nil {
		panic("conn cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loader{
		conn:   conn,
		config: cfg,
	}
}

// Load performs the complete download sequence:
//  1. Validate the image (for image-carrying commands)
//  2. Handshake with the boot ROM and check the chip version
//  3. Send the command, long count, and encoded image
//  4. Wait for the RAM checksum acknowledgement
//  5. For EEPROM commands, wait for the program and verify acknowledgements
//
// The operation can be cancelled via context between protocol steps.
func (l *Loader) Load(ctx context.Context, img *image.Image, cmd protocol.Command) error {
	if cmd.SendsImage() {
		if img == nil {
			return &ImageError{Reason: "no image supplied"}
		}
		if !img.IsValid() {
			return &ImageError{
				FileName: img.FileName(),
				Reason:   fmt.Sprintf("classified %s, checksum valid: %v", img.Type(), img.ChecksumIsValid()),
			}
		}
	}

	startTime := time.Now()
	totalBytes := 0
	if cmd.SendsImage() {
		totalBytes = img.ImageSize()
	}

	l.reportProgress(Progress{
		Phase:      PhaseHandshake,
		TotalBytes: totalBytes,
	})

	version, err := l.handshake(ctx)
	if err != nil {
		return fmt.Errorf("handshake: %w", err)
	}

	l.logDebug("handshake complete", "version", version)

	if version != protocol.Propeller1Version {
		return &VersionError{Version: version}
	}

	if err := l.writeAll(ctx, protocol.EncodeLong(uint32(cmd))); err != nil {
		return fmt.Errorf("send command: %w", err)
	}

	if !cmd.SendsImage() {
		l.reportProgress(Progress{
			Phase:       PhaseComplete,
			Percentage:  100,
			ElapsedTime: time.Since(startTime),
		})
		l.logInfo("command sent", "command", cmd.String())
		return nil
	}

	payload, err := protocol.EncodeImage(img.Data())
	if err != nil {
		return fmt.Errorf("encode image: %w", err)
	}

	l.logDebug("sending image",
		"file", img.FileName(),
		"type", img.Type().String(),
		"bytes", totalBytes,
		"encoded_bytes", len(payload),
	)

	// Phase allocation: sending 5-90%, verifying 92%, programming 95%.
	sent := 0
	for sent < len(payload) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		chunk := payload[sent:]
		if len(chunk) > sendChunkSize {
			chunk = chunk[:sendChunkSize]
		}
		if err := l.writeAll(ctx, chunk); err != nil {
			return fmt.Errorf("send image: %w", err)
		}
		sent += len(chunk)

		l.reportProgress(Progress{
			Phase:       PhaseSending,
			BytesSent:   totalBytes * sent / len(payload),
			TotalBytes:  totalBytes,
			Percentage:  5 + 85*float64(sent)/float64(len(payload)),
			ElapsedTime: time.Since(startTime),
		})
	}

	l.reportProgress(Progress{
		Phase:       PhaseVerifying,
		BytesSent:   totalBytes,
		TotalBytes:  totalBytes,
		Percentage:  92,
		ElapsedTime: time.Since(startTime),
	})

	if err := l.waitAck(ctx, "RAM checksum", l.config.AckTimeout); err != nil {
		return err
	}

	if cmd.ProgramsEeprom() {
		l.reportProgress(Progress{
			Phase:       PhaseProgramming,
			BytesSent:   totalBytes,
			TotalBytes:  totalBytes,
			Percentage:  95,
			ElapsedTime: time.Since(startTime),
		})

		if err := l.waitAck(ctx, "EEPROM program", l.config.ProgramTimeout); err != nil {
			return err
		}
		if err := l.waitAck(ctx, "EEPROM verify", l.config.VerifyTimeout); err != nil {
			return err
		}
	}

	l.reportProgress(Progress{
		Phase:       PhaseComplete,
		BytesSent:   totalBytes,
		TotalBytes:  totalBytes,
		Percentage:  100,
		ElapsedTime: time.Since(startTime),
	})

	l.logInfo("download complete",
		"command", cmd.String(),
		"bytes", totalBytes,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// Shutdown tells the boot ROM to stop without loading anything.
func (l *Loader) Shutdown(ctx context.Context) error {
	return l.Load(ctx, nil, protocol.CmdShutdown)
}

// handshake runs the LFSR handshake and returns the chip version.
func (l *Loader) handshake(ctx context.Context) (uint8, error) {
	// Calibration byte, host handshake bits, then one poll byte for every
	// echo and version bit the chip clocks back.
	tx := make([]byte, 0, 1+protocol.HandshakeBits+protocol.HandshakeBits+protocol.VersionBits)
	tx = append(tx, protocol.CalibrationByte)
	tx = append(tx, protocol.HandshakeSequence()...)
	for i := 0; i < protocol.HandshakeBits+protocol.VersionBits; i++ {
		tx = append(tx, protocol.CalibrationByte)
	}

	if err := l.writeAll(ctx, tx); err != nil {
		return 0, err
	}

	reply, err := l.readFull(ctx, protocol.HandshakeBits+protocol.VersionBits, l.config.AckTimeout, "handshake reply")
	if err != nil {
		return 0, err
	}

	if err := protocol.ValidateEcho(reply[:protocol.HandshakeBits]); err != nil {
		return 0, err
	}

	return protocol.DecodeVersion(reply[protocol.HandshakeBits:])
}

// waitAck polls for a single acknowledgement bit. The chip holds its reply
// until ready, so the host keeps clocking calibration bytes; a zero bit is
// an ACK, a one bit a NAK.
func (l *Loader) waitAck(ctx context.Context, operation string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 1)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		if time.Now().After(deadline) {
			return &TimeoutError{Operation: operation, Timeout: timeout}
		}

		if err := l.writeAll(ctx, []byte{protocol.CalibrationByte}); err != nil {
			return fmt.Errorf("poll %s: %w", operation, err)
		}

		n, err := l.conn.Read(buf)
		if err != nil {
			return fmt.Errorf("poll %s: %w", operation, err)
		}
		if n == 0 {
			if l.config.PollDelay > 0 {
				time.Sleep(l.config.PollDelay)
			}
			continue
		}

		if buf[0]&1 != 0 {
			l.logError("chip rejected step", "operation", operation)
			return &NakError{Operation: operation}
		}

		l.logDebug("chip acknowledged", "operation", operation)
		return nil
	}
}

// writeAll writes the whole buffer, looping over short writes.
func (l *Loader) writeAll(ctx context.Context, data []byte) error {
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		n, err := l.conn.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// readFull accumulates exactly size bytes from the connection. Serial
// reads return whatever has arrived, so short reads are expected; a read
// timeout surfaces as (0, nil) and counts against the deadline.
func (l *Loader) readFull(ctx context.Context, size int, timeout time.Duration, operation string) ([]byte, error) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, size)
	have := 0

	for have < size {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, &TimeoutError{Operation: operation, Timeout: timeout}
		}

		n, err := l.conn.Read(buf[have:])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", operation, err)
		}
		if n == 0 && l.config.PollDelay > 0 {
			time.Sleep(l.config.PollDelay)
		}
		have += n
	}

	return buf, nil
}

// reportProgress calls the progress callback if configured.
func (l *Loader) reportProgress(progress Progress) {
	if l.config.ProgressCallback != nil {
		l.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (l *Loader) logDebug(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (l *Loader) logInfo(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (l *Loader) logError(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Error(msg, keysAndValues...)
	}
}
