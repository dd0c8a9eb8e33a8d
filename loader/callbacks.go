package loader

import "time"

// Download phases reported through Progress.
const (
	// PhaseHandshake covers reset detection and version checking
	PhaseHandshake = "handshake"

	// PhaseSending covers command and image transmission
	PhaseSending = "sending"

	// PhaseVerifying covers the RAM checksum acknowledgement
	PhaseVerifying = "verifying"

	// PhaseProgramming covers the EEPROM program and verify steps
	PhaseProgramming = "programming"

	// PhaseComplete indicates the download finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about a download in flight.
// Passed to ProgressCallback during Load.
type Progress struct {
	// Phase is the current download phase
	Phase string

	// BytesSent is the number of raw image bytes transmitted so far
	BytesSent int

	// TotalBytes is the total number of raw image bytes to transmit
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the download started
	ElapsedTime time.Duration
}

// ProgressCallback is called periodically during a download to report
// progress. Implementations should return quickly to avoid stalling the
// serial stream.
type ProgressCallback func(Progress)

// Logger is an optional logging interface accepted by the loader, allowing
// integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
