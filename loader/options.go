package loader

import "time"

// Config holds the loader configuration.
type Config struct {
	// ProgressCallback is called during downloads to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// AckTimeout is the window for the RAM checksum acknowledgement
	AckTimeout time.Duration

	// ProgramTimeout is the window for the EEPROM program acknowledgement;
	// writing 32K of EEPROM takes the boot ROM several seconds
	ProgramTimeout time.Duration

	// VerifyTimeout is the window for the EEPROM verify acknowledgement
	VerifyTimeout time.Duration

	// PollDelay is the pause between acknowledgement poll bytes
	PollDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		AckTimeout:     2 * time.Second,
		ProgramTimeout: 8 * time.Second,
		VerifyTimeout:  3 * time.Second,
		PollDelay:      20 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Loader.
type Option func(*Config)

// WithProgressCallback sets a callback function to track download progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for loader operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithAckTimeout sets the window for the RAM checksum acknowledgement.
func WithAckTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.AckTimeout = timeout
		}
	}
}

// WithProgramTimeout sets the window for the EEPROM program
// acknowledgement.
func WithProgramTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ProgramTimeout = timeout
		}
	}
}

// WithVerifyTimeout sets the window for the EEPROM verify acknowledgement.
func WithVerifyTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.VerifyTimeout = timeout
		}
	}
}

// WithPollDelay sets the pause between acknowledgement poll bytes.
func WithPollDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.PollDelay = delay
		}
	}
}
