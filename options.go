package hmcfgusb

import "time"

// Progress is reported after each block accepted by the device.
type Progress struct {
	// Block is the number of blocks accepted so far.
	Block int
	Total int
}

// ProgressCallback receives programming progress.
type ProgressCallback func(Progress)

// Config holds the programmer configuration.
type Config struct {
	// PollTimeout is how long a single acknowledgement poll waits.
	PollTimeout time.Duration

	// AckPolicy controls how often the device is polled for an
	// acknowledgement after a block was sent.
	AckPolicy RetryPolicy

	// ReconnectPolicy controls the search for the device after it was
	// asked to enter bootloader mode.
	ReconnectPolicy RetryPolicy

	// ProgressCallback is called after each accepted block (optional).
	ProgressCallback ProgressCallback
}

func defaultConfig() Config {
	return Config{
		PollTimeout:     time.Second,
		AckPolicy:       Unbounded(0),
		ReconnectPolicy: Unbounded(2 * time.Second),
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithPollTimeout sets the timeout of a single acknowledgement poll.
func WithPollTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.PollTimeout = timeout
		}
	}
}

// WithAckPolicy sets the acknowledgement polling policy.
func WithAckPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		c.AckPolicy = policy
	}
}

// WithReconnectPolicy sets the policy used to find the device again after
// it was switched to bootloader mode.
//
// Example:
//
//	prog := hmcfgusb.NewProgrammer(conn,
//	    hmcfgusb.WithReconnectPolicy(hmcfgusb.RetryPolicy{MaxAttempts: 10, Interval: 2 * time.Second}),
//	)
func WithReconnectPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		c.ReconnectPolicy = policy
	}
}

// WithProgressCallback sets a callback function to track programming progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}
