package main

import (
	"bytes"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/volschin/hmcfgusb"
	"gopkg.in/yaml.v2"
)

// config holds the settings that can be given in the configuration file.
// Command line flags take precedence.
type config struct {
	// Chip selects the flash layout for hex files: 328p or 644p.
	Chip string `yaml:"chip"`
	// Profile describes a custom flash layout, used when no chip is selected.
	Profile *hmcfgusb.ChipProfile `yaml:"profile,omitempty"`
	// PollTimeout is the time to wait for a single acknowledgement poll.
	PollTimeout time.Duration `yaml:"pollTimeout"`
	// ReconnectDelay is the time to wait between attempts to find the
	// device after switching it to bootloader mode.
	ReconnectDelay time.Duration `yaml:"reconnectDelay"`
	// AckRetries limits the number of polls per block, 0 is unlimited.
	AckRetries int `yaml:"ackRetries"`
	// ReconnectRetries limits the attempts to find the device, 0 is unlimited.
	ReconnectRetries int `yaml:"reconnectRetries"`
	// LogFile additionally writes the log to a rotated file.
	LogFile string `yaml:"logFile"`
}

func defaultConfig() config {
	return config{
		PollTimeout:    time.Second,
		ReconnectDelay: 2 * time.Second,
	}
}

// exampleConfig formats the default configuration as yaml.
func exampleConfig() string {
	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.Encode(defaultConfig())
	enc.Close()
	return buf.String()
}

func loadConfig(fileName string) (config, error) {
	cfg := defaultConfig()
	if fileName == "" {
		return cfg, nil
	}
	f, err := ioutil.ReadFile(fileName)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to open config file")
	}
	if err := yaml.UnmarshalStrict(f, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file")
	}
	return cfg, nil
}

// chipProfile returns the selected chip profile, or nil if none was given.
// A chip name takes precedence over a custom profile.
func (c config) chipProfile() (*hmcfgusb.ChipProfile, error) {
	if c.Chip != "" {
		return hmcfgusb.LookupChipProfile(c.Chip)
	}
	return c.Profile, nil
}

func (c config) programmerOptions() []hmcfgusb.Option {
	return []hmcfgusb.Option{
		hmcfgusb.WithPollTimeout(c.PollTimeout),
		hmcfgusb.WithAckPolicy(hmcfgusb.RetryPolicy{MaxAttempts: c.AckRetries}),
		hmcfgusb.WithReconnectPolicy(hmcfgusb.RetryPolicy{
			MaxAttempts: c.ReconnectRetries,
			Interval:    c.ReconnectDelay,
		}),
	}
}
