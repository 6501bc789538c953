package hmcfgusb

import (
	"fmt"
	"strings"
)

// ChipProfile describes the flash layout used when building blocks from a hex file.
type ChipProfile struct {
	Name        string `yaml:"name"`
	ImageSize   int    `yaml:"imageSize"`
	BlockLength int    `yaml:"blockLength"`
}

// Supported chips.
var (
	ATmega328P = ChipProfile{Name: "ATmega328P", ImageSize: 0x7000, BlockLength: 128}
	ATmega644P = ChipProfile{Name: "ATmega644P", ImageSize: 0xF000, BlockLength: 256}
)

// LookupChipProfile returns the profile for a chip name such as "328p" or "ATmega644P".
func LookupChipProfile(name string) (*ChipProfile, error) {
	switch strings.TrimPrefix(strings.ToLower(name), "atmega") {
	case "328p":
		p := ATmega328P
		return &p, nil
	case "644p":
		p := ATmega644P
		return &p, nil
	}
	return nil, fmt.Errorf("unknown chip %q, must be 328p or 644p", name)
}

func (p *ChipProfile) validate() error {
	// The last block must have room for the checksum.
	if p.BlockLength < 2 || p.ImageSize < p.BlockLength || p.ImageSize%p.BlockLength != 0 || p.ImageSize > 0x10000 {
		return fmt.Errorf("invalid chip profile %v: image size %#x, block length %d", p.Name, p.ImageSize, p.BlockLength)
	}
	return nil
}
