// Package hmcfgusb implements firmware flashing for the HM-CFG-USB
// HomeMatic configuration adapter.
//
// The package contains three main components: the firmware loader, Bootloader
// and Programmer. LoadFirmware reads either the native .enc block format or an
// AsksinPP Intel HEX file and turns it into an Image of numbered blocks.
// Bootloader provides a transport-agnostic way of talking to the device.
// Programmer drives the block-by-block upload, including switching the device
// into bootloader mode when required.
//
// Also included is a command line tool, found in the cmd/flash-hmcfgusb
// directory, that uses the USB transport to flash a device.
package hmcfgusb

import "time"

//go:generate mockgen -destination=mocks/bootloader.go -package=mocks github.com/volschin/hmcfgusb Bootloader,Connector

// The Bootloader interface allows low-level interaction with the device in a transport-agnostic fashion.
// For flashing a complete image, use the Programmer.
type Bootloader interface {
	// Send transmits one frame. If done is set, the transfer is terminated
	// explicitly so the device processes it immediately.
	Send(data []byte, done bool) error
	// Poll waits up to timeout for a report from the device and returns the
	// acknowledgement byte it carried, or 0 if it carried none.
	// It returns ErrTimeout if nothing arrived.
	Poll(timeout time.Duration) (byte, error)
	EnterBootloader() error
	InBootloader() bool
	Close() error
}

// A Connector finds and opens the device. Open returns an error if no device
// is present.
type Connector interface {
	Open() (Bootloader, error)
}

// Acknowledgement codes sent by the bootloader after each block.
const (
	AckNone     = 0x00
	AckBlock    = 0x01
	AckComplete = 0x02
)

// GetAckString returns the string representation of an acknowledgement code.
func GetAckString(ack byte) string {
	switch ack {
	case AckNone:
		return "no acknowledgement"
	case AckBlock:
		return "block accepted"
	case AckComplete:
		return "flash complete"
	default:
		return "device error"
	}
}
