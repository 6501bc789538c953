package hmcfgusb

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTimeout is returned by Bootloader.Poll when no report arrived in time.
	ErrTimeout = errors.New("timeout")
	// ErrChipProfileRequired is returned when a hex file is loaded without a chip profile.
	ErrChipProfileRequired = errors.New("chip type (328P/644P) not specified for flashing hex files")
)

// FormatError reports a firmware file that could not be parsed.
// Block is the 1-based block or record number being read, or 0 if unknown.
type FormatError struct {
	Block int
	Msg   string
}

func (e *FormatError) Error() string {
	if e.Block > 0 {
		return fmt.Sprintf("firmware file not valid: %v (block %d)", e.Msg, e.Block)
	}
	return "firmware file not valid: " + e.Msg
}

func formatErrorf(block int, format string, args ...interface{}) error {
	return &FormatError{Block: block, Msg: fmt.Sprintf(format, args...)}
}

// IoError wraps failures of the underlying file or device.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IoError) Unwrap() error { return e.Err }

// ProtocolError is returned when the device answers a block with an
// unexpected status.
type ProtocolError struct {
	Block  int
	Status byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("error flashing block %d, status: %d (%v)", e.Block, e.Status, GetAckString(e.Status))
}

// DeviceStateError is returned when the device is not in the state required
// for flashing.
type DeviceStateError struct {
	Msg string
}

func (e *DeviceStateError) Error() string {
	return e.Msg
}
