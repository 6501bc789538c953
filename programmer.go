package hmcfgusb

import (
	"fmt"

	"github.com/pkg/errors"
)

// State is a step of the flashing sequence.
type State int

// Flashing states. Success and Aborted are terminal.
const (
	StateCheckBootloader State = iota
	StateEnterBootloader
	StateReconnecting
	StateTransferring
	StateSuccess
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateCheckBootloader:
		return "check bootloader"
	case StateEnterBootloader:
		return "enter bootloader"
	case StateReconnecting:
		return "reconnecting"
	case StateTransferring:
		return "transferring"
	case StateSuccess:
		return "success"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Programmer uploads firmware images to the device, one block at a time.
// It is not safe for concurrent use.
type Programmer struct {
	connector Connector
	config    Config

	dev   Bootloader
	state State
	sent  int
}

// NewProgrammer creates a programmer that opens the device through connector.
func NewProgrammer(connector Connector, opts ...Option) *Programmer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Programmer{
		connector: connector,
		config:    cfg,
	}
}

// State returns the state the last Flash call ended in.
func (p *Programmer) State() State {
	return p.state
}

// Sent returns the number of blocks sent by the last Flash call.
func (p *Programmer) Sent() int {
	return p.sent
}

// Flash writes img to the device, switching it to bootloader mode first if
// necessary. The image is released and the device closed when Flash returns.
func (p *Programmer) Flash(img *Image) (err error) {
	p.sent = 0
	p.state = StateCheckBootloader
	defer func() {
		if err != nil {
			p.state = StateAborted
		} else {
			p.state = StateSuccess
		}
		if img != nil {
			img.Release()
		}
		if p.dev != nil {
			p.dev.Close()
			p.dev = nil
		}
	}()

	if img == nil || img.Len() == 0 {
		return &FormatError{Msg: "no blocks to flash"}
	}

	for {
		var next State
		switch p.state {
		case StateCheckBootloader:
			next, err = p.checkBootloader()
		case StateEnterBootloader:
			next, err = p.enterBootloader()
		case StateReconnecting:
			next, err = p.reconnect()
		case StateTransferring:
			next, err = p.transfer(img)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		p.state = next
	}
}

func (p *Programmer) checkBootloader() (State, error) {
	dev, err := p.connector.Open()
	if err != nil {
		return StateAborted, &IoError{Op: "can't initialize HM-CFG-USB", Err: err}
	}
	p.dev = dev
	if !dev.InBootloader() {
		return StateEnterBootloader, nil
	}
	pkgLog.Infof("HM-CFG-USB opened")
	return StateTransferring, nil
}

func (p *Programmer) enterBootloader() (State, error) {
	pkgLog.Warnf("HM-CFG-USB not in bootloader mode, entering bootloader")
	if err := p.dev.EnterBootloader(); err != nil {
		return StateAborted, &IoError{Op: "enter bootloader", Err: err}
	}
	p.dev.Close()
	p.dev = nil
	return StateReconnecting, nil
}

func (p *Programmer) reconnect() (State, error) {
	pkgLog.Infof("waiting for device to reappear...")
	err := p.config.ReconnectPolicy.Do(func(attempt int) (bool, error) {
		dev, err := p.connector.Open()
		if err != nil {
			pkgLog.Debugf("device not found (attempt %d): %v", attempt, err)
			return false, nil
		}
		p.dev = dev
		return true, nil
	})
	if err != nil {
		return StateAborted, &DeviceStateError{Msg: "device did not reappear: " + err.Error()}
	}
	if !p.dev.InBootloader() {
		return StateAborted, &DeviceStateError{Msg: "can't enter bootloader, giving up"}
	}
	pkgLog.Infof("HM-CFG-USB opened")
	return StateTransferring, nil
}

func (p *Programmer) transfer(img *Image) (State, error) {
	total := img.Len()
	pkgLog.Infof("flashing %d blocks", total)

	for _, block := range img.Blocks {
		data := block.Bytes()
		pkgLog.Debugf("sending block %d (%d bytes)", block.Index, len(data))
		if err := p.dev.Send(data, false); err != nil {
			return StateAborted, &IoError{Op: fmt.Sprintf("send block %d", block.Index), Err: err}
		}
		p.sent++

		ack, err := p.waitAck()
		if err != nil {
			if errors.Cause(err) == ErrRetriesExhausted {
				return StateAborted, &ProtocolError{Block: int(block.Index), Status: AckNone}
			}
			return StateAborted, err
		}

		switch ack {
		case AckComplete:
			pkgLog.Infof("firmware update successful")
			return StateSuccess, nil
		case AckBlock:
		default:
			return StateAborted, &ProtocolError{Block: int(block.Index), Status: ack}
		}

		if p.config.ProgressCallback != nil {
			p.config.ProgressCallback(Progress{Block: int(block.Index) + 1, Total: total})
		}
	}
	return StateSuccess, nil
}

// waitAck polls the device until it reports a non-zero acknowledgement.
func (p *Programmer) waitAck() (byte, error) {
	var ack byte
	err := p.config.AckPolicy.Do(func(attempt int) (bool, error) {
		a, err := p.dev.Poll(p.config.PollTimeout)
		if err != nil {
			if errors.Cause(err) == ErrTimeout {
				return false, nil
			}
			return false, &IoError{Op: "poll", Err: err}
		}
		ack = a
		return ack != AckNone, nil
	})
	return ack, err
}
