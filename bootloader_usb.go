package hmcfgusb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
	"github.com/pkg/errors"
)

const (
	usbVendor            gousb.ID = 0x1b1f
	usbProduct           gousb.ID = 0xc00f
	usbProductBootloader gousb.ID = 0xc010

	usbOutEp = 2
	usbInEp  = 3

	// Size of the command frames and of one interrupt transfer.
	asyncSize = 64
)

type usbBootloader struct {
	ctx      *gousb.Context
	dev      *gousb.Device
	intf     *gousb.Interface
	intfDone func()
	epOut    *gousb.OutEndpoint
	epIn     *gousb.InEndpoint
	bootMode bool
}

// USBConnector opens the first HM-CFG-USB found on the bus.
type USBConnector struct{}

// Open implements Connector.
func (USBConnector) Open() (Bootloader, error) {
	return OpenUSB()
}

// OpenUSB opens an HM-CFG-USB, either in application or in bootloader mode.
func OpenUSB() (Bootloader, error) {
	b := &usbBootloader{ctx: gousb.NewContext()}

	devs, err := b.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == usbVendor &&
			(desc.Product == usbProduct || desc.Product == usbProductBootloader)
	})
	b.dev, err = firstDevice(devs, err)
	if err != nil {
		b.Close()
		return nil, err
	}
	b.bootMode = b.dev.Desc.Product == usbProductBootloader

	if err := b.dev.SetAutoDetach(true); err != nil {
		b.Close()
		return nil, errors.Wrap(err, "detach kernel driver")
	}
	b.intf, b.intfDone, err = b.dev.DefaultInterface()
	if err != nil {
		b.Close()
		return nil, errors.Wrap(err, "claim interface")
	}
	b.epOut, err = b.intf.OutEndpoint(usbOutEp)
	if err != nil {
		b.Close()
		return nil, errors.Wrap(err, "open output endpoint")
	}
	b.epIn, err = b.intf.InEndpoint(usbInEp)
	if err != nil {
		b.Close()
		return nil, errors.Wrap(err, "open input endpoint")
	}

	pkgLog.Debugf("opened HM-CFG-USB at bus %d address %d, bootloader: %v", b.dev.Desc.Bus, b.dev.Desc.Address, b.bootMode)
	return b, nil
}

// firstDevice picks the device to use from the result of OpenDevices and
// closes the others. An error is only returned if no device was opened.
func firstDevice(devs []*gousb.Device, err error) (*gousb.Device, error) {
	if len(devs) == 0 {
		if err != nil {
			return nil, errors.Wrap(err, "open usb devices")
		}
		return nil, errors.New("HM-CFG-USB not found")
	}
	if err != nil {
		pkgLog.Debugf("ignoring error while opening usb devices: %v", err)
	}
	for _, d := range devs[1:] {
		d.Close()
	}
	return devs[0], nil
}

func (b *usbBootloader) Send(data []byte, done bool) error {
	n, err := b.epOut.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("short write (%d < %d)", n, len(data))
	}
	// A transfer that fills its last packet needs a zero length packet to end it.
	if done && len(data)%asyncSize == 0 {
		if _, err := b.epOut.Write(nil); err != nil {
			return errors.Wrap(err, "zero length packet")
		}
	}
	return nil
}

func (b *usbBootloader) Poll(timeout time.Duration) (byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	buf := make([]byte, b.epIn.Desc.MaxPacketSize)
	n, err := b.epIn.ReadContext(ctx, buf)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return 0, ErrTimeout
		}
		return 0, err
	}
	// Acknowledgements are single byte reports, anything else is ignored.
	if n != 1 {
		return AckNone, nil
	}
	return buf[0], nil
}

func (b *usbBootloader) EnterBootloader() error {
	if b.bootMode {
		return errors.New("device already in bootloader mode")
	}
	out := make([]byte, asyncSize)
	out[0] = 'B'
	return b.Send(out, true)
}

func (b *usbBootloader) InBootloader() bool {
	return b.bootMode
}

func (b *usbBootloader) Close() error {
	if b.intfDone != nil {
		b.intfDone()
		b.intfDone = nil
	}
	if b.dev != nil {
		b.dev.Close()
		b.dev = nil
	}
	if b.ctx != nil {
		b.ctx.Close()
		b.ctx = nil
	}
	return nil
}
