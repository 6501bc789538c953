package hmcfgusb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/gousb"
	"github.com/pkg/errors"
)

type recordingLogger struct {
	nullLogger
	debug []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func TestFirstDevice(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	if _, err := firstDevice(nil, nil); err == nil || err.Error() != "HM-CFG-USB not found" {
		t.Errorf("no devices: error = %v", err)
	}
	openErr := errors.New("access denied")
	if _, err := firstDevice(nil, openErr); errors.Cause(err) != openErr {
		t.Errorf("no devices with error: error = %v", err)
	}
	if len(rec.debug) != 0 {
		t.Errorf("unexpected debug output %q", rec.debug)
	}

	dev := &gousb.Device{Desc: &gousb.DeviceDesc{Product: usbProductBootloader}}
	got, err := firstDevice([]*gousb.Device{dev}, openErr)
	if err != nil || got != dev {
		t.Fatalf("firstDevice() = %v, %v, want the opened device", got, err)
	}
	if len(rec.debug) != 1 || !strings.Contains(rec.debug[0], "access denied") {
		t.Errorf("debug output = %q, want the ignored error", rec.debug)
	}
}
