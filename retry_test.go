package hmcfgusb_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/volschin/hmcfgusb"
)

func TestRetryPolicyBounded(t *testing.T) {
	var slept []time.Duration
	p := hmcfgusb.RetryPolicy{
		MaxAttempts: 3,
		Interval:    2 * time.Second,
		Sleep:       func(d time.Duration) { slept = append(slept, d) },
	}
	calls := 0
	err := p.Do(func(attempt int) (bool, error) {
		calls++
		if attempt != calls {
			t.Errorf("attempt = %d, want %d", attempt, calls)
		}
		return false, nil
	})
	if errors.Cause(err) != hmcfgusb.ErrRetriesExhausted {
		t.Errorf("Do() error = %v, want ErrRetriesExhausted", err)
	}
	if calls != 3 || len(slept) != 3 {
		t.Errorf("calls = %d, sleeps = %d, want 3 each", calls, len(slept))
	}
	for _, d := range slept {
		if d != 2*time.Second {
			t.Errorf("slept %v, want 2s", d)
		}
	}
}

func TestRetryPolicyStopsOnSuccessAndError(t *testing.T) {
	p := hmcfgusb.RetryPolicy{Sleep: func(time.Duration) { t.Error("unexpected sleep") }}

	calls := 0
	if err := p.Do(func(int) (bool, error) {
		calls++
		return calls == 10, nil
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}

	boom := errors.New("boom")
	if err := p.Do(func(int) (bool, error) { return false, boom }); err != boom {
		t.Errorf("Do() error = %v, want %v", err, boom)
	}
}
