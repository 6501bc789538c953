package hmcfgusb

import (
	"time"

	"github.com/pkg/errors"
)

// ErrRetriesExhausted is returned by RetryPolicy.Do when MaxAttempts was reached.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryPolicy controls how often an operation is repeated.
type RetryPolicy struct {
	// MaxAttempts limits the number of attempts. Zero means unbounded.
	MaxAttempts int
	// Interval is slept before every attempt.
	Interval time.Duration
	// Sleep replaces time.Sleep, mainly for tests.
	Sleep func(time.Duration)
}

// Unbounded returns a policy that retries forever, waiting interval before each attempt.
func Unbounded(interval time.Duration) RetryPolicy {
	return RetryPolicy{Interval: interval}
}

// Do calls fn until it reports done or returns an error. attempt starts at 1.
func (p RetryPolicy) Do(fn func(attempt int) (done bool, err error)) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for attempt := 1; p.MaxAttempts <= 0 || attempt <= p.MaxAttempts; attempt++ {
		if p.Interval > 0 {
			sleep(p.Interval)
		}
		done, err := fn(attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return errors.Wrapf(ErrRetriesExhausted, "gave up after %d attempts", p.MaxAttempts)
}
