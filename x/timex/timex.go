package timex

import (
	"context"
	"time"
)

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// Sleep blocks for d and always continues. Suitable for firmware loops
// that run until reset.
func Sleep(d time.Duration) bool {
	time.Sleep(d)
	return true
}

// SleepContext returns a tick that blocks for d or until ctx is done,
// reporting false once ctx is cancelled.
func SleepContext(ctx context.Context) func(time.Duration) bool {
	return func(d time.Duration) bool {
		if ctx.Err() != nil {
			return false
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			return true
		}
	}
}

// Counted returns a tick that never blocks and stops on its n-th call, so a
// step-then-tick loop runs exactly n iterations. Used on the host.
func Counted(n int) func(time.Duration) bool {
	return func(time.Duration) bool {
		if n <= 0 {
			return false
		}
		n--
		return n > 0
	}
}
