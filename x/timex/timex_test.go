package timex

import (
	"context"
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	if got := PeriodFromHz(1000); got != 1_000_000 {
		t.Fatalf("PeriodFromHz(1000)=%d", got)
	}
	if got := PeriodFromHz(0); got != 1_000_000_000 {
		t.Fatalf("PeriodFromHz(0)=%d", got)
	}
}

func TestCounted_StopsAfterN(t *testing.T) {
	tick := Counted(3)
	var n int
	for tick(time.Hour) {
		n++
	}
	// Three ticks: two continue, the third reports stop.
	if n != 2 {
		t.Fatalf("continued %d times, want 2", n)
	}
	if tick(0) {
		t.Fatalf("exhausted tick must keep reporting stop")
	}
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tick := SleepContext(ctx)
	if !tick(time.Millisecond) {
		t.Fatalf("live context should continue")
	}
	cancel()
	start := time.Now()
	if tick(time.Hour) {
		t.Fatalf("cancelled context should stop")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancelled tick blocked")
	}
}
