// Package debounce turns a noisy sampled input into a stable level and
// edge notifications.
//
// The filter is a 16-sample shift register. A new stable level is accepted
// only once all 16 most recent samples agree on it, so the debounce time is
// 16 x the polling period (160 ms at the 10 ms loop period). Changing the
// polling period changes the debounce time.
package debounce

import (
	"time"

	"breather-go/types"
)

// HistoryDepth is the number of consecutive identical samples needed to
// confirm a level change.
const HistoryDepth = 16

const allAsserted = ^uint16(0)

// Debouncer is the per-input filter state. Instances share nothing.
type Debouncer struct {
	history uint16
	stable  bool
}

// New returns a Debouncer whose stable level and history start at
// initialAsserted.
func New(initialAsserted bool) *Debouncer {
	d := &Debouncer{stable: initialAsserted}
	if initialAsserted {
		d.history = allAsserted
	}
	return d
}

// Update shifts in one sample and returns the edge confirmed by it, if any.
// At most one edge is returned per change of the stable level.
func (d *Debouncer) Update(asserted bool) types.Edge {
	d.history <<= 1
	if asserted {
		d.history |= 1
	}
	switch {
	case d.history == allAsserted && !d.stable:
		d.stable = true
		return types.EdgeRising
	case d.history == 0 && d.stable:
		d.stable = false
		return types.EdgeFalling
	}
	return types.EdgeNone
}

// Asserted returns the current stable level.
func (d *Debouncer) Asserted() bool { return d.stable }

// Window returns the debounce time for a given polling period.
func Window(period time.Duration) time.Duration {
	return HistoryDepth * period
}
