// Package ramp implements the brightness oscillator: an 8-bit value that
// walks between two bounds by a fixed step and turns around at each bound.
package ramp

import (
	"breather-go/errcode"
	"breather-go/types"
	"breather-go/x/mathx"
)

// Ramp is a bounded saturating oscillator. The value never leaves [Lo, Hi]
// after the first Advance, and the direction only changes at a bound.
type Ramp struct {
	lo, hi uint8
	step   uint8
	value  uint8
	dir    types.Direction
}

// New returns a ramp over [lo, hi] starting at start, moving in dir.
// A start outside the bounds is accepted and pulled in on the first Advance.
func New(lo, hi, step, start uint8, dir types.Direction) (*Ramp, error) {
	if step == 0 {
		return nil, errcode.New(errcode.InvalidParams, "ramp", "step must be positive")
	}
	if lo >= hi {
		return nil, errcode.New(errcode.InvalidParams, "ramp", "empty range")
	}
	return &Ramp{lo: lo, hi: hi, step: step, value: start, dir: dir}, nil
}

// Full returns the full-range ramp [0, 255] starting at 0, decreasing.
// The first Advance turns it around at the bottom.
func Full(step uint8) (*Ramp, error) {
	return New(0, 255, step, 0, types.Decreasing)
}

// Window returns the ramp [ceiling-depth, ceiling] starting at the ceiling,
// decreasing.
func Window(ceiling, depth, step uint8) (*Ramp, error) {
	if depth > ceiling {
		return nil, errcode.New(errcode.InvalidParams, "ramp", "depth exceeds ceiling")
	}
	return New(ceiling-depth, ceiling, step, ceiling, types.Decreasing)
}

// Advance moves the ramp by one step and returns the new value.
//
// Bounds are checked before the arithmetic. When the next step would pass
// the bound in the direction of travel, the value is pinned to that bound
// and the direction flips in the same call. A value outside the bounds is
// clamped and sent back inwards.
func (r *Ramp) Advance() uint8 {
	if !mathx.Between(r.value, r.lo, r.hi) {
		r.value = mathx.Clamp(r.value, r.lo, r.hi)
		if r.value == r.hi {
			r.dir = types.Decreasing
		} else {
			r.dir = types.Increasing
		}
		return r.value
	}

	v, step := int(r.value), int(r.step)
	if r.dir == types.Increasing {
		if v > int(r.hi)-step {
			r.value, r.dir = r.hi, r.dir.Flip()
		} else {
			r.value += r.step
		}
	} else {
		if v < int(r.lo)+step {
			r.value, r.dir = r.lo, r.dir.Flip()
		} else {
			r.value -= r.step
		}
	}
	return r.value
}

// Value returns the current position.
func (r *Ramp) Value() uint8 { return r.value }

// Direction returns the current direction of travel.
func (r *Ramp) Direction() types.Direction { return r.dir }

// Bounds returns the inclusive range.
func (r *Ramp) Bounds() (lo, hi uint8) { return r.lo, r.hi }

// Period returns the number of Advance calls after which a ramp that sits
// on a bound is back at the same value and direction. With step 1 this holds
// from every in-range state.
func (r *Ramp) Period() int {
	return 2 * ((int(r.hi)-int(r.lo))/int(r.step) + 1)
}
