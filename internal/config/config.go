// Package config holds the compile-time operating parameters and the two
// firmware profiles built from them.
package config

import (
	"time"

	"breather-go/errcode"
	"breather-go/internal/protocol"
	"breather-go/types"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	Step    = 1   // ramp step per tick
	Depth   = 125 // window variant: ramp span below the ceiling
	Ceiling = 245 // window variant: ramp top

	Period = 10 * time.Millisecond // loop period; also sets the debounce time
	Baud   = 57600

	// PWMCarrierHz matches a 16 MHz clock divided by 64 and a 256-step counter.
	PWMCarrierHz = 977
)

// -----------------------------------------------------------------------------
// Profiles
// -----------------------------------------------------------------------------

// Profile is everything the loop needs that is not hardware.
type Profile struct {
	Name    string
	Variant types.Variant
	Vocab   protocol.Vocabulary

	Step    uint8
	Depth   uint8
	Ceiling uint8
	Period  time.Duration

	InitialMode types.Mode
	// InitialAsserted seeds both debouncers. With true, buttons that are
	// released at power-up report one release after the debounce window.
	InitialAsserted bool
}

// Breathe is the mode-coupled profile: full-range ramp, three modes.
func Breathe() Profile {
	return Profile{
		Name:            "breathe",
		Variant:         types.VariantBreathe,
		Vocab:           protocol.Normalized,
		Step:            Step,
		Depth:           Depth,
		Ceiling:         Ceiling,
		Period:          Period,
		InitialMode:     types.ModeStartOnly,
		InitialAsserted: true,
	}
}

// Window is the range-clamped profile: both LEDs follow a ramp in
// [Ceiling-Depth, Ceiling].
func Window() Profile {
	p := Breathe()
	p.Name = "window"
	p.Variant = types.VariantWindow
	return p
}

// ProfileLookup resolves a profile by name. Tests may override it.
var ProfileLookup = func(name string) (Profile, bool) {
	switch name {
	case "breathe", "":
		return Breathe(), true
	case "window":
		return Window(), true
	}
	return Profile{}, false
}

// Validate checks the profile before anything is built from it.
func (p Profile) Validate() error {
	switch {
	case p.Step == 0:
		return errcode.New(errcode.InvalidParams, "config", "step must be positive")
	case p.Period <= 0:
		return errcode.New(errcode.InvalidParams, "config", "period must be positive")
	case p.Variant == types.VariantWindow && (p.Depth == 0 || p.Depth > p.Ceiling):
		return errcode.New(errcode.InvalidParams, "config", "depth must be in 1..ceiling")
	case p.Variant != types.VariantBreathe && p.Variant != types.VariantWindow:
		return errcode.New(errcode.InvalidParams, "config", "unknown variant")
	}
	return nil
}
