// Package output maps the current mode and ramp position to the two PWM
// duty cycles. The mapping is pure and total.
package output

import "breather-go/types"

// Floor is the dim level both LEDs sit at when off or on.
const Floor = 4

// Duties holds one duty value per channel.
type Duties struct {
	Ch1, Ch2 uint8
}

// Map returns the duties for variant v, mode m and ramp position r.
//
//	StartOnly: ch1 = 0,            ch2 = 125 + r/2
//	On:        ch1 = ch2 = 4 + r/10
//	Off:       ch1 = ch2 = 4
//
// The window variant ignores the mode and drives both channels with r.
func Map(v types.Variant, m types.Mode, r uint8) Duties {
	if v == types.VariantWindow {
		return Duties{Ch1: r, Ch2: r}
	}
	switch m {
	case types.ModeOn:
		d := Floor + r/10
		return Duties{Ch1: d, Ch2: d}
	case types.ModeOff:
		return Duties{Ch1: Floor, Ch2: Floor}
	default:
		return Duties{Ch1: 0, Ch2: 125 + r/2}
	}
}
