package types

// Edge is a transition of a debounced stable level.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	default:
		return "none"
	}
}

// Direction of the brightness ramp.
type Direction uint8

const (
	Decreasing Direction = iota
	Increasing
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Increasing {
		return Decreasing
	}
	return Increasing
}

func (d Direction) String() string {
	if d == Increasing {
		return "up"
	}
	return "down"
}

// Mode selects the output mapping. Only inbound serial commands change it.
type Mode uint8

const (
	ModeStartOnly Mode = iota
	ModeOff
	ModeOn
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeOn:
		return "on"
	default:
		return "start_only"
	}
}

// Variant picks one of the two firmware designs for the same hardware.
type Variant uint8

const (
	// VariantBreathe: full 8-bit ramp, output depends on Mode.
	VariantBreathe Variant = iota
	// VariantWindow: ramp clamped to a window below the ceiling, both
	// channels follow the ramp directly.
	VariantWindow
)

func (v Variant) String() string {
	if v == VariantWindow {
		return "window"
	}
	return "breathe"
}

// ParseVariant maps "breathe"/"window" to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "breathe", "1":
		return VariantBreathe, true
	case "window", "2":
		return VariantWindow, true
	}
	return VariantBreathe, false
}
