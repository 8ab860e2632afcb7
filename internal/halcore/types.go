// Package halcore holds the small capability interfaces the control loop
// needs from the hardware. Platform code implements them; the loop never
// touches registers directly.
package halcore

import "time"

// DigitalInputReader samples one input. Read reports true when the input is
// asserted; pull-up inversion is handled by the implementation.
type DigitalInputReader interface {
	Read() bool
}

// PwmOutput is one 8-bit duty-cycle channel.
type PwmOutput interface {
	SetDuty(duty uint8)
}

// ByteChannel is the serial link.
type ByteChannel interface {
	// Buffered returns the number of inbound bytes ready to read.
	Buffered() int
	// ReadByte returns the next inbound byte. It never blocks; callers
	// check Buffered first.
	ReadByte() (byte, error)
	// Write sends p without waiting for an acknowledgement.
	Write(p []byte) (int, error)
}

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Pull selects the input bias at bring-up.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is the bring-up view of a pin used as a button input.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	Get() bool
	Number() int
}

// ActiveLow adapts a pulled-up pin (pressed == electrically low) to a
// DigitalInputReader.
type ActiveLow struct{ Pin GPIOPin }

func (a ActiveLow) Read() bool { return !a.Pin.Get() }
