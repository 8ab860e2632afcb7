package boards

import "breather-go/errcode"

// Board describes the wiring of the two buttons, the two LEDs and the serial
// link. Numbers are plain GPIO numbers; mapping to machine.Pin happens in
// the platform.
type Board struct {
	Name             string
	GPIOMin, GPIOMax int

	Buttons [2]int // active-low, internal pull-up
	LEDs    [2]int // PWM-capable

	UARTTX, UARTRX int

	// StatusPixel is a WS2812 data pin mirroring both duties; -1 when absent.
	StatusPixel int
}

// PicoDefault: LEDs on GP14/GP15 (PWM slice 7 A/B), buttons on GP2/GP3,
// UART0 on GP0/GP1.
var PicoDefault = Board{
	Name:        "pico_default",
	GPIOMin:     0,
	GPIOMax:     28,
	Buttons:     [2]int{2, 3},
	LEDs:        [2]int{14, 15},
	UARTTX:      0,
	UARTRX:      1,
	StatusPixel: -1,
}

// PicoStatus is PicoDefault plus a WS2812 on GP16.
var PicoStatus = func() Board {
	b := PicoDefault
	b.Name = "pico_status"
	b.StatusPixel = 16
	return b
}()

// Validate checks every pin is on the board and used once.
func (b Board) Validate() error {
	pins := []int{b.Buttons[0], b.Buttons[1], b.LEDs[0], b.LEDs[1], b.UARTTX, b.UARTRX}
	if b.StatusPixel >= 0 {
		pins = append(pins, b.StatusPixel)
	}
	seen := make(map[int]bool, len(pins))
	for _, p := range pins {
		if p < b.GPIOMin || p > b.GPIOMax {
			return errcode.New(errcode.UnknownPin, "board "+b.Name, "pin out of range")
		}
		if seen[p] {
			return errcode.New(errcode.PinInUse, "board "+b.Name, "pin assigned twice")
		}
		seen[p] = true
	}
	return nil
}
