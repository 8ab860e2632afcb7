//go:build linux && !rp2040 && !rp2350

package hostio

import (
	"sync"

	"github.com/ecc1/gpio"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GPIOInput reads a sysfs GPIO line as a button. The line is opened with
// the given polarity so Read reports "asserted" directly.
//
// A failed read repeats the last good level, so a dead line never turns
// into a debounced edge. The first failure is kept for Err and the runner
// stops on it.
type GPIOInput struct {
	pin    gpio.InputPin
	number int
	log    zerolog.Logger

	mu   sync.Mutex
	last bool
	err  error
}

// OpenGPIOInput opens pin number n.
func OpenGPIOInput(n int, activeLow bool, log zerolog.Logger) (*GPIOInput, error) {
	pin, err := gpio.Input(n, activeLow)
	if err != nil {
		return nil, errors.Wrapf(err, "gpio input %d", n)
	}
	return newGPIOInput(pin, n, log), nil
}

func newGPIOInput(pin gpio.InputPin, n int, log zerolog.Logger) *GPIOInput {
	return &GPIOInput{pin: pin, number: n, log: log}
}

func (g *GPIOInput) Read() bool {
	v, err := g.pin.Read()

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		if g.err == nil {
			g.err = errors.Wrapf(err, "gpio read %d", g.number)
			g.log.Error().Err(err).Int("pin", g.number).Msg("gpio read failed")
		}
		return g.last
	}
	g.last = v
	return v
}

// Err returns the first read failure, if any.
func (g *GPIOInput) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}
