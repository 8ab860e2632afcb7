//go:build !linux && !rp2040 && !rp2350

package hostio

import (
	"github.com/rs/zerolog"

	"breather-go/errcode"
)

// GPIOInput is unavailable off Linux.
type GPIOInput struct{}

func OpenGPIOInput(n int, activeLow bool, log zerolog.Logger) (*GPIOInput, error) {
	return nil, errcode.New(errcode.Unsupported, "gpio", "sysfs GPIO needs linux")
}

func (*GPIOInput) Read() bool { return false }
func (*GPIOInput) Err() error { return nil }
