//go:build rp2040 || rp2350

package platform

import (
	"context"
	"machine"

	"breather-go/errcode"
	"breather-go/internal/config"
	"breather-go/internal/halcore"
	"breather-go/internal/platform/boards"
	"breather-go/internal/uartio"
	"breather-go/x/mathx"
	"breather-go/x/timex"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"
)

// -----------------------------------------------------------------------------
// GPIO
// -----------------------------------------------------------------------------

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) Number() int { return r.n }
func (r *rp2Pin) Get() bool   { return r.p.Get() }

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

// -----------------------------------------------------------------------------
// PWM
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM maps an 8-bit duty onto one slice channel.
type rp2PWM struct {
	ctrl  pwmCtrl
	chIdx uint8 // 0 => A, 1 => B
	top   uint32
}

func (p *rp2PWM) SetDuty(d uint8) {
	p.ctrl.Set(p.chIdx, uint32(d)*p.top/255)
}

// configured tracks slices already given a period, so two LEDs on one slice
// do not reconfigure it twice.
var configured [8]bool

func newPWM(pin int) (*rp2PWM, error) {
	slice, err := machine.PWMPeripheral(machine.Pin(pin))
	if err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "pwm", err)
	}
	ctrl := pwmGroupBySlice(slice)
	if !configured[slice&7] {
		if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(config.PWMCarrierHz)}); err != nil {
			return nil, errcode.Wrap(errcode.Error, "pwm", err)
		}
		configured[slice&7] = true
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinPWM})
	p := &rp2PWM{ctrl: ctrl, chIdx: uint8(pin & 1), top: mathx.Max(ctrl.Top(), 1)}
	p.SetDuty(0)
	return p, nil
}

// -----------------------------------------------------------------------------
// Setup
// -----------------------------------------------------------------------------

// Setup configures the buttons, LEDs and UART0 of b. The serial receive
// goroutine lives until ctx is cancelled.
func Setup(ctx context.Context, b boards.Board) (*Hardware, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	hw := &Hardware{Board: b}

	for i, n := range b.Buttons {
		pin := &rp2Pin{p: machine.Pin(n), n: n}
		if err := pin.ConfigureInput(halcore.PullUp); err != nil {
			return nil, err
		}
		hw.Inputs[i] = halcore.ActiveLow{Pin: pin}
	}

	for i, n := range b.LEDs {
		p, err := newPWM(n)
		if err != nil {
			return nil, err
		}
		hw.Outputs[i] = p
	}

	if b.StatusPixel >= 0 {
		sp := machine.Pin(b.StatusPixel)
		sp.Configure(machine.PinConfig{Mode: machine.PinOutput})
		dev := ws2812.New(sp)
		hw.Outputs[0] = &pixelMirror{out: hw.Outputs[0], dev: &dev}
	}

	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: config.Baud,
		TX:       machine.Pin(b.UARTTX),
		RX:       machine.Pin(b.UARTRX),
	}); err != nil {
		return nil, errcode.Wrap(errcode.UnknownBus, "uart0", err)
	}
	hw.Serial = uartio.Start(ctx, u, u, uartio.Config{})

	return hw, nil
}
