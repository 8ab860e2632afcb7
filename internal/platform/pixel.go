package platform

import (
	"image/color"

	"breather-go/internal/halcore"
)

// pixelWriter is the part of a WS2812 strip the mirror uses.
type pixelWriter interface {
	WriteColors(buf []color.RGBA) error
}

// pixelMirror passes duties through and shows them on a status pixel.
// The pixel is abandoned after its first failed write; the LED keeps going.
type pixelMirror struct {
	out halcore.PwmOutput
	dev pixelWriter

	buf     [1]color.RGBA
	written bool
	failed  bool
}

func (m *pixelMirror) SetDuty(d uint8) {
	m.out.SetDuty(d)
	if m.failed || (m.written && m.buf[0].G == d) {
		return
	}
	m.buf[0] = color.RGBA{G: d, B: d / 2, A: 255}
	if err := m.dev.WriteColors(m.buf[:]); err != nil {
		m.failed = true
		return
	}
	m.written = true
}
