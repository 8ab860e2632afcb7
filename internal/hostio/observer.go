// Package hostio holds the host-side collaborators of the simulator: a
// real serial port, sysfs GPIO buttons, a terminal panel and zerolog sinks.
package hostio

import (
	"github.com/rs/zerolog"

	"breather-go/internal/halcore"
	"breather-go/types"
)

// LogObserver logs loop events.
type LogObserver struct {
	Log zerolog.Logger
}

func (o LogObserver) Edge(input int, e types.Edge) {
	o.Log.Debug().Int("input", input+1).Str("edge", e.String()).Msg("debounced edge")
}

func (o LogObserver) ModeChanged(from, to types.Mode) {
	o.Log.Info().Str("from", from.String()).Str("to", to.String()).Msg("mode changed")
}

func (o LogObserver) WriteFailed(input int, err error) {
	o.Log.Warn().Err(err).Int("input", input+1).Msg("report write failed")
}

// LogPWM forwards duties to Next and logs every change at debug level.
type LogPWM struct {
	Name string
	Next halcore.PwmOutput
	Log  zerolog.Logger

	last    uint8
	written bool
}

func (l *LogPWM) SetDuty(d uint8) {
	if l.Next != nil {
		l.Next.SetDuty(d)
	}
	if l.written && d == l.last {
		return
	}
	l.last, l.written = d, true
	l.Log.Debug().Str("channel", l.Name).Uint8("duty", d).Msg("pwm")
}
