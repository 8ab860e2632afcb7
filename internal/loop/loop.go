// Package loop is the control loop: sample, debounce, report, take one
// command byte, write both PWM channels, advance the ramp, wait one tick.
//
// All state lives in a Controller and is touched only from the goroutine
// calling Step or Run.
package loop

import (
	"context"

	"breather-go/errcode"
	"breather-go/internal/config"
	"breather-go/internal/debounce"
	"breather-go/internal/halcore"
	"breather-go/internal/output"
	"breather-go/internal/protocol"
	"breather-go/internal/ramp"
	"breather-go/types"
)

// Deps are the hardware collaborators.
type Deps struct {
	Inputs  [protocol.Inputs]halcore.DigitalInputReader
	Outputs [2]halcore.PwmOutput
	Serial  halcore.ByteChannel

	// Observer is optional.
	Observer Observer
}

// Observer is told about the few things worth logging. Calls happen inside
// Step and must not block.
type Observer interface {
	Edge(input int, e types.Edge)
	ModeChanged(from, to types.Mode)
	WriteFailed(input int, err error)
}

// Stats are running counters.
type Stats struct {
	Ticks        uint64
	Reports      uint64
	WriteErrors  uint64
	Commands     uint64
	IgnoredBytes uint64
}

// State is a copy of the loop state after the last Step.
type State struct {
	Mode      types.Mode
	Ramp      uint8
	Direction types.Direction
	Duties    output.Duties
	Asserted  [protocol.Inputs]bool
	Stats     Stats
}

// Controller owns every piece of loop state.
type Controller struct {
	profile config.Profile
	deps    Deps

	deb    [protocol.Inputs]*debounce.Debouncer
	parser *protocol.Parser
	ramp   *ramp.Ramp

	duties output.Duties
	stats  Stats
}

// New validates the profile and collaborators and builds the initial state.
func New(p config.Profile, d Deps) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, in := range d.Inputs {
		if in == nil {
			return nil, errcode.New(errcode.HALNotReady, "loop", "input "+string(rune('1'+i))+" missing")
		}
	}
	for i, out := range d.Outputs {
		if out == nil {
			return nil, errcode.New(errcode.HALNotReady, "loop", "output "+string(rune('1'+i))+" missing")
		}
	}
	if d.Serial == nil {
		return nil, errcode.New(errcode.HALNotReady, "loop", "serial missing")
	}

	var (
		r   *ramp.Ramp
		err error
	)
	switch p.Variant {
	case types.VariantWindow:
		r, err = ramp.Window(p.Ceiling, p.Depth, p.Step)
	default:
		r, err = ramp.Full(p.Step)
	}
	if err != nil {
		return nil, err
	}

	c := &Controller{
		profile: p,
		deps:    d,
		parser:  protocol.NewParser(p.Vocab, p.InitialMode),
		ramp:    r,
	}
	for i := range c.deb {
		c.deb[i] = debounce.New(p.InitialAsserted)
	}
	return c, nil
}

// Step runs one iteration without waiting.
func (c *Controller) Step() {
	// Sample both inputs before acting on either.
	var edges [protocol.Inputs]types.Edge
	for i, in := range c.deps.Inputs {
		edges[i] = c.deb[i].Update(in.Read())
	}

	for i, e := range edges {
		if e == types.EdgeNone {
			continue
		}
		if c.deps.Observer != nil {
			c.deps.Observer.Edge(i, e)
		}
		if e == types.EdgeFalling {
			c.report(i)
		}
	}

	c.poll()

	c.duties = output.Map(c.profile.Variant, c.parser.Mode(), c.ramp.Value())
	c.deps.Outputs[0].SetDuty(c.duties.Ch1)
	c.deps.Outputs[1].SetDuty(c.duties.Ch2)

	c.ramp.Advance()
	c.stats.Ticks++
}

func (c *Controller) report(i int) {
	if _, err := c.deps.Serial.Write(c.profile.Vocab.Report(i)); err != nil {
		c.stats.WriteErrors++
		if c.deps.Observer != nil {
			c.deps.Observer.WriteFailed(i, err)
		}
		return
	}
	c.stats.Reports++
}

// poll consumes at most one inbound byte.
func (c *Controller) poll() {
	if c.deps.Serial.Buffered() == 0 {
		return
	}
	b, err := c.deps.Serial.ReadByte()
	if err != nil {
		return
	}
	if _, ok := c.profile.Vocab.Decode(b); !ok {
		c.stats.IgnoredBytes++
		return
	}
	c.stats.Commands++
	from := c.parser.Mode()
	if to, changed := c.parser.Feed(b); changed && c.deps.Observer != nil {
		c.deps.Observer.ModeChanged(from, to)
	}
}

// Run steps once per tick until tick reports cancellation or ctx is done.
// On firmware the tick never cancels and Run does not return.
func (c *Controller) Run(ctx context.Context, tick halcore.Tick) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Step()
		if !tick(c.profile.Period) {
			return ctx.Err()
		}
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	s := State{
		Mode:      c.parser.Mode(),
		Ramp:      c.ramp.Value(),
		Direction: c.ramp.Direction(),
		Duties:    c.duties,
		Stats:     c.stats,
	}
	for i, d := range c.deb {
		s.Asserted[i] = d.Asserted()
	}
	return s
}
