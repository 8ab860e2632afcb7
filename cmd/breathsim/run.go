//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"breather-go/errcode"
	"breather-go/internal/config"
	"breather-go/internal/debounce"
	"breather-go/internal/halcore"
	"breather-go/internal/hostio"
	"breather-go/internal/loop"
	"breather-go/internal/platform"
	"breather-go/internal/platform/boards"
	"breather-go/internal/protocol"
	"breather-go/types"
	"breather-go/x/timex"
)

const frameTime = time.Second / 30

type options struct {
	variant   string
	vocab     string
	period    time.Duration
	backend   string
	serialDev string
	baud      int
	gpioIn    [2]int
	ticks     int
}

// errDone ends the group once a bounded run has finished.
var errDone = errors.New("tick budget spent")

func buildProfile(o options) (config.Profile, error) {
	v, ok := types.ParseVariant(o.variant)
	if !ok {
		return config.Profile{}, errcode.New(errcode.InvalidParams, "variant", "unknown variant "+o.variant)
	}
	p, _ := config.ProfileLookup(v.String())
	if o.vocab != "" {
		vocab, ok := protocol.ByName(o.vocab)
		if !ok {
			return config.Profile{}, errcode.New(errcode.InvalidParams, "vocab", "unknown vocabulary "+o.vocab)
		}
		p.Vocab = vocab
	}
	if o.period > 0 {
		p.Period = o.period
	}
	return p, p.Validate()
}

func run(ctx context.Context, o options, log zerolog.Logger) error {
	p, err := buildProfile(o)
	if err != nil {
		return err
	}
	log = log.With().Str("profile", p.Name).Str("vocab", p.Vocab.Name).Logger()
	log.Info().
		Dur("period", p.Period).
		Dur("debounce", debounce.Window(p.Period)).
		Str("variant", p.Variant.String()).
		Msg("profile")
	if c := p.Vocab.Collisions(); len(c) > 0 {
		log.Warn().Str("letters", string(c)).Msg("report letters are also command letters")
	}

	hw, parts, err := platform.Setup(ctx, boards.Selected)
	if err != nil {
		return errors.Wrap(err, "platform setup")
	}

	g, ctx := errgroup.WithContext(ctx)
	var publish func(loop.State)
	var faults []faulter

	switch o.backend {
	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "terminal")
		}
		pn, err := hostio.NewPanel(screen, parts, p)
		if err != nil {
			return err
		}
		defer pn.Close()
		publish = pn.Publish
		g.Go(func() error { return pn.HandleEvents(ctx) })
		g.Go(func() error { return pn.RenderLoop(ctx, frameTime) })
		g.Go(func() error {
			<-ctx.Done()
			pn.Close()
			return nil
		})
	case "gpio":
		for i, n := range o.gpioIn {
			if n < 0 {
				return errcode.New(errcode.UnknownPin, "gpio", "--gpio-in1 and --gpio-in2 are required")
			}
			in, err := hostio.OpenGPIOInput(n, true, log)
			if err != nil {
				return err
			}
			hw.Inputs[i] = in
			faults = append(faults, in)
		}
		logOutputs(hw, log)
	case "headless":
		logOutputs(hw, log)
	default:
		return errcode.New(errcode.Unsupported, "backend", "unknown backend "+o.backend)
	}

	if o.serialDev != "" {
		if o.backend == "term" {
			log.Warn().Msg("--serial ignored by the term backend")
		} else {
			link, err := hostio.OpenSerial(ctx, o.serialDev, o.baud, log)
			if err != nil {
				return err
			}
			defer link.Close()
			hw.Serial = link
		}
	}

	c, err := loop.New(p, hw.Deps(hostio.LogObserver{Log: log}))
	if err != nil {
		return err
	}

	sleep := timex.SleepContext(ctx)
	tick := sleep
	if o.ticks > 0 {
		count := timex.Counted(o.ticks)
		tick = func(d time.Duration) bool { return sleep(d) && count(d) }
	}

	var fault error
	tick = guardTick(tick, faults, &fault)

	g.Go(func() error {
		err := c.Run(ctx, func(d time.Duration) bool {
			if publish != nil {
				publish(c.Snapshot())
			}
			return tick(d)
		})
		s := c.Snapshot()
		log.Info().
			Uint64("ticks", s.Stats.Ticks).
			Uint64("reports", s.Stats.Reports).
			Uint64("write_errors", s.Stats.WriteErrors).
			Uint64("commands", s.Stats.Commands).
			Str("mode", s.Mode.String()).
			Msg("loop stopped")
		if fault != nil {
			return fault
		}
		if err == nil {
			return errDone
		}
		return err
	})

	err = g.Wait()
	if errors.Is(err, errDone) || errors.Is(err, hostio.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// faulter is a collaborator that can fail after bring-up.
type faulter interface {
	Err() error
}

// guardTick stops the loop before the next wait once any collaborator has
// failed, storing the failure in fault.
func guardTick(tick halcore.Tick, faults []faulter, fault *error) halcore.Tick {
	if len(faults) == 0 {
		return tick
	}
	return func(d time.Duration) bool {
		for _, f := range faults {
			if err := f.Err(); err != nil {
				*fault = err
				return false
			}
		}
		return tick(d)
	}
}

func logOutputs(hw *platform.Hardware, log zerolog.Logger) {
	for i, name := range []string{"ch1", "ch2"} {
		hw.Outputs[i] = &hostio.LogPWM{Name: name, Next: hw.Outputs[i], Log: log}
	}
}
