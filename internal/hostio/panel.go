//go:build !rp2040 && !rp2350

package hostio

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"breather-go/internal/config"
	"breather-go/internal/loop"
	"breather-go/internal/platform"
	"breather-go/x/mathx"
)

// ErrQuit is returned by HandleEvents when the user asks to leave.
var ErrQuit = errors.New("panel: quit")

const (
	barWidth   = 32
	reportRows = 8
)

// Panel is a terminal front panel for the host fakes: keys 1 and 2 toggle
// the buttons, other printable keys are sent down the serial line, and the
// LED duties, mode and reports are drawn every frame.
type Panel struct {
	screen  tcell.Screen
	parts   *platform.HostParts
	profile config.Profile

	closeOnce sync.Once

	mu      sync.Mutex
	held    [2]bool
	state   loop.State
	reports []string
}

// NewPanel initialises screen and hooks the serial fake's write side.
func NewPanel(screen tcell.Screen, parts *platform.HostParts, p config.Profile) (*Panel, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	pn := &Panel{screen: screen, parts: parts, profile: p}
	parts.Serial.OnWrite(pn.recordReport)
	return pn, nil
}

// Close restores the terminal. It is safe to call more than once.
func (pn *Panel) Close() { pn.closeOnce.Do(pn.screen.Fini) }

// Publish stores the loop state shown by the next Render. Call it from the
// loop goroutine.
func (pn *Panel) Publish(s loop.State) {
	pn.mu.Lock()
	pn.state = s
	pn.mu.Unlock()
}

func (pn *Panel) recordReport(frame []byte) {
	pn.mu.Lock()
	pn.reports = append(pn.reports, strconv.Quote(string(frame)))
	if len(pn.reports) > reportRows {
		pn.reports = pn.reports[len(pn.reports)-reportRows:]
	}
	pn.mu.Unlock()
}

// HandleEvents processes keys until quit or until the screen is finalised.
func (pn *Panel) HandleEvents(ctx context.Context) error {
	for {
		ev := pn.screen.PollEvent()
		if ev == nil {
			return ctx.Err()
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if pn.handleKey(ev) {
				return ErrQuit
			}
		case *tcell.EventResize:
			pn.screen.Sync()
		}
	}
}

// handleKey reports whether the key asks to quit.
func (pn *Panel) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	r := ev.Rune()
	switch {
	case r == 'q':
		return true
	case r == '1' || r == '2':
		i := int(r - '1')
		pn.mu.Lock()
		pn.held[i] = !pn.held[i]
		held := pn.held[i]
		pn.mu.Unlock()
		pn.parts.Buttons[i].Press(held)
	case r < 0x80:
		pn.parts.Serial.Inject(byte(r))
	}
	return false
}

// RenderLoop draws a frame every period until ctx is done.
func (pn *Panel) RenderLoop(ctx context.Context, period time.Duration) error {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		pn.Render()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// Render draws one frame.
func (pn *Panel) Render() {
	pn.mu.Lock()
	s := pn.state
	held := pn.held
	reports := append([]string(nil), pn.reports...)
	pn.mu.Unlock()

	pn.screen.Clear()
	row := 0
	line := func(format string, args ...any) {
		pn.drawText(0, row, fmt.Sprintf(format, args...))
		row++
	}

	line("breather  variant=%s  vocab=%s", pn.profile.Variant, pn.profile.Vocab.Name)
	line("mode=%s  ramp=%d (%s)", s.Mode, s.Ramp, s.Direction)
	line("ch1 %s %3d", bar(s.Duties.Ch1), s.Duties.Ch1)
	line("ch2 %s %3d", bar(s.Duties.Ch2), s.Duties.Ch2)
	line("btn1 %-8s btn2 %-8s", buttonLabel(held[0], s.Asserted[0]), buttonLabel(held[1], s.Asserted[1]))
	line("ticks=%d reports=%d commands=%d ignored=%d write_errors=%d",
		s.Stats.Ticks, s.Stats.Reports, s.Stats.Commands, s.Stats.IgnoredBytes, s.Stats.WriteErrors)
	row++
	line("keys: 1/2 toggle button, s/n/b send, q quit")
	row++
	line("reports:")
	for _, r := range reports {
		line("  %s", r)
	}
	pn.screen.Show()
}

func (pn *Panel) drawText(x, y int, s string) {
	for _, r := range s {
		pn.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

func bar(d uint8) string {
	n := mathx.Min(int(d)*barWidth/255, barWidth)
	return "[" + strings.Repeat("#", n) + strings.Repeat(" ", barWidth-n) + "]"
}

func buttonLabel(held, asserted bool) string {
	switch {
	case held && asserted:
		return "pressed"
	case held:
		return "pressing"
	case asserted:
		return "releasing"
	default:
		return "released"
	}
}
