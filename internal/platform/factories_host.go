//go:build !rp2040 && !rp2350

package platform

import (
	"context"
	"errors"
	"sync"

	"breather-go/internal/halcore"
	"breather-go/internal/platform/boards"
	"breather-go/internal/uartio"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements halcore.GPIOPin for host-side runs. Its level is the
// electrical level, so a pulled-up button reads high when released.
type FakePin struct {
	mu     sync.RWMutex
	number int
	level  bool
	pull   halcore.Pull
}

// NewFakePin returns a pin at the given electrical level.
func NewFakePin(number int, level bool) *FakePin {
	return &FakePin{number: number, level: level}
}

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.pull = pull
	if pull == halcore.PullUp {
		p.level = true
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// Press drives an active-low button: pressed pulls the pin low.
func (p *FakePin) Press(pressed bool) { p.Set(!pressed) }

// ------------------------------ PWM (host) -----------------------------------

// FakePWM records duty writes.
type FakePWM struct {
	mu     sync.Mutex
	duty   uint8
	writes int
}

func (f *FakePWM) SetDuty(d uint8) {
	f.mu.Lock()
	f.duty = d
	f.writes++
	f.mu.Unlock()
}

// Duty returns the last written duty.
func (f *FakePWM) Duty() uint8 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.duty
}

// Writes returns the number of SetDuty calls.
func (f *FakePWM) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// ----------------------------- Serial (host) ---------------------------------

// ErrWriteRefused is returned by a FakeSerial set to fail writes.
var ErrWriteRefused = errors.New("fake serial: write refused")

// FakeSerial is an in-memory serial link: tests inject inbound bytes and
// read back what the loop wrote.
type FakeSerial struct {
	mu      sync.Mutex
	rx      []byte
	tx      []byte
	failTx  bool
	onWrite func([]byte)
}

func (s *FakeSerial) Inject(b ...byte) {
	s.mu.Lock()
	s.rx = append(s.rx, b...)
	s.mu.Unlock()
}

func (s *FakeSerial) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rx)
}

func (s *FakeSerial) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rx) == 0 {
		return 0, uartio.ErrEmpty
	}
	b := s.rx[0]
	s.rx = s.rx[1:]
	return b, nil
}

func (s *FakeSerial) Write(p []byte) (int, error) {
	s.mu.Lock()
	if s.failTx {
		s.mu.Unlock()
		return 0, ErrWriteRefused
	}
	s.tx = append(s.tx, p...)
	cb := s.onWrite
	s.mu.Unlock()
	if cb != nil {
		cb(append([]byte(nil), p...))
	}
	return len(p), nil
}

// Sent returns everything written so far.
func (s *FakeSerial) Sent() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.tx...)
}

// FailWrites makes subsequent writes fail (or succeed again).
func (s *FakeSerial) FailWrites(fail bool) {
	s.mu.Lock()
	s.failTx = fail
	s.mu.Unlock()
}

// OnWrite registers a callback receiving a copy of every written frame.
func (s *FakeSerial) OnWrite(fn func([]byte)) {
	s.mu.Lock()
	s.onWrite = fn
	s.mu.Unlock()
}

// ------------------------------- Setup (host) --------------------------------

// HostParts exposes the fakes behind a host Hardware.
type HostParts struct {
	Buttons [2]*FakePin
	LEDs    [2]*FakePWM
	Serial  *FakeSerial
}

// Setup brings up inert host hardware for b. Buttons start released.
func Setup(_ context.Context, b boards.Board) (*Hardware, *HostParts, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	parts := &HostParts{Serial: &FakeSerial{}}
	hw := &Hardware{Board: b, Serial: parts.Serial}
	for i := range parts.Buttons {
		pin := NewFakePin(b.Buttons[i], false)
		if err := pin.ConfigureInput(halcore.PullUp); err != nil {
			return nil, nil, err
		}
		parts.Buttons[i] = pin
		hw.Inputs[i] = halcore.ActiveLow{Pin: pin}

		parts.LEDs[i] = &FakePWM{}
		hw.Outputs[i] = parts.LEDs[i]
	}
	return hw, parts, nil
}
