// Package uartio turns a blocking byte source into the non-blocking serial
// channel the control loop polls.
package uartio

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"breather-go/x/mathx"
)

// ErrEmpty is returned by ReadByte when nothing is queued.
var ErrEmpty = errors.New("uartio: no data")

// Receiver is a blocking source that honours ctx. uartx.UART satisfies it.
type Receiver interface {
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

// ReaderReceiver adapts an io.Reader that returns periodically (a port
// opened with a read timeout) to a Receiver. io.EOF counts as "no data".
type ReaderReceiver struct{ R io.Reader }

func (r ReaderReceiver) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := r.R.Read(p)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

// Config bounds the pump.
type Config struct {
	QueueSize int           // clamp 16..1024 (default 64)
	Chunk     int           // clamp 1..256 (default 32)
	Backoff   time.Duration // wait after a receive error (default 50 ms)
}

// Pump owns a reader goroutine that copies received bytes into a bounded
// queue. Buffered and ReadByte never block; bytes arriving while the queue
// is full are dropped and counted.
type Pump struct {
	q     chan byte
	tx    io.Writer
	drops uint32
	errs  uint32
	done  chan struct{}
}

// Start launches the reader goroutine. It exits when ctx is cancelled.
func Start(ctx context.Context, rx Receiver, tx io.Writer, cfg Config) *Pump {
	qs := clamp(cfg.QueueSize, 16, 1024, 64)
	chunk := clamp(cfg.Chunk, 1, 256, 32)
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 50 * time.Millisecond
	}

	p := &Pump{q: make(chan byte, qs), tx: tx, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		buf := make([]byte, chunk)
		for {
			if ctx.Err() != nil {
				return
			}
			n, err := rx.RecvSomeContext(ctx, buf)
			for i := 0; i < n; i++ {
				select {
				case p.q <- buf[i]:
				default:
					atomic.AddUint32(&p.drops, 1)
				}
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				atomic.AddUint32(&p.errs, 1)
				select {
				case <-ctx.Done():
					return
				case <-time.After(backoff):
				}
			}
		}
	}()
	return p
}

func clamp(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	return mathx.Clamp(v, lo, hi)
}

// Buffered returns the number of queued inbound bytes.
func (p *Pump) Buffered() int { return len(p.q) }

// ReadByte returns the next queued byte or ErrEmpty.
func (p *Pump) ReadByte() (byte, error) {
	select {
	case b := <-p.q:
		return b, nil
	default:
		return 0, ErrEmpty
	}
}

// Write passes p straight to the transmit side.
func (p *Pump) Write(b []byte) (int, error) { return p.tx.Write(b) }

// Drops returns the number of inbound bytes lost to a full queue.
func (p *Pump) Drops() uint32 { return atomic.LoadUint32(&p.drops) }

// Errors returns the number of receive errors seen.
func (p *Pump) Errors() uint32 { return atomic.LoadUint32(&p.errs) }

// Done is closed once the reader goroutine has exited.
func (p *Pump) Done() <-chan struct{} { return p.done }
