package uartio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

// --- minimal fake receiver ---

type fakeRx struct {
	mu sync.Mutex
	rx []byte
	rd chan struct{}
}

func newFakeRx() *fakeRx { return &fakeRx{rd: make(chan struct{}, 1)} }

func (f *fakeRx) inject(b []byte) {
	f.mu.Lock()
	f.rx = append(f.rx, b...)
	f.mu.Unlock()
	select {
	case f.rd <- struct{}{}:
	default:
	}
}

func (f *fakeRx) take(p []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := copy(p, f.rx)
	f.rx = f.rx[n:]
	return n
}

func (f *fakeRx) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if n := f.take(p); n > 0 {
		return n, nil
	}
	select {
	case <-f.rd:
		return f.take(p), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// --- helpers ---

func waitBuffered(p *Pump, n int, d time.Duration) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if p.Buffered() >= n {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

// --- tests ---

func TestPump_DeliversInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rx := newFakeRx()
	var tx bytes.Buffer
	p := Start(ctx, rx, &tx, Config{})

	if _, err := p.ReadByte(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty ReadByte: %v", err)
	}

	rx.inject([]byte("sbn"))
	if !waitBuffered(p, 3, time.Second) {
		t.Fatalf("bytes not queued: %d", p.Buffered())
	}
	for _, want := range []byte("sbn") {
		b, err := p.ReadByte()
		if err != nil || b != want {
			t.Fatalf("ReadByte=%q,%v want %q", b, err, want)
		}
	}

	if _, err := p.Write([]byte("1\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if tx.String() != "1\n" {
		t.Fatalf("tx=%q", tx.String())
	}
}

func TestPump_DropsWhenFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rx := newFakeRx()
	p := Start(ctx, rx, io.Discard, Config{QueueSize: 16, Chunk: 64})
	rx.inject(bytes.Repeat([]byte{'x'}, 40))

	deadline := time.Now().Add(time.Second)
	for p.Drops() < 24 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if p.Buffered() != 16 || p.Drops() != 24 {
		t.Fatalf("buffered=%d drops=%d", p.Buffered(), p.Drops())
	}
}

func TestPump_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Start(ctx, newFakeRx(), io.Discard, Config{})
	cancel()
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatalf("reader goroutine did not exit")
	}
}

type eofReader struct{ n int }

func (r *eofReader) Read(p []byte) (int, error) {
	if r.n > 0 {
		r.n--
		p[0] = 'b'
		return 1, nil
	}
	time.Sleep(time.Millisecond)
	return 0, io.EOF
}

func TestReaderReceiver_TreatsEOFAsIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := Start(ctx, ReaderReceiver{R: &eofReader{n: 2}}, io.Discard, Config{})
	if !waitBuffered(p, 2, time.Second) {
		t.Fatalf("buffered=%d", p.Buffered())
	}
	if p.Errors() != 0 {
		t.Fatalf("EOF counted as error")
	}
}
