//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breather-go/errcode"
	"breather-go/internal/config"
	"breather-go/internal/protocol"
	"breather-go/types"
)

func TestBuildProfile(t *testing.T) {
	p, err := buildProfile(options{variant: "breathe"})
	require.NoError(t, err)
	assert.Equal(t, types.VariantBreathe, p.Variant)
	assert.Equal(t, config.Period, p.Period)
	assert.Equal(t, protocol.Normalized.Name, p.Vocab.Name)

	p, err = buildProfile(options{variant: "2", vocab: "legacy-window", period: 5 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, types.VariantWindow, p.Variant)
	assert.Equal(t, "legacy-window", p.Vocab.Name)
	assert.Equal(t, 5*time.Millisecond, p.Period)

	_, err = buildProfile(options{variant: "strobe"})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))

	_, err = buildProfile(options{variant: "breathe", vocab: "morse"})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestRun_HeadlessStopsAfterTicks(t *testing.T) {
	o := options{variant: "breathe", backend: "headless", period: time.Millisecond, ticks: 40}

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), o, zerolog.Nop()) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("headless run did not stop")
	}
}

func TestRun_CancelIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	o := options{variant: "window", backend: "headless", period: time.Millisecond}

	done := make(chan error, 1)
	go func() { done <- run(ctx, o, zerolog.Nop()) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run ignored cancellation")
	}
}

func TestRun_RejectsBadSetup(t *testing.T) {
	err := run(context.Background(), options{variant: "breathe", backend: "hologram"}, zerolog.Nop())
	assert.Equal(t, errcode.Unsupported, errcode.Of(err))

	err = run(context.Background(), options{variant: "breathe", backend: "gpio", gpioIn: [2]int{-1, -1}}, zerolog.Nop())
	assert.Equal(t, errcode.UnknownPin, errcode.Of(err))
}

type stubFault struct{ err error }

func (s *stubFault) Err() error { return s.err }

func TestGuardTick_StopsOnCollaboratorFault(t *testing.T) {
	calls := 0
	inner := func(time.Duration) bool { calls++; return true }
	f := &stubFault{}
	var fault error
	tick := guardTick(inner, []faulter{f}, &fault)

	assert.True(t, tick(time.Millisecond))
	assert.Equal(t, 1, calls)

	f.err = errors.New("gpio read 2: no such device")
	assert.False(t, tick(time.Millisecond))
	assert.Equal(t, 1, calls, "no wait after a fault")
	assert.EqualError(t, fault, "gpio read 2: no such device")
}
