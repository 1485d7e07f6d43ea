// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"

	"github.com/ghostlab42/displays/reboot"
	"github.com/ghostlab42/displays/rebootsim"
)

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, formatClock(at), "150405")
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, formatCountdown(0), "------")
	assert.Equal(t, formatCountdown(-time.Second), "------")
	assert.Equal(t, formatCountdown(10*time.Millisecond), "000001")
	assert.Equal(t, formatCountdown(90*time.Second+250*time.Millisecond), "013025")
	assert.Equal(t, formatCountdown(99*time.Minute), "990000")
	// above 99 minutes it flips to HHMMSS
	assert.Equal(t, formatCountdown(2*time.Hour+3*time.Minute+4*time.Second), "020304")
}

func TestFrameWallClock(t *testing.T) {
	at := time.Date(2026, 8, 31, 15, 4, 5, int(200*time.Millisecond), time.UTC)
	r := &runner{}
	out, next := r.frame(at)
	assert.Equal(t, out, "150405")
	assert.Equal(t, next, 800*time.Millisecond)
}

func TestFrameCountdown(t *testing.T) {
	start := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	r := &runner{deadline: start.Add(time.Minute)}

	out, next := r.frame(start)
	assert.Equal(t, out, "010000")
	assert.Equal(t, next, frameInterval)

	// the last frame before the deadline waits only for the remainder
	out, next = r.frame(start.Add(time.Minute - 10*time.Millisecond))
	assert.Equal(t, out, "000001")
	assert.Equal(t, next, 10*time.Millisecond)

	out, next = r.frame(start.Add(time.Minute))
	assert.Equal(t, out, "------")
	assert.Equal(t, next, time.Duration(0))
}

func TestRunExpiredCountdown(t *testing.T) {
	bus := rebootsim.New()
	dev, err := reboot.New(bus)
	assert.NilError(t, err)

	clk := clockwork.NewFakeClock()
	r := &runner{clk: clk, dev: dev, deadline: clk.Now()}
	assert.NilError(t, r.run(nil))

	s, ok := bus.Snapshot(reboot.Addr6Digit)
	assert.Assert(t, ok)
	// all dashes
	for i := 0; i < 6; i++ {
		assert.Equal(t, s.Rows[i], byte(0x40))
	}
}

func TestRunCountsDown(t *testing.T) {
	bus := rebootsim.New()
	dev, err := reboot.New(bus)
	assert.NilError(t, err)

	clk := clockwork.NewFakeClock()
	r := &runner{clk: clk, dev: dev, deadline: clk.Now().Add(frameInterval)}

	errc := make(chan error, 1)
	go func() {
		errc <- r.run(nil)
	}()

	clk.BlockUntil(1)
	clk.Advance(frameInterval)
	assert.NilError(t, <-errc)

	s, _ := bus.Snapshot(reboot.Addr6Digit)
	assert.Equal(t, s.Rows[0], byte(0x40))
}

func TestRunStopsOnDone(t *testing.T) {
	bus := rebootsim.New()
	dev, err := reboot.New(bus)
	assert.NilError(t, err)

	clk := clockwork.NewFakeClock()
	r := &runner{clk: clk, dev: dev} // wall clock mode never expires

	done := make(chan struct{})
	errc := make(chan error, 1)
	go func() {
		errc <- r.run(done)
	}()

	clk.BlockUntil(1)
	close(done)
	assert.NilError(t, <-errc)
}
