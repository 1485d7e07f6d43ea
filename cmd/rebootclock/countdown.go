// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ghostlab42/displays/reboot"
)

// frameInterval is the redraw period in countdown mode. The centisecond
// digits only need to look busy, not be exact.
const frameInterval = 40 * time.Millisecond

// formatClock renders a wall clock time as HHMMSS.
func formatClock(t time.Time) string {
	return t.Format("150405")
}

// formatCountdown renders the remaining time as MMSScc, switching to HHMMSS
// above 99 minutes. Expired countdowns render as dashes.
func formatCountdown(rem time.Duration) string {
	if rem <= 0 {
		return "------"
	}
	if rem >= 100*time.Minute {
		h := int(rem / time.Hour)
		m := int(rem % time.Hour / time.Minute)
		s := int(rem % time.Minute / time.Second)
		return fmt.Sprintf("%02d%02d%02d", h, m, s)
	}
	m := int(rem / time.Minute)
	s := int(rem % time.Minute / time.Second)
	c := int(rem % time.Second / (10 * time.Millisecond))
	return fmt.Sprintf("%02d%02d%02d", m, s, c)
}

// runner drives the 6-digit display from a clock source. The clock is an
// interface so tests can run against a fake.
type runner struct {
	clk clockwork.Clock
	dev *reboot.Dev
	// deadline of the countdown; zero means wall clock mode.
	deadline time.Time
}

// frame returns the display content for now and how long to wait before the
// next frame. A zero wait stops the loop.
func (r *runner) frame(now time.Time) (string, time.Duration) {
	if r.deadline.IsZero() {
		next := now.Truncate(time.Second).Add(time.Second).Sub(now)
		if next <= 0 {
			next = time.Second
		}
		return formatClock(now), next
	}
	rem := r.deadline.Sub(now)
	if rem <= 0 {
		return formatCountdown(0), 0
	}
	next := frameInterval
	if rem < next {
		next = rem
	}
	return formatCountdown(rem), next
}

// run redraws until the countdown expires or done closes. In wall clock
// mode it only returns on done.
func (r *runner) run(done <-chan struct{}) error {
	for {
		out, next := r.frame(r.clk.Now())
		if err := r.dev.Write(6, out); err != nil {
			return err
		}
		if next <= 0 {
			return nil
		}
		select {
		case <-done:
			return nil
		case <-r.clk.After(next):
		}
	}
}
