// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm renders one simulated Reboot display to the terminal as
// block-art seven segments using ANSI color codes.
//
// Useful while your board set is still in the mail.
package segterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/ghostlab42/displays/reboot"
	"github.com/ghostlab42/displays/rebootsim"
)

// Opts represents the options available for this renderer.
type Opts struct {
	// Addr selects the rendered display. 0 means the 6-digit unit.
	Addr uint16
	// Palette used for color quantization.
	Palette *ansi256.Palette
	// Writer overrides the default colorable stdout.
	Writer io.Writer

	_ struct{}
}

// Dev renders one display unit at the console, one frame per latch.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	bus     *rebootsim.Bus
	addr    uint16
	digits  int

	buf bytes.Buffer
}

// New returns a Dev following bus. A frame is written on every update
// column latch of the selected display.
func New(bus *rebootsim.Bus, opts *Opts) *Dev {
	d := &Dev{
		w:       colorable.NewColorableStdout(),
		palette: *ansi256.Default,
		bus:     bus,
		addr:    reboot.Addr6Digit,
	}
	if opts != nil {
		if opts.Addr != 0 {
			d.addr = opts.Addr
		}
		if opts.Palette != nil {
			d.palette = *opts.Palette
		}
		if opts.Writer != nil {
			d.w = opts.Writer
		}
	}
	d.digits = bus.Digits(d.addr)
	bus.OnUpdate(func(addr uint16) {
		if addr == d.addr {
			_ = d.Refresh()
		}
	})
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegTerm(%#02x)", d.addr)
}

// Halt implements conn.Resource.
//
// It restores the terminal attributes.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// cellRows maps the three text rows of a digit onto gfedcba bit positions.
// -1 is always dark.
var cellRows = [3][3]int{
	{-1, 0, -1}, // a
	{5, 6, 1},   // f g b
	{4, 3, 2},   // e d c
}

// Refresh renders the current latched state as three lines.
func (d *Dev) Refresh() error {
	s, ok := d.bus.Snapshot(d.addr)
	if !ok {
		return fmt.Errorf("segterm: no display at %#x", d.addr)
	}

	on := litColor(&s)
	off := color.NRGBA{24, 24, 28, 255}

	// This code is designed to minimize the amount of memory allocated per
	// frame.
	d.buf.Reset()
	for row := 0; row < 3; row++ {
		_, _ = d.buf.WriteString("\033[0m")
		for i := 0; i < d.digits; i++ {
			pattern := s.Rows[i]
			for _, bit := range cellRows[row] {
				c := off
				if bit >= 0 && pattern&(1<<uint(bit)) != 0 {
					c = on
				}
				_, _ = io.WriteString(&d.buf, d.palette.Block(c))
			}
			// decimal point column doubles as the digit gap
			c := off
			if row == 2 && pattern&0x80 != 0 {
				c = on
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// litColor scales the LED color by the PWM level. Software shutdown renders
// dark.
func litColor(s *rebootsim.State) color.NRGBA {
	if s.Config&0x80 != 0 {
		return color.NRGBA{24, 24, 28, 255}
	}
	pwm := int(s.PWM)
	if pwm > 0x80 {
		pwm = 0x80
	}
	return color.NRGBA{uint8(64 + 191*pwm/0x80), 16, 16, 255}
}
