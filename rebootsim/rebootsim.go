// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rebootsim is an in-memory stand-in for the Reboot board set's I2C
// bus. It implements i2c.Bus, decodes the IS31FL3730 register writes the
// way the chips do, and exposes the resulting display state so the board
// can be developed and rendered without hardware.
package rebootsim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ghostlab42/displays/reboot"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const matrixRows = 11

// State is the register state of one simulated chip. The zero value is not
// the power-on state; see reset.
type State struct {
	// Staged holds matrix data written but not yet latched.
	Staged [matrixRows]byte
	// Rows is the visible matrix 1 data.
	Rows [matrixRows]byte
	// Staged2 and Rows2 are the second matrix bank.
	Staged2 [matrixRows]byte
	Rows2   [matrixRows]byte
	PWM     byte
	Current byte
	Config  byte
	// Resets counts writes to the reset register.
	Resets int
}

func (s *State) reset() {
	n := s.Resets
	*s = State{PWM: 0x80}
	s.Resets = n
}

var errUnknownAddress = errors.New("no chip at address")
var errReadRequest = errors.New("chip is write-only")
var errShortWrite = errors.New("missing register data")

// Bus simulates the two display chips. It is safe for concurrent use.
type Bus struct {
	mu       sync.Mutex
	chips    map[uint16]*State
	onUpdate []func(addr uint16)
}

var _ i2c.Bus = (*Bus)(nil)

// New returns a simulated bus with a chip at each of the board set's two
// addresses, in their power-on state.
func New() *Bus {
	b := &Bus{chips: map[uint16]*State{
		reboot.Addr4Digit: {},
		reboot.Addr6Digit: {},
	}}
	for _, c := range b.chips {
		c.reset()
	}
	return b
}

// Digits returns the display width at addr.
func (b *Bus) Digits(addr uint16) int {
	if addr == reboot.Addr4Digit {
		return 4
	}
	return 6
}

// Snapshot returns a copy of the chip state at addr.
func (b *Bus) Snapshot(addr uint16) (State, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.chips[addr]
	if !ok {
		return State{}, false
	}
	return *c, true
}

// OnUpdate registers fn to run after every update column latch, with the
// latching chip's address. fn runs outside the bus lock.
func (b *Bus) OnUpdate(fn func(addr uint16)) {
	b.mu.Lock()
	b.onUpdate = append(b.onUpdate, fn)
	b.mu.Unlock()
}

// Tx decodes a register write the way the chip does.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return fmt.Errorf("rebootsim: %w", errReadRequest)
	}
	if len(w) < 2 {
		return fmt.Errorf("rebootsim: %w", errShortWrite)
	}

	b.mu.Lock()
	c, ok := b.chips[addr]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("rebootsim: %w %#x", errUnknownAddress, addr)
	}

	var latched bool
	reg, data := w[0], w[1:]
	switch {
	case reg == 0x00:
		c.Config = data[0]
	case reg >= 0x01 && reg <= 0x0b:
		copy(c.Staged[reg-0x01:], data)
	case reg == 0x0c:
		c.Rows = c.Staged
		c.Rows2 = c.Staged2
		latched = true
	case reg == 0x0d:
		c.Current = data[0]
	case reg >= 0x0e && reg <= 0x18:
		copy(c.Staged2[reg-0x0e:], data)
	case reg == 0x19:
		c.PWM = data[0]
	case reg == 0xff:
		c.Resets++
		c.reset()
	default:
		b.mu.Unlock()
		return fmt.Errorf("rebootsim: unknown register %#x", reg)
	}
	fns := b.onUpdate
	b.mu.Unlock()

	if latched {
		for _, fn := range fns {
			fn(addr)
		}
	}
	return nil
}

// SetSpeed implements i2c.Bus. The simulation has no timing.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return nil
}

func (b *Bus) String() string {
	return "RebootSim"
}
