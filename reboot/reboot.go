// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package reboot

import (
	"fmt"

	"github.com/ghostlab42/displays/is31fl3730"
	"github.com/ghostlab42/displays/segment7"
	"periph.io/x/conn/v3/i2c"
)

const (
	// Addr4Digit is the bus address of the 4-digit display unit.
	Addr4Digit uint16 = 0x63
	// Addr6Digit is the bus address of the 6-digit display unit.
	Addr6Digit uint16 = 0x60
)

// The driver chip resets to 40mA per row, which is more than the display
// modules are rated for. 20mA is the rated maximum and must be reasserted
// after every chip reset.
const (
	currentRated = is31fl3730.Current20mA
	currentSafe  = is31fl3730.Current5mA
)

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("reboot: %w", err)
}

// Dev represents a Reboot board set.
type Dev struct {
	four *is31fl3730.Dev
	six  *is31fl3730.Dev
}

// New returns an initialized board set with both displays clamped to their
// rated maximum current.
func New(bus i2c.Bus) (*Dev, error) {
	four, err := is31fl3730.New(bus, Addr4Digit, nil)
	if err != nil {
		return nil, wrap(err)
	}
	six, err := is31fl3730.New(bus, Addr6Digit, nil)
	if err != nil {
		return nil, wrap(err)
	}
	d := &Dev{four: four, six: six}
	if err := d.SetPowerMax(4); err != nil {
		return nil, err
	}
	if err := d.SetPowerMax(6); err != nil {
		return nil, err
	}
	return d, nil
}

// dev selects a display unit. 4 selects the 4-digit unit, any other value
// the 6-digit unit.
func (d *Dev) dev(digits int) (*is31fl3730.Dev, int) {
	if digits == 4 {
		return d.four, 4
	}
	return d.six, 6
}

// Write displays s on the selected unit. Input longer than the display is
// truncated, shorter input leaves the remaining digits blank. Characters
// without a seven-segment form render blank.
func (d *Dev) Write(digits int, s string) error {
	dev, width := d.dev(digits)
	return dev.WriteMatrix(segment7.Encode(s, width))
}

// SetBrightness dims the selected unit. percent is clamped to 0-100 and
// mapped through a CIE 1931 lightness table so the perceived brightness
// scales linearly.
func (d *Dev) SetBrightness(digits, percent int) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	dev, _ := d.dev(digits)
	return dev.SetPWM(cie1931[percent])
}

// Reset returns the selected unit's chip to its power-on defaults, then
// immediately clamps the row current back to the rated maximum. The chip
// default exceeds the display rating and must never be left in place.
func (d *Dev) Reset(digits int) error {
	dev, _ := d.dev(digits)
	if err := dev.Reset(); err != nil {
		return err
	}
	return d.SetPowerMax(digits)
}

// SetPowerMin sets the selected unit to the lowest row current step.
func (d *Dev) SetPowerMin(digits int) error {
	dev, _ := d.dev(digits)
	return dev.SetCurrent(currentSafe)
}

// SetPowerMax sets the selected unit to the display's rated maximum row
// current.
func (d *Dev) SetPowerMax(digits int) error {
	dev, _ := d.dev(digits)
	return dev.SetCurrent(currentRated)
}

// Halt blanks and shuts down both displays. Implements conn.Resource.
func (d *Dev) Halt() error {
	if err := d.four.Halt(); err != nil {
		return err
	}
	return d.six.Halt()
}

func (d *Dev) String() string {
	return fmt.Sprintf("Reboot{%s, %s}", d.four, d.six)
}
