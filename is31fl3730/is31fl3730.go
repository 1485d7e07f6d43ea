// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// The IS31FL3730 is an 11x8 LED matrix driver with 128-step PWM dimming and
// a configurable row current. The chip is write-only; display data is staged
// in temporary registers and made visible by a write to the update column
// register.
//
// # Datasheet
//
// https://www.lumissil.com/assets/pdf/core/IS31FL3730_DS.pdf
package is31fl3730

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

const (
	// Register offsets from the datasheet. The matrix data registers
	// auto-increment, so a block of rows can be staged in one transaction
	// starting at the base register.
	_CONFIGURATION   byte = 0x00
	_MATRIX1_DATA    byte = 0x01
	_UPDATE_COLUMN   byte = 0x0c
	_LIGHTING_EFFECT byte = 0x0d
	_MATRIX2_DATA    byte = 0x0e
	_PWM             byte = 0x19
	_RESET           byte = 0xff
)

const (
	// Software shutdown bit of the configuration register.
	_CONFIG_SSD byte = 0x80

	// MatrixRows is the number of data rows per matrix bank.
	MatrixRows = 11

	// MaxPWM is the highest PWM setting. Values above it are clamped.
	MaxPWM byte = 0x80
)

// DisplayMode selects which matrix banks the chip drives.
type DisplayMode byte

const (
	// Matrix 1 only. This is the power-on default.
	MODE_MATRIX1 DisplayMode = 0x00
	// Matrix 2 only.
	MODE_MATRIX2 DisplayMode = 0x08
	// Both matrix banks.
	MODE_BOTH DisplayMode = 0x18
)

// Current is a row current setting for the lighting effect register. The
// encoding is not monotonic: the power-on default 40mA is 0x00 and the
// smaller steps start at 0x08.
type Current byte

const (
	Current40mA Current = 0x00 // power-on default
	Current45mA Current = 0x01
	Current50mA Current = 0x02
	Current55mA Current = 0x03
	Current60mA Current = 0x04
	Current65mA Current = 0x05
	Current70mA Current = 0x06
	Current75mA Current = 0x07
	Current5mA  Current = 0x08
	Current10mA Current = 0x09
	Current15mA Current = 0x0a
	Current20mA Current = 0x0b
	Current25mA Current = 0x0c
	Current30mA Current = 0x0d
	Current35mA Current = 0x0e
)

var errInvalidAddress = errors.New("invalid IS31FL3730 address")
var errTooManyRows = errors.New("too many matrix rows")

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("is31fl3730: %w", err)
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Mode selects the driven matrix banks. Zero value is MODE_MATRIX1.
	Mode DisplayMode
}

// Dev represents an IS31FL3730 matrix driver.
type Dev struct {
	d    *i2c.Dev
	mode DisplayMode
	// shadow of the write-only configuration register
	config byte
}

// New returns an initialized IS31FL3730 ready for use. address must be one
// of the four AD-pin selectable addresses 0x60-0x63.
func New(bus i2c.Bus, address uint16, opts *Opts) (*Dev, error) {
	if address < 0x60 || address > 0x63 {
		return nil, wrap(errInvalidAddress)
	}
	dev := &Dev{d: &i2c.Dev{Bus: bus, Addr: address}}
	if opts != nil {
		dev.mode = opts.Mode
	}
	dev.config = byte(dev.mode)
	return dev, wrap(dev.d.Tx([]byte{_CONFIGURATION, dev.config}, nil))
}

// WriteMatrix stages up to 11 rows in the matrix 1 data registers and
// latches them into the visible output.
func (d *Dev) WriteMatrix(rows []byte) error {
	return d.writeBank(_MATRIX1_DATA, rows)
}

// WriteMatrix2 is WriteMatrix for the second matrix bank.
func (d *Dev) WriteMatrix2(rows []byte) error {
	return d.writeBank(_MATRIX2_DATA, rows)
}

func (d *Dev) writeBank(base byte, rows []byte) error {
	if len(rows) > MatrixRows {
		return wrap(errTooManyRows)
	}
	w := make([]byte, 0, len(rows)+1)
	w = append(w, base)
	w = append(w, rows...)
	if err := d.d.Tx(w, nil); err != nil {
		return wrap(err)
	}
	return d.Update()
}

// Update latches the staged matrix data into the visible output. The written
// value is ignored by the chip.
func (d *Dev) Update() error {
	return wrap(d.d.Tx([]byte{_UPDATE_COLUMN, 0x00}, nil))
}

// SetPWM sets the output brightness to one of 128 steps. level is clamped
// to MaxPWM.
func (d *Dev) SetPWM(level byte) error {
	if level > MaxPWM {
		level = MaxPWM
	}
	return wrap(d.d.Tx([]byte{_PWM, level}, nil))
}

// SetCurrent sets the row current. The chip allows more current than many
// displays are rated for, so callers should reassert their limit after
// Reset.
func (d *Dev) SetCurrent(c Current) error {
	return wrap(d.d.Tx([]byte{_LIGHTING_EFFECT, byte(c)}, nil))
}

// Reset returns all registers to their power-on defaults: blank display,
// full PWM and the 40mA default row current.
func (d *Dev) Reset() error {
	return wrap(d.d.Tx([]byte{_RESET, 0x00}, nil))
}

// Shutdown enters or leaves software shutdown. Display data and settings
// are retained while shut down.
func (d *Dev) Shutdown(shutdown bool) error {
	if shutdown {
		d.config |= _CONFIG_SSD
	} else {
		d.config &^= _CONFIG_SSD
	}
	return wrap(d.d.Tx([]byte{_CONFIGURATION, d.config}, nil))
}

// Halt blanks the display and enters software shutdown. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	if err := d.WriteMatrix(make([]byte, MatrixRows)); err != nil {
		return err
	}
	return d.Shutdown(true)
}

func (d *Dev) String() string {
	return fmt.Sprintf("IS31FL3730{%s}", d.d)
}
