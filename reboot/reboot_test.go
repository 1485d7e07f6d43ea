// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package reboot

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

// newOps is the bus traffic of New: both chips configured, then both
// clamped to the rated current.
var newOps = []i2ctest.IO{
	{Addr: Addr4Digit, W: []byte{0x00, 0x00}},
	{Addr: Addr6Digit, W: []byte{0x00, 0x00}},
	{Addr: Addr4Digit, W: []byte{0x0d, 0x0b}},
	{Addr: Addr6Digit, W: []byte{0x0d, 0x0b}},
}

func playback(t *testing.T, ops []i2ctest.IO) (*Dev, *i2ctest.Playback) {
	t.Helper()
	bus := &i2ctest.Playback{Ops: append(append([]i2ctest.IO{}, newOps...), ops...)}
	dev, err := New(bus)
	if err != nil {
		t.Fatal(err)
	}
	return dev, bus
}

func TestNew(t *testing.T) {
	dev, _ := playback(t, nil)
	if s := dev.String(); len(s) == 0 {
		t.Error("empty String()")
	}
}

func TestWrite(t *testing.T) {
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr4Digit, W: []byte{0x01, 0x06, 0x5b, 0x4f, 0x66}},
		{Addr: Addr4Digit, W: []byte{0x0c, 0x00}},
		{Addr: Addr6Digit, W: []byte{0x01, 0x76, 0x79, 0x38, 0x38, 0x3f, 0x00}},
		{Addr: Addr6Digit, W: []byte{0x0c, 0x00}},
	})
	if err := dev.Write(4, "1234"); err != nil {
		t.Error(err)
	}
	if err := dev.Write(6, "HELLO"); err != nil {
		t.Error(err)
	}
}

func TestWriteSelectsSixDigitUnit(t *testing.T) {
	// Any digit count other than 4 targets the 6-digit unit at its full
	// width.
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr6Digit, W: []byte{0x01, 0x3f, 0x3f, 0x00, 0x00, 0x00, 0x00}},
		{Addr: Addr6Digit, W: []byte{0x0c, 0x00}},
	})
	if err := dev.Write(5, "00"); err != nil {
		t.Error(err)
	}
}

func TestWriteTruncatesAndPads(t *testing.T) {
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr4Digit, W: []byte{0x01, 0x06, 0x5b, 0x4f, 0x66}},
		{Addr: Addr4Digit, W: []byte{0x0c, 0x00}},
		{Addr: Addr4Digit, W: []byte{0x01, 0x06, 0x00, 0x00, 0x00}},
		{Addr: Addr4Digit, W: []byte{0x0c, 0x00}},
	})
	if err := dev.Write(4, "123456"); err != nil {
		t.Error(err)
	}
	if err := dev.Write(4, "1"); err != nil {
		t.Error(err)
	}
}

func TestSetBrightness(t *testing.T) {
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr6Digit, W: []byte{0x19, 0x18}},
		{Addr: Addr4Digit, W: []byte{0x19, 0x80}},
		{Addr: Addr4Digit, W: []byte{0x19, 0x00}},
		{Addr: Addr6Digit, W: []byte{0x19, 0x01}},
	})
	if err := dev.SetBrightness(6, 50); err != nil {
		t.Error(err)
	}
	// out of range values clamp
	if err := dev.SetBrightness(4, 150); err != nil {
		t.Error(err)
	}
	if err := dev.SetBrightness(4, -5); err != nil {
		t.Error(err)
	}
	if err := dev.SetBrightness(6, 1); err != nil {
		t.Error(err)
	}
}

func TestReset(t *testing.T) {
	// Reset must immediately reassert the rated current; the chip default
	// is above the display rating.
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr4Digit, W: []byte{0xff, 0x00}},
		{Addr: Addr4Digit, W: []byte{0x0d, 0x0b}},
	})
	if err := dev.Reset(4); err != nil {
		t.Error(err)
	}
}

func TestPowerPresets(t *testing.T) {
	dev, _ := playback(t, []i2ctest.IO{
		{Addr: Addr6Digit, W: []byte{0x0d, 0x08}},
		{Addr: Addr6Digit, W: []byte{0x0d, 0x0b}},
	})
	if err := dev.SetPowerMin(6); err != nil {
		t.Error(err)
	}
	if err := dev.SetPowerMax(6); err != nil {
		t.Error(err)
	}
}

func TestCIETableShape(t *testing.T) {
	if cie1931[0] != 0x00 {
		t.Errorf("cie1931[0] = %#x, expected 0", cie1931[0])
	}
	if cie1931[100] != 0x80 {
		t.Errorf("cie1931[100] = %#x, expected full PWM", cie1931[100])
	}
	for i := 1; i < len(cie1931); i++ {
		if cie1931[i] < cie1931[i-1] {
			t.Fatalf("cie1931 not monotonic at %d: %#x < %#x", i, cie1931[i], cie1931[i-1])
		}
	}
}
