// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package reboot

// cie1931 maps a 0-100 brightness percentage onto the chip's 128 PWM steps
// using the CIE 1931 lightness formula. The eye's response to luminance is
// nonlinear, so a linear PWM ramp would look like it spends most of its
// range near full brightness.
var cie1931 = [101]byte{
	0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x02,
	0x02, 0x02, 0x02, 0x02, 0x03, 0x03, 0x03, 0x04, 0x04, 0x04, 0x04, 0x05,
	0x05, 0x06, 0x06, 0x07, 0x07, 0x07, 0x08, 0x09, 0x09, 0x0a, 0x0a, 0x0b,
	0x0c, 0x0c, 0x0d, 0x0e, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15,
	0x15, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1f, 0x20, 0x21, 0x23,
	0x24, 0x25, 0x27, 0x28, 0x2a, 0x2c, 0x2d, 0x2f, 0x31, 0x32, 0x34, 0x36,
	0x38, 0x3a, 0x3c, 0x3e, 0x40, 0x42, 0x44, 0x46, 0x49, 0x4b, 0x4d, 0x50,
	0x52, 0x54, 0x57, 0x5a, 0x5c, 0x5f, 0x62, 0x64, 0x67, 0x6a, 0x6d, 0x70,
	0x73, 0x76, 0x79, 0x7d, 0x80,
}
