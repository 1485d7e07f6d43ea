// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package reboot drives the GhostLab42 "Reboot" dual display board set: a
// 4-digit and a 6-digit seven-segment display, each behind its own
// IS31FL3730 on a shared I2C bus.
//
// Board documentation
// https://github.com/GhostLab42
package reboot
