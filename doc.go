// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package displays is a container for the GhostLab42 "Reboot" display board
// drivers and their development tooling.
package displays
