// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package reboot_test

import (
	"log"

	"github.com/ghostlab42/displays/reboot"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := reboot.New(bus)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	if err := dev.Write(4, "1337"); err != nil {
		log.Fatal(err)
	}
	if err := dev.Write(6, "GHOST"); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetBrightness(6, 40); err != nil {
		log.Fatal(err)
	}
}
