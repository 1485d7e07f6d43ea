// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// rebootclock shows a wall clock or a countdown on the 6-digit display of a
// GhostLab42 Reboot board set, either on real hardware or simulated in the
// terminal.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/ghostlab42/displays/reboot"
	"github.com/ghostlab42/displays/rebootsim"
	"github.com/ghostlab42/displays/rebootsink"
	"github.com/ghostlab42/displays/segterm"
)

var (
	sim       = flag.Bool("sim", false, "render to the terminal instead of real hardware")
	httpAddr  = flag.String("http", "", "with -sim, also serve a PNG view at this address")
	busName   = flag.String("bus", "", "I2C bus name, empty for the first available")
	countdown = flag.Duration("countdown", 0, "count down this duration instead of showing the clock")
	bright    = flag.Int("bright", 60, "brightness percent, 0-100")
)

func mainImpl() error {
	flag.Parse()

	var bus i2c.Bus
	if *sim {
		simBus := rebootsim.New()
		term := segterm.New(simBus, nil)
		defer term.Halt()
		if *httpAddr != "" {
			sink := rebootsink.New(simBus, &rebootsink.Options{Scale: 2})
			go func() {
				log.Printf("serving display view on http://%s/", *httpAddr)
				log.Print(http.ListenAndServe(*httpAddr, sink))
			}()
		}
		bus = simBus
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			return err
		}
		defer b.Close()
		bus = b
	}

	dev, err := reboot.New(bus)
	if err != nil {
		return err
	}
	defer dev.Halt()

	if err := dev.SetBrightness(6, *bright); err != nil {
		return err
	}

	r := &runner{clk: clockwork.NewRealClock(), dev: dev}
	if *countdown > 0 {
		r.deadline = r.clk.Now().Add(*countdown)
	}

	done := make(chan struct{})
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		close(done)
	}()

	return r.run(done)
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("rebootclock: %v", err)
	}
}
