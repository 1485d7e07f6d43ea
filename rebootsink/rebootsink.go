// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rebootsink serves a picture of a simulated Reboot board set over
// HTTP. Every GET renders the currently latched display state as a PNG.
//
// The primary use case is developing display output on a host machine
// without the board attached: point the code at a rebootsim.Bus, mount this
// handler, and watch the displays in a browser.
package rebootsink

import (
	"bytes"
	"image/png"
	"net/http"

	"github.com/ghostlab42/displays/reboot"
	"github.com/ghostlab42/displays/rebootsim"
)

// Options for the handler.
type Options struct {
	// Scale multiplies the rendered size. 0 means 1.
	Scale int
}

// Handler renders a simulated board set. Implements http.Handler.
type Handler struct {
	bus   *rebootsim.Bus
	scale int
}

var _ http.Handler = (*Handler)(nil)

// New returns a handler rendering bus.
func New(bus *rebootsim.Bus, opts *Options) *Handler {
	scale := 1
	if opts != nil && opts.Scale > 0 {
		scale = opts.Scale
	}
	return &Handler{bus: bus, scale: scale}
}

func (h *Handler) String() string {
	return "RebootSink"
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	four, _ := h.bus.Snapshot(reboot.Addr4Digit)
	six, _ := h.bus.Snapshot(reboot.Addr6Digit)
	img := render(&four, &six, h.scale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
