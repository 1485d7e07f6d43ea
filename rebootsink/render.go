// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rebootsink

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/ghostlab42/displays/reboot"
	"github.com/ghostlab42/displays/rebootsim"
	"golang.org/x/image/font/basicfont"
)

// Base geometry, multiplied by the handler scale.
const (
	cellW   = 34
	cellH   = 56
	cellGap = 10
	margin  = 16
	labelH  = 18
)

// render draws both displays stacked vertically, 4-digit on top.
func render(four, six *rebootsim.State, scale int) image.Image {
	width := margin*2 + 6*cellW + 5*cellGap
	height := margin*2 + 2*(labelH+cellH) + cellGap
	dc := gg.NewContext(width*scale, height*scale)
	dc.Scale(float64(scale), float64(scale))

	dc.SetRGB(0.06, 0.06, 0.08)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
	dc.SetFontFace(basicfont.Face7x13)

	y := float64(margin)
	y = drawDisplay(dc, four, 4, reboot.Addr4Digit, y)
	drawDisplay(dc, six, 6, reboot.Addr6Digit, y+cellGap)

	return dc.Image()
}

func drawDisplay(dc *gg.Context, s *rebootsim.State, digits int, addr uint16, y float64) float64 {
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.DrawString(fmt.Sprintf("%d-digit @ %#02x", digits, addr), margin, y+11)
	y += labelH

	lit := intensity(s)
	for i := 0; i < digits; i++ {
		x := float64(margin + i*(cellW+cellGap))
		drawDigit(dc, s.Rows[i], x, y, lit)
	}
	return y + cellH
}

// intensity is the lit segment brightness in 0..1, scaled by the PWM level.
// A chip in software shutdown shows nothing.
func intensity(s *rebootsim.State) float64 {
	if s.Config&0x80 != 0 {
		return 0
	}
	pwm := s.PWM
	if pwm > 0x80 {
		pwm = 0x80
	}
	return float64(pwm) / float64(0x80)
}

// segments in gfedcba bit order, as line endpoints within a unit cell.
var segments = [7][4]float64{
	{0.12, 0.00, 0.88, 0.00}, // a
	{1.00, 0.08, 1.00, 0.42}, // b
	{1.00, 0.58, 1.00, 0.92}, // c
	{0.12, 1.00, 0.88, 1.00}, // d
	{0.00, 0.58, 0.00, 0.92}, // e
	{0.00, 0.08, 0.00, 0.42}, // f
	{0.12, 0.50, 0.88, 0.50}, // g
}

func drawDigit(dc *gg.Context, pattern byte, x, y, lit float64) {
	dc.SetLineWidth(5)
	dc.SetLineCapRound()
	for bit := 0; bit < 7; bit++ {
		seg := segments[bit]
		setSegmentColor(dc, pattern&(1<<bit) != 0, lit)
		dc.DrawLine(x+seg[0]*cellW, y+seg[1]*cellH, x+seg[2]*cellW, y+seg[3]*cellH)
		dc.Stroke()
	}
	// decimal point
	setSegmentColor(dc, pattern&0x80 != 0, lit)
	dc.DrawCircle(x+cellW+cellGap*0.4, y+cellH, 3)
	dc.Fill()
}

func setSegmentColor(dc *gg.Context, on bool, lit float64) {
	if on && lit > 0 {
		dc.SetRGB(0.35+0.65*lit, 0.05, 0.05)
	} else {
		dc.SetRGB(0.16, 0.16, 0.18)
	}
}
