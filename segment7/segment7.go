// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segment7 maps printable ASCII onto gfedcba seven-segment
// patterns. Bit 0 is segment a (top), bit 6 is segment g (middle), bit 7 is
// the decimal point.
package segment7

// Blank is the all-segments-off pattern.
const Blank byte = 0x00

// DecimalPoint can be OR'd onto a pattern to light the digit's decimal
// point.
const DecimalPoint byte = 0x80

// Letters are approximations; some distinct letters share a pattern (V
// renders as U, K and X render as H).
var glyphs = map[rune]byte{
	'0': 0x3f,
	'1': 0x06,
	'2': 0x5b,
	'3': 0x4f,
	'4': 0x66,
	'5': 0x6d,
	'6': 0x7d,
	'7': 0x07,
	'8': 0x7f,
	'9': 0x6f,

	'A': 0x77,
	'B': 0x7c,
	'C': 0x39,
	'D': 0x5e,
	'E': 0x79,
	'F': 0x71,
	'G': 0x3d,
	'H': 0x76,
	'I': 0x06,
	'J': 0x1e,
	'K': 0x76,
	'L': 0x38,
	'N': 0x54,
	'O': 0x3f,
	'P': 0x73,
	'Q': 0x67,
	'R': 0x50,
	'S': 0x6d,
	'T': 0x78,
	'U': 0x3e,
	'V': 0x3e,
	'X': 0x76,
	'Y': 0x6e,
	'Z': 0x5b,

	'?': 0xa3,
	'!': 0x82,
	'-': 0x40,
}

// M and W are too wide for a single digit and spill their right half into
// the neighbouring position.
var wide = map[rune][2]byte{
	'M': {0x33, 0x27},
	'W': {0x3c, 0x1e},
}

func fold(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Glyph returns the single-digit pattern for r. Letters are matched case
// insensitively. The second return value is false for runes without a
// pattern, including the wide ones; those map to Blank.
func Glyph(r rune) (byte, bool) {
	b, ok := glyphs[fold(r)]
	return b, ok
}

// IsWide reports whether r occupies two digit positions.
func IsWide(r rune) bool {
	_, ok := wide[fold(r)]
	return ok
}

// Wide returns the two-position pattern for r.
func Wide(r rune) ([2]byte, bool) {
	b, ok := wide[fold(r)]
	return b, ok
}

// Encode renders s as exactly width pattern bytes. Input beyond width is
// truncated, missing input is padded with Blank, and unmapped runes render
// as Blank. A wide rune starting at the last position is cut in half.
func Encode(s string, width int) []byte {
	if width < 0 {
		width = 0
	}
	out := make([]byte, 0, width)
	for _, r := range s {
		if len(out) >= width {
			break
		}
		if w, ok := Wide(r); ok {
			out = append(out, w[0])
			if len(out) < width {
				out = append(out, w[1])
			}
			continue
		}
		b, _ := Glyph(r)
		out = append(out, b)
	}
	for len(out) < width {
		out = append(out, Blank)
	}
	return out
}
