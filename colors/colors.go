// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the float32 RGBA color type used by
// primitives and styles, with linear channel arithmetic suitable
// for depth attenuation and blending.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when parsing a malformed color literal.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGBA color with float32 components in the 0..1 range.
// Values are not premultiplied by alpha.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// New returns a new [Color] with the given red, green, blue and alpha
// components.
func New(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns a new fully opaque [Color] with the given red, green and
// blue components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Standard colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = New(0, 0, 0, 0)
)

// FromHex parses the given 6 hex digit color string, with an optional
// leading #, into a fully opaque color (e.g., "#ff0000" is [Red]).
// A malformed literal returns an error wrapping [ErrInvalidColor].
func FromHex(hex string) (Color, error) {
	hs := strings.TrimPrefix(hex, "#")
	if len(hs) != 6 {
		return Color{}, fmt.Errorf("%w: hex color %q must have 6 digits", ErrInvalidColor, hex)
	}
	var ch [3]float32
	for i := range ch {
		v, err := strconv.ParseUint(hs[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidColor, hex, err)
		}
		ch[i] = float32(v) / 255
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

// MustFromHex is [FromHex] that panics on a malformed literal,
// for use with known-good constants.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns this color plus the other, per channel.
func (c Color) Add(other Color) Color {
	return New(c.R+other.R, c.G+other.G, c.B+other.B, c.A+other.A)
}

// Mul returns this color modulated by the other, per channel.
func (c Color) Mul(other Color) Color {
	return New(c.R*other.R, c.G*other.G, c.B*other.B, c.A*other.A)
}

// MulScalar returns this color with all four channels scaled by s.
func (c Color) MulScalar(s float32) Color {
	return New(c.R*s, c.G*s, c.B*s, c.A*s)
}

// Attenuate returns this color with the RGB channels scaled by the
// given factor, leaving alpha unchanged. Used for depth attenuation.
func (c Color) Attenuate(factor float32) Color {
	return New(c.R*factor, c.G*factor, c.B*factor, c.A)
}

// WithAlpha returns this color with the alpha channel set to a.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}
