// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the visual styling values that renderers and
// exporters pair with primitive sequences. Styles are supplied by the
// caller (typically from a theme), either one per primitive or one per
// batch; the geometry core never consults a theme registry itself.
package styles

import "github.com/scenicviz/scenic/colors"

// LineStyles are the stroke dash patterns for line drawing.
type LineStyles int32

const (
	Solid LineStyles = iota
	Dashed
	Dotted
	DashDot
)

// Markers are the glyph shapes used for data points.
type Markers int32

const (
	Circle Markers = iota
	Square
	Triangle
	Cross
	Plus
	Diamond
)

// Style contains the visual styling properties for one primitive or one
// batch of primitives.
type Style struct {

	// Fill is the interior color; nil means no fill.
	Fill *colors.Color

	// Stroke is the outline color; nil means no stroke.
	Stroke *colors.Color

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float32

	// Line is the dash pattern for line primitives.
	Line LineStyles

	// Marker is the glyph shape for point primitives.
	Marker Markers

	// MarkerSize is the glyph size in pixels.
	MarkerSize float32

	// Opacity multiplies the alpha of both fill and stroke, 0..1.
	Opacity float32
}

// NewStyle returns a new [Style] with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	fill := colors.Blue
	stroke := colors.Black
	st.Fill = &fill
	st.Stroke = &stroke
	st.StrokeWidth = 1
	st.Line = Solid
	st.Marker = Circle
	st.MarkerSize = 3
	st.Opacity = 1
}

// SetFill sets the fill color and returns the style for chaining.
func (st *Style) SetFill(c colors.Color) *Style {
	st.Fill = &c
	return st
}

// SetStroke sets the stroke color and width and returns the style
// for chaining.
func (st *Style) SetStroke(c colors.Color, width float32) *Style {
	st.Stroke = &c
	st.StrokeWidth = width
	return st
}

// SetMarker sets the marker shape and size and returns the style
// for chaining.
func (st *Style) SetMarker(m Markers, size float32) *Style {
	st.Marker = m
	st.MarkerSize = size
	return st
}

// SetOpacity sets the opacity, clamped to 0..1, and returns the style
// for chaining.
func (st *Style) SetOpacity(opacity float32) *Style {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	st.Opacity = opacity
	return st
}
