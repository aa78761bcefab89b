// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the 2D scene composition core: scales,
// coordinate systems, axes, scenes and figures, all flattening into an
// ordered stream of renderer-agnostic [Primitive] values. Rendering
// backends and exporters consume that stream; this package performs
// no drawing and no I/O itself.
//
// Primitive generation at every level is a pure, synchronous query over
// immutable owned state: it may be called from any goroutine and
// repeated calls return identical output.
package plot

// PlotArea is the axis-aligned screen-space rectangle that a chart's
// data is mapped into. It is purely a geometric descriptor.
type PlotArea struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewPlotArea returns a new [PlotArea] with the given origin and size.
func NewPlotArea(x, y, width, height float32) PlotArea {
	return PlotArea{X: x, Y: y, Width: width, Height: height}
}

// XY maps normalized 0..1 coordinates into this area, with the
// normalized Y axis pointing up and the screen Y axis pointing down.
func (pa PlotArea) XY(xnorm, ynorm float32) (x, y float32) {
	x = pa.X + xnorm*pa.Width
	y = pa.Y + pa.Height - ynorm*pa.Height
	return x, y
}

// Plotter is the capability every chart type implements: produce the
// ordered primitives for one chart layer laid out in the given plot
// area. The scene core depends only on this contract, never on
// individual chart algorithms. Implementations must not retain or
// mutate shared state: Plot is invoked on every primitive regeneration.
type Plotter interface {
	Plot(area PlotArea) []Primitive
}
