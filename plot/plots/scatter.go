// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides the basic chart layer types implementing the
// [plot.Plotter] contract: Scatter, Line and Bar. Chart types with
// nontrivial layout algorithms live outside the core and plug in
// through the same contract.
package plots

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/plot"
)

// Scatter is a scatter chart layer: one marker per data point,
// emitted as a single Points primitive in plot-area coordinates.
type Scatter struct {

	// Data are the data-space points.
	Data []math32.Vector2

	// Color is the marker color.
	Color colors.Color

	// PointSize is the marker size in pixels.
	PointSize float32

	// XScale and YScale normalize the data into the plot area.
	// When nil, a scale is fit to the data with a 5% margin.
	XScale plot.Scale
	YScale plot.Scale
}

// NewScatter returns a new [Scatter] with default styling.
func NewScatter() *Scatter {
	return &Scatter{
		Color:     colors.RGB(0.2, 0.4, 0.8),
		PointSize: 5,
	}
}

// SetData sets the data points and returns the scatter for chaining.
func (sp *Scatter) SetData(data []math32.Vector2) *Scatter {
	sp.Data = data
	return sp
}

// SetXYData sets the data from parallel x and y slices, which must be
// the same length, and returns the scatter for chaining.
func (sp *Scatter) SetXYData(xs, ys []float32) *Scatter {
	n := min(len(xs), len(ys))
	sp.Data = make([]math32.Vector2, n)
	for i := range sp.Data {
		sp.Data[i] = math32.Vec2(xs[i], ys[i])
	}
	return sp
}

// SetColor sets the marker color and returns the scatter for chaining.
func (sp *Scatter) SetColor(c colors.Color) *Scatter {
	sp.Color = c
	return sp
}

// SetPointSize sets the marker size and returns the scatter for chaining.
func (sp *Scatter) SetPointSize(size float32) *Scatter {
	sp.PointSize = size
	return sp
}

// SetScales sets the X and Y scales and returns the scatter for chaining.
func (sp *Scatter) SetScales(x, y plot.Scale) *Scatter {
	sp.XScale = x
	sp.YScale = y
	return sp
}

// AutoScale fits both scales to the current data and returns the
// scatter for chaining.
func (sp *Scatter) AutoScale() *Scatter {
	sp.XScale, sp.YScale = autoScales(sp.Data)
	return sp
}

// Plot implements [plot.Plotter].
func (sp *Scatter) Plot(area plot.PlotArea) []plot.Primitive {
	if len(sp.Data) == 0 {
		return nil
	}
	xs, ys := sp.XScale, sp.YScale
	if xs == nil || ys == nil {
		axs, ays := autoScales(sp.Data)
		if xs == nil {
			xs = axs
		}
		if ys == nil {
			ys = ays
		}
	}
	return []plot.Primitive{plot.Points{XYs: screenPoints(sp.Data, xs, ys, area)}}
}

// autoScales returns linear scales fit to the x and y components of
// the given data with a 5% margin.
func autoScales(data []math32.Vector2) (x, y plot.Scale) {
	xvals := make([]float32, len(data))
	yvals := make([]float32, len(data))
	for i, d := range data {
		xvals[i] = d.X
		yvals[i] = d.Y
	}
	return plot.LinearScaleFromData(xvals), plot.LinearScaleFromData(yvals)
}

// screenPoints normalizes the data through the scales and maps it into
// the plot area, flipping Y from data-up to screen-down.
func screenPoints(data []math32.Vector2, xs, ys plot.Scale, area plot.PlotArea) []math32.Vector2 {
	pts := make([]math32.Vector2, len(data))
	for i, d := range data {
		x, y := area.XY(xs.Normalize(d.X), ys.Normalize(d.Y))
		pts[i] = math32.Vec2(x, y)
	}
	return pts
}
