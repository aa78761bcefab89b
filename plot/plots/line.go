// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/plot"
)

// Line is a line chart layer: data points connected in order by a
// single LineStrip primitive. At least two points are required to
// produce output.
type Line struct {

	// Data are the data-space points, connected in order.
	Data []math32.Vector2

	// Color is the line color.
	Color colors.Color

	// Width is the line width in pixels.
	Width float32

	// XScale and YScale normalize the data into the plot area.
	// When nil, a scale is fit to the data with a 5% margin.
	XScale plot.Scale
	YScale plot.Scale
}

// NewLine returns a new [Line] with default styling.
func NewLine() *Line {
	return &Line{
		Color: colors.RGB(0.8, 0.3, 0.2),
		Width: 2,
	}
}

// SetData sets the data points and returns the line for chaining.
func (lp *Line) SetData(data []math32.Vector2) *Line {
	lp.Data = data
	return lp
}

// SetColor sets the line color and returns the line for chaining.
func (lp *Line) SetColor(c colors.Color) *Line {
	lp.Color = c
	return lp
}

// SetWidth sets the line width and returns the line for chaining.
func (lp *Line) SetWidth(width float32) *Line {
	lp.Width = width
	return lp
}

// SetScales sets the X and Y scales and returns the line for chaining.
func (lp *Line) SetScales(x, y plot.Scale) *Line {
	lp.XScale = x
	lp.YScale = y
	return lp
}

// AutoScale fits both scales to the current data and returns the line
// for chaining.
func (lp *Line) AutoScale() *Line {
	lp.XScale, lp.YScale = autoScales(lp.Data)
	return lp
}

// Plot implements [plot.Plotter].
func (lp *Line) Plot(area plot.PlotArea) []plot.Primitive {
	if len(lp.Data) < 2 {
		return nil
	}
	xs, ys := lp.XScale, lp.YScale
	if xs == nil || ys == nil {
		axs, ays := autoScales(lp.Data)
		if xs == nil {
			xs = axs
		}
		if ys == nil {
			ys = ays
		}
	}
	return []plot.Primitive{plot.LineStrip{XYs: screenPoints(lp.Data, xs, ys, area)}}
}
