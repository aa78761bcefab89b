// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"

	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/plot"
)

// BarData is one bar: a category label and a value.
type BarData struct {
	Label string
	Value float32
}

// Bar is a bar chart layer. Each bar is a styled rectangle from the
// zero baseline to its value, with a value label above (or below, for
// negative values) and a category label under the plot area.
type Bar struct {

	// Data are the bars, in order.
	Data []BarData

	// Fill is the bar fill color.
	Fill colors.Color

	// Stroke is the bar outline.
	Stroke plot.Stroke

	// BarWidth is the fraction of the per-bar slot each bar occupies,
	// 0..1.
	BarWidth float32

	// LabelSize is the text size of value and category labels.
	LabelSize float32

	// YScale normalizes values into the plot area. When nil, a scale
	// is fit to the values with a 5% margin.
	YScale plot.Scale
}

// NewBar returns a new [Bar] with default styling.
func NewBar() *Bar {
	return &Bar{
		Fill:      colors.RGB(0.3, 0.6, 0.9),
		Stroke:    plot.Stroke{Color: colors.RGB(0.1, 0.3, 0.6), Width: 1},
		BarWidth:  0.8,
		LabelSize: 11,
	}
}

// SetData sets the bars and returns the chart for chaining.
func (bp *Bar) SetData(data []BarData) *Bar {
	bp.Data = data
	return bp
}

// SetValues sets the bars from values alone, with empty category
// labels, and returns the chart for chaining.
func (bp *Bar) SetValues(values []float32) *Bar {
	bp.Data = make([]BarData, len(values))
	for i, v := range values {
		bp.Data[i].Value = v
	}
	return bp
}

// SetFill sets the fill color and returns the chart for chaining.
func (bp *Bar) SetFill(c colors.Color) *Bar {
	bp.Fill = c
	return bp
}

// SetStroke sets the outline and returns the chart for chaining.
func (bp *Bar) SetStroke(c colors.Color, width float32) *Bar {
	bp.Stroke = plot.Stroke{Color: c, Width: width}
	return bp
}

// SetYScale sets the value scale and returns the chart for chaining.
func (bp *Bar) SetYScale(s plot.Scale) *Bar {
	bp.YScale = s
	return bp
}

// AutoScale fits the value scale to the current data and returns the
// chart for chaining.
func (bp *Bar) AutoScale() *Bar {
	vals := make([]float32, len(bp.Data))
	for i, d := range bp.Data {
		vals[i] = d.Value
	}
	bp.YScale = plot.LinearScaleFromData(vals)
	return bp
}

// Plot implements [plot.Plotter]. Each bar emits three primitives in
// order: its rectangle, its value label, and its category label.
func (bp *Bar) Plot(area plot.PlotArea) []plot.Primitive {
	if len(bp.Data) == 0 {
		return nil
	}
	ys := bp.YScale
	if ys == nil {
		vals := make([]float32, len(bp.Data))
		for i, d := range bp.Data {
			vals[i] = d.Value
		}
		ys = plot.LinearScaleFromData(vals)
	}

	slot := area.Width / float32(len(bp.Data))
	barWidth := slot * bp.BarWidth
	gap := (slot - barWidth) / 2

	// Zero baseline, or the area bottom when zero is out of range.
	baselineY := area.Y + area.Height
	if zn := ys.Normalize(0); zn >= 0 && zn <= 1 {
		baselineY = area.Y + area.Height - zn*area.Height
	}

	prims := []plot.Primitive{}
	for i, bar := range bp.Data {
		x := area.X + gap + float32(i)*slot
		topY := area.Y + area.Height - ys.Normalize(bar.Value)*area.Height

		stroke := bp.Stroke
		prims = append(prims, plot.RectangleStyled{
			Box: math32.B2(
				x, math32.Min(topY, baselineY),
				x+barWidth, math32.Max(topY, baselineY),
			),
			Fill:   bp.Fill,
			Stroke: &stroke,
		})

		labelY := topY - 5
		valign := plot.Bottom
		if bar.Value < 0 {
			labelY = topY + 5
			valign = plot.Top
		}
		prims = append(prims, plot.Text{
			Position: math32.Vec2(x+barWidth/2, labelY),
			Content:  fmt.Sprintf("%.1f", bar.Value),
			Size:     bp.LabelSize,
			Color:    colors.RGB(0.2, 0.2, 0.2),
			HAlign:   plot.Center,
			VAlign:   valign,
		})

		prims = append(prims, plot.Text{
			Position: math32.Vec2(x+barWidth/2, area.Y+area.Height+15),
			Content:  bar.Label,
			Size:     bp.LabelSize,
			Color:    colors.RGB(0.2, 0.2, 0.2),
			HAlign:   plot.Center,
			VAlign:   plot.Top,
		})
	}
	return prims
}
