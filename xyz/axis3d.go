// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/plot"
)

// Axis3DDirections are the world axes an [Axis3D] can run along.
type Axis3DDirections int32

const (
	X Axis3DDirections = iota
	Y
	Z
)

// Vector returns the unit vector for the direction.
func (dr Axis3DDirections) Vector() math32.Vector3 {
	switch dr {
	case X:
		return math32.Vec3(1, 0, 0)
	case Y:
		return math32.Vec3(0, 1, 0)
	default:
		return math32.Vec3(0, 0, 1)
	}
}

// perpendiculars returns the two tick directions for an axis, chosen
// so ticks extend away from the axis into the other two world axes.
func (dr Axis3DDirections) perpendiculars() (math32.Vector3, math32.Vector3) {
	switch dr {
	case X:
		return math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)
	case Y:
		return math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)
	default:
		return math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)
	}
}

// Axis3DStyle has the colors and sizes for a 3D axis. The tick length
// is in data units, the text sizes in points.
type Axis3DStyle struct {
	AxisColor  colors.Color
	TickColor  colors.Color
	LabelColor colors.Color
	TickLength float32
	LabelSize  float32
	TitleSize  float32
}

// Defaults sets a light style suited to dark backgrounds.
func (st *Axis3DStyle) Defaults() {
	st.AxisColor = colors.RGB(0.8, 0.8, 0.8)
	st.TickColor = colors.RGB(0.9, 0.9, 0.9)
	st.LabelColor = colors.White
	st.TickLength = 0.15
	st.LabelSize = 14
	st.TitleSize = 16
}

// Axis3D is a labeled value axis in 3D space, running from Origin
// along one world direction. It projects its line, ticks, labels and
// title through the frame's camera like any other 3D layer.
type Axis3D struct {

	// Direction is the world axis this axis runs along.
	Direction Axis3DDirections

	// Scale maps data values onto positions along the axis.
	Scale plot.Scale

	// Origin is the data-space start of the axis.
	Origin math32.Vector3

	// Length is the axis length in data units.
	Length float32

	// Title is the optional axis title.
	Title string

	// TickCount is the number of major ticks.
	TickCount int

	// Style has the visual parameters.
	Style Axis3DStyle
}

// NewAxis3D returns a new [Axis3D] along the given direction with 5
// ticks and default style.
func NewAxis3D(dir Axis3DDirections, scale plot.Scale, origin math32.Vector3, length float32) *Axis3D {
	ax := &Axis3D{
		Direction: dir,
		Scale:     scale,
		Origin:    origin,
		Length:    length,
		TickCount: 5,
	}
	ax.Style.Defaults()
	return ax
}

// SetTitle sets the axis title and returns the axis for chaining.
func (ax *Axis3D) SetTitle(title string) *Axis3D {
	ax.Title = title
	return ax
}

// SetTickCount sets the number of major ticks and returns the axis for
// chaining.
func (ax *Axis3D) SetTickCount(n int) *Axis3D {
	ax.TickCount = n
	return ax
}

// SetStyle sets the style and returns the axis for chaining.
func (ax *Axis3D) SetStyle(st Axis3DStyle) *Axis3D {
	ax.Style = st
	return ax
}

// EndPoint returns the data-space end of the axis.
func (ax *Axis3D) EndPoint() math32.Vector3 {
	return ax.Origin.Add(ax.Direction.Vector().MulScalar(ax.Length))
}

// PointAt returns the data-space point for the given value,
// normalized through the axis scale.
func (ax *Axis3D) PointAt(value float32) math32.Vector3 {
	pos := ax.Scale.Normalize(value) * ax.Length
	return ax.Origin.Add(ax.Direction.Vector().MulScalar(pos))
}

// Plot projects the axis through the frame's camera: the axis line,
// then per tick two tick marks and a label, then the optional title at
// the axis midpoint. Segments with a culled endpoint are dropped.
func (ax *Axis3D) Plot(fr *Frame) []plot.Primitive {
	vp := fr.ViewProjection()

	var prims []plot.Primitive
	line := func(a, b math32.Vector3) {
		pa, oka := Project(&vp, a, fr.Viewport)
		pb, okb := Project(&vp, b, fr.Viewport)
		if oka && okb {
			prims = append(prims, plot.Line{Start: pa.Screen, End: pb.Screen})
		}
	}

	line(ax.Origin, ax.EndPoint())

	perp1, perp2 := ax.Direction.perpendiculars()
	labelOffset := perp1.Add(perp2).Normal().MulScalar(ax.Style.TickLength * 2.5)

	for _, tick := range ax.Scale.Ticks(ax.TickCount) {
		tp := ax.PointAt(tick)
		line(tp, tp.Add(perp1.MulScalar(ax.Style.TickLength)))
		line(tp, tp.Add(perp2.MulScalar(ax.Style.TickLength)))

		if lp, ok := Project(&vp, tp.Add(labelOffset), fr.Viewport); ok {
			prims = append(prims, plot.Text{
				Position: lp.Screen,
				Content:  fmt.Sprintf("%.1f", tick),
				Size:     ax.Style.LabelSize,
				Color:    ax.Style.LabelColor,
				HAlign:   plot.Center,
				VAlign:   plot.Middle,
			})
		}
	}

	if ax.Title != "" {
		mid := ax.Origin.Add(ax.Direction.Vector().MulScalar(ax.Length / 2))
		titleOffset := perp1.Add(perp2).Normal().MulScalar(-0.3)
		if tp, ok := Project(&vp, mid.Add(titleOffset), fr.Viewport); ok {
			prims = append(prims, plot.Text{
				Position: tp.Screen,
				Content:  ax.Title,
				Size:     ax.Style.TitleSize,
				Color:    ax.Style.LabelColor,
				HAlign:   plot.Center,
				VAlign:   plot.Middle,
			})
		}
	}
	return prims
}
