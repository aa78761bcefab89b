// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/math32/minmax"
	"github.com/scenicviz/scenic/plot"
)

// ScatterPoint is one datum of a 3D scatter layer, with a per-point
// color and size.
type ScatterPoint struct {
	Position math32.Vector3
	Color    colors.Color
	Size     float32
}

// NewScatterPoint returns a new [ScatterPoint] at the given position
// with a light blue color and size 5.
func NewScatterPoint(x, y, z float32) ScatterPoint {
	return ScatterPoint{
		Position: math32.Vec3(x, y, z),
		Color:    colors.RGB(0.5, 0.5, 1),
		Size:     5,
	}
}

// SetColor sets the point color and returns the point for chaining.
func (sp ScatterPoint) SetColor(clr colors.Color) ScatterPoint {
	sp.Color = clr
	return sp
}

// SetSize sets the point size and returns the point for chaining.
func (sp ScatterPoint) SetSize(size float32) ScatterPoint {
	sp.Size = size
	return sp
}

// Scatter3D is a 3D scatter chart layer. Each point is projected
// through the frame's camera and emitted as a filled circle whose
// radius and color are attenuated by depth, so nearer points render
// larger and brighter. Points are emitted in insertion order with no
// depth sorting.
type Scatter3D struct {

	// Points are the data, drawn in order.
	Points []ScatterPoint

	// DefaultColor is applied to points added from bare coordinates.
	DefaultColor colors.Color

	// DefaultSize is applied to points added from bare coordinates.
	DefaultSize float32
}

// NewScatter3D returns a new empty [Scatter3D] with blue default color
// and default size 6.
func NewScatter3D() *Scatter3D {
	return &Scatter3D{
		DefaultColor: colors.RGB(0.3, 0.6, 1),
		DefaultSize:  6,
	}
}

// Scatter3DFromData returns a new [Scatter3D] with one point per
// (x, y, z) triple, using the default color and size.
func Scatter3DFromData(data []math32.Vector3) *Scatter3D {
	sc := NewScatter3D()
	for _, p := range data {
		sc.Points = append(sc.Points, ScatterPoint{
			Position: p,
			Color:    sc.DefaultColor,
			Size:     sc.DefaultSize,
		})
	}
	return sc
}

// AddPoint appends a point and returns the scatter for chaining.
func (sc *Scatter3D) AddPoint(sp ScatterPoint) *Scatter3D {
	sc.Points = append(sc.Points, sp)
	return sc
}

// SetDefaultColor sets the color applied to points added from bare
// coordinates and returns the scatter for chaining.
func (sc *Scatter3D) SetDefaultColor(clr colors.Color) *Scatter3D {
	sc.DefaultColor = clr
	return sc
}

// SetDefaultSize sets the size applied to points added from bare
// coordinates and returns the scatter for chaining.
func (sc *Scatter3D) SetDefaultSize(size float32) *Scatter3D {
	sc.DefaultSize = size
	return sc
}

// Bounds returns the data-space extent of the points on each axis.
// It reports false when the scatter is empty.
func (sc *Scatter3D) Bounds() (x, y, z minmax.F32, ok bool) {
	if len(sc.Points) == 0 {
		return
	}
	x.SetInfinity()
	y.SetInfinity()
	z.SetInfinity()
	for _, p := range sc.Points {
		x.FitValInRange(p.Position.X)
		y.FitValInRange(p.Position.Y)
		z.FitValInRange(p.Position.Z)
	}
	return x, y, z, true
}

// Plot projects every point through the frame's camera and returns one
// [plot.CircleStyled] per visible point, in insertion order. Points
// behind the camera or outside the frustum produce no primitive.
func (sc *Scatter3D) Plot(fr *Frame) []plot.Primitive {
	if len(sc.Points) == 0 {
		return nil
	}
	vp := fr.ViewProjection()

	var prims []plot.Primitive
	for _, p := range sc.Points {
		pr, ok := Project(&vp, p.Position, fr.Viewport)
		if !ok {
			continue
		}
		df := pr.DepthFactor()
		prims = append(prims, plot.CircleStyled{
			Center: pr.Screen,
			Radius: p.Size * df,
			Fill:   p.Color.Attenuate(df),
		})
	}
	return prims
}
