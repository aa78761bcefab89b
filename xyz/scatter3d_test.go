// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"github.com/scenicviz/scenic/base/tolassert"
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/plot"
	"github.com/stretchr/testify/assert"
)

func TestScatter3DFromData(t *testing.T) {
	sc := Scatter3DFromData([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 1),
		math32.Vec3(2, 2, 2),
	})
	assert.Equal(t, 3, len(sc.Points))
	assert.Equal(t, colors.RGB(0.3, 0.6, 1), sc.Points[0].Color)
	assert.Equal(t, float32(6), sc.Points[0].Size)
}

func TestScatterPointChaining(t *testing.T) {
	sp := NewScatterPoint(1, 2, 3).
		SetColor(colors.Red).
		SetSize(10)
	assert.Equal(t, math32.Vec3(1, 2, 3), sp.Position)
	assert.Equal(t, colors.Red, sp.Color)
	assert.Equal(t, float32(10), sp.Size)
}

func TestScatter3DBounds(t *testing.T) {
	sc := Scatter3DFromData([]math32.Vector3{
		math32.Vec3(1, 2, 3),
		math32.Vec3(4, 5, 6),
		math32.Vec3(0, 1, 2),
	})
	x, y, z, ok := sc.Bounds()
	assert.True(t, ok)
	assert.Equal(t, float32(0), x.Min)
	assert.Equal(t, float32(4), x.Max)
	assert.Equal(t, float32(1), y.Min)
	assert.Equal(t, float32(5), y.Max)
	assert.Equal(t, float32(2), z.Min)
	assert.Equal(t, float32(6), z.Max)

	_, _, _, ok = NewScatter3D().Bounds()
	assert.False(t, ok)
}

func TestScatter3DPlot(t *testing.T) {
	fr := testFrame()
	sc := NewScatter3D().AddPoint(NewScatterPoint(0, 0, 0))

	prims := sc.Plot(fr)
	assert.Equal(t, 1, len(prims))

	circle := prims[0].(plot.CircleStyled)
	tolassert.Equal(t, 400, circle.Center.X)
	tolassert.Equal(t, 300, circle.Center.Y)

	// Radius and color are attenuated by the same depth factor.
	vp := fr.ViewProjection()
	pr, ok := Project(&vp, math32.Vec3(0, 0, 0), fr.Viewport)
	assert.True(t, ok)
	df := pr.DepthFactor()
	tolassert.EqualTol(t, 5*df, circle.Radius, 1.0e-4)
	tolassert.EqualTol(t, 0.5*df, circle.Fill.R, 1.0e-4)
	tolassert.EqualTol(t, 0.5*df, circle.Fill.G, 1.0e-4)
	tolassert.EqualTol(t, 1*df, circle.Fill.B, 1.0e-4)
	assert.Equal(t, float32(1), circle.Fill.A)
}

func TestScatter3DCulling(t *testing.T) {
	fr := testFrame()

	// At the eye plane (w = 0), behind the camera, and outside the
	// frustum: all produce no output.
	sc := NewScatter3D().
		AddPoint(NewScatterPoint(0, 0, 5)).
		AddPoint(NewScatterPoint(0, 0, 10)).
		AddPoint(NewScatterPoint(100, 0, 0))
	assert.Equal(t, 0, len(sc.Plot(fr)))
}

func TestScatter3DOrder(t *testing.T) {
	fr := testFrame()
	sc := NewScatter3D().
		AddPoint(NewScatterPoint(-0.5, 0, 0)).
		AddPoint(NewScatterPoint(0, 0, 10)).
		AddPoint(NewScatterPoint(0.5, 0, 0))

	prims := sc.Plot(fr)
	// The culled middle point is skipped; insertion order holds.
	assert.Equal(t, 2, len(prims))
	left := prims[0].(plot.CircleStyled)
	right := prims[1].(plot.CircleStyled)
	assert.Less(t, left.Center.X, right.Center.X)
}

func TestScatter3DEmpty(t *testing.T) {
	assert.Nil(t, NewScatter3D().Plot(testFrame()))
}

func TestScatter3DDefaults(t *testing.T) {
	sc := NewScatter3D().
		SetDefaultColor(colors.Green).
		SetDefaultSize(9)
	assert.Equal(t, colors.Green, sc.DefaultColor)
	assert.Equal(t, float32(9), sc.DefaultSize)
}
