// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/scenicviz/scenic/base/tolassert"
	"github.com/scenicviz/scenic/math32"
	"github.com/stretchr/testify/assert"
)

func TestCartesianCoords(t *testing.T) {
	cc := NewCartesianCoords(math32.B2(0, 0, 10, 5), math32.B2(100, 50, 500, 250))
	assert.NoError(t, cc.Validate())
	assert.True(t, cc.FlipY)

	// Data min maps to the bottom-left of the screen rectangle with
	// the Y flip on.
	p := cc.DataToScreen(math32.Vec2(0, 0))
	tolassert.Equal(t, 100, p.X)
	tolassert.Equal(t, 250, p.Y)

	p = cc.DataToScreen(math32.Vec2(10, 5))
	tolassert.Equal(t, 500, p.X)
	tolassert.Equal(t, 50, p.Y)

	p = cc.DataToScreen(math32.Vec2(5, 2.5))
	tolassert.Equal(t, 300, p.X)
	tolassert.Equal(t, 150, p.Y)
}

func TestCartesianCoordsNoFlip(t *testing.T) {
	cc := NewCartesianCoords(math32.B2(0, 0, 10, 5), math32.B2(100, 50, 500, 250))
	cc.FlipY = false

	p := cc.DataToScreen(math32.Vec2(0, 0))
	tolassert.Equal(t, 100, p.X)
	tolassert.Equal(t, 50, p.Y)

	p = cc.DataToScreen(math32.Vec2(10, 5))
	tolassert.Equal(t, 500, p.X)
	tolassert.Equal(t, 250, p.Y)
}

func TestCartesianCoordsRoundTrip(t *testing.T) {
	cc := NewCartesianCoords(math32.B2(-5, -2, 15, 8), math32.B2(0, 0, 640, 480))
	for _, d := range []math32.Vector2{
		math32.Vec2(-5, -2),
		math32.Vec2(15, 8),
		math32.Vec2(0, 0),
		math32.Vec2(7.3, 1.1),
	} {
		back := cc.ScreenToData(cc.DataToScreen(d))
		tolassert.EqualTol(t, d.X, back.X, 1.0e-4)
		tolassert.EqualTol(t, d.Y, back.Y, 1.0e-4)
	}
}

func TestTransformMatrixMatchesDirect(t *testing.T) {
	for _, flip := range []bool{true, false} {
		cc := NewCartesianCoords(math32.B2(2, -3, 12, 7), math32.B2(50, 20, 450, 320))
		cc.FlipY = flip
		m := cc.TransformMatrix()
		for _, d := range []math32.Vector2{
			math32.Vec2(2, -3),
			math32.Vec2(12, 7),
			math32.Vec2(5, 0),
			math32.Vec2(-1, 10),
		} {
			direct := cc.DataToScreen(d)
			viaMatrix := m.MulVector2AsPoint(d)
			tolassert.EqualTol(t, direct.X, viaMatrix.X, 1.0e-3, "flip", flip)
			tolassert.EqualTol(t, direct.Y, viaMatrix.Y, 1.0e-3, "flip", flip)
		}
	}
}

func TestCartesianCoordsDegenerate(t *testing.T) {
	// Zero-width data bounds: X collapses to the screen midpoint.
	cc := NewCartesianCoords(math32.B2(3, 0, 3, 5), math32.B2(100, 50, 500, 250))
	assert.ErrorIs(t, cc.Validate(), ErrDegenerateGeometry)

	p := cc.DataToScreen(math32.Vec2(3, 0))
	tolassert.Equal(t, 300, p.X)
	tolassert.Equal(t, 250, p.Y)

	// The matrix reproduces the midpoint fallback too.
	m := cc.TransformMatrix()
	vm := m.MulVector2AsPoint(math32.Vec2(3, 0))
	tolassert.Equal(t, p.X, vm.X)
	tolassert.Equal(t, p.Y, vm.Y)

	back := cc.ScreenToData(p)
	tolassert.Equal(t, 3, back.X)
}

func TestCartesianCoordsScales(t *testing.T) {
	cc := NewCartesianCoords(math32.B2(0, 0, 10, 5), math32.B2(0, 0, 100, 100))
	sx, ok := cc.XScale()
	assert.True(t, ok)
	tolassert.Equal(t, 10, sx)
	sy, ok := cc.YScale()
	assert.True(t, ok)
	tolassert.Equal(t, 20, sy)

	cc.DataBounds = math32.B2(0, 0, 0, 5)
	_, ok = cc.XScale()
	assert.False(t, ok)
}
