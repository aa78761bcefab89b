// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/stretchr/testify/assert"
)

func TestPrimitiveBounds(t *testing.T) {
	b, ok := Point{XY: math32.Vec2(3, 4)}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(3, 4, 3, 4), b)

	b, ok = Line{Start: math32.Vec2(5, 1), End: math32.Vec2(1, 5)}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(1, 1, 5, 5), b)

	b, ok = Points{XYs: []math32.Vector2{math32.Vec2(0, 2), math32.Vec2(4, -1)}}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(0, -1, 4, 2), b)

	b, ok = Circle{Center: math32.Vec2(10, 10), Radius: 3}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(7, 7, 13, 13), b)

	b, ok = CircleStyled{Center: math32.Vec2(0, 0), Radius: 2, Fill: colors.Red}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(-2, -2, 2, 2), b)

	b, ok = Rectangle{Box: math32.B2(1, 2, 3, 4)}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(1, 2, 3, 4), b)
}

func TestEmptyPrimitiveBounds(t *testing.T) {
	_, ok := Points{}.Bounds()
	assert.False(t, ok)

	_, ok = LineStrip{}.Bounds()
	assert.False(t, ok)

	_, ok = TriangleList{}.Bounds()
	assert.False(t, ok)
}

func TestTextBounds(t *testing.T) {
	// Text bounds are the anchor only; no shaping happens here.
	b, ok := Text{Position: math32.Vec2(8, 9), Content: "hello"}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(8, 9, 8, 9), b)
}

func Test3DPrimitiveBounds(t *testing.T) {
	b, ok := Point3D{XYZ: math32.Vec3(1, 2, 3)}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(1, 2, 1, 2), b)

	b, ok = Line3D{Start: math32.Vec3(0, 4, 9), End: math32.Vec3(2, 1, -5)}.Bounds()
	assert.True(t, ok)
	assert.Equal(t, math32.B2(0, 1, 2, 4), b)
}
