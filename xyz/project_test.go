// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"github.com/scenicviz/scenic/base/tolassert"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/math32/minmax"
	"github.com/scenicviz/scenic/plot"
	"github.com/stretchr/testify/assert"
)

func testFrame() *Frame {
	r := minmax.F32{Min: -1, Max: 1}
	return NewFrame(r, r, r)
}

func TestProjectCenter(t *testing.T) {
	fr := testFrame()
	vp := fr.ViewProjection()

	// The look-at target projects to the viewport center.
	pr, ok := Project(&vp, math32.Vec3(0, 0, 0), fr.Viewport)
	assert.True(t, ok)
	tolassert.Equal(t, 400, pr.Screen.X)
	tolassert.Equal(t, 300, pr.Screen.Y)
	assert.Greater(t, pr.Depth, float32(0))
	assert.Less(t, pr.Depth, float32(1))
	tolassert.Equal(t, 1-pr.Depth, pr.DepthFactor())
}

func TestProjectOffCenter(t *testing.T) {
	fr := testFrame()
	vp := fr.ViewProjection()

	// +X in world space lands right of center, +Y above center
	// (screen Y grows downward).
	right, ok := Project(&vp, math32.Vec3(1, 0, 0), fr.Viewport)
	assert.True(t, ok)
	assert.Greater(t, right.Screen.X, float32(400))
	tolassert.Equal(t, 300, right.Screen.Y)

	up, ok := Project(&vp, math32.Vec3(0, 1, 0), fr.Viewport)
	assert.True(t, ok)
	assert.Less(t, up.Screen.Y, float32(300))
}

func TestProjectZeroW(t *testing.T) {
	fr := testFrame()
	vp := fr.ViewProjection()

	// A point on the eye plane yields clip w = 0 and is dropped.
	_, ok := Project(&vp, fr.Camera.Position, fr.Viewport)
	assert.False(t, ok)
}

func TestProjectCulled(t *testing.T) {
	fr := testFrame()
	vp := fr.ViewProjection()

	// Behind the camera.
	_, ok := Project(&vp, math32.Vec3(0, 0, 10), fr.Viewport)
	assert.False(t, ok)

	// Far outside the horizontal frustum.
	_, ok = Project(&vp, math32.Vec3(100, 0, 0), fr.Viewport)
	assert.False(t, ok)

	// Beyond the far plane.
	_, ok = Project(&vp, math32.Vec3(0, 0, -200), fr.Viewport)
	assert.False(t, ok)
}

func TestProjectDepthOrder(t *testing.T) {
	fr := testFrame()
	vp := fr.ViewProjection()

	near, ok := Project(&vp, math32.Vec3(0, 0, 1), fr.Viewport)
	assert.True(t, ok)
	far, ok := Project(&vp, math32.Vec3(0, 0, -1), fr.Viewport)
	assert.True(t, ok)

	// Nearer points have smaller depth and a larger depth factor.
	assert.Less(t, near.Depth, far.Depth)
	assert.Greater(t, near.DepthFactor(), far.DepthFactor())
}

func TestFrameViewport(t *testing.T) {
	fr := testFrame()
	assert.Equal(t, math32.Vec2(800, 600), fr.Viewport)

	fr.SetViewport(400, 400)
	assert.Equal(t, math32.Vec2(400, 400), fr.Viewport)
	tolassert.Equal(t, 1, fr.Camera.Aspect)

	vp := fr.ViewProjection()
	pr, ok := Project(&vp, math32.Vec3(0, 0, 0), fr.Viewport)
	assert.True(t, ok)
	tolassert.Equal(t, 200, pr.Screen.X)
	tolassert.Equal(t, 200, pr.Screen.Y)
}

func TestFramePrimitivesOrder(t *testing.T) {
	fr := testFrame()
	fr.Add(Scatter3DFromData([]math32.Vector3{math32.Vec3(0, 0, 0)}))
	fr.Add(NewSurface3D(SurfaceGridFromFunc(-0.5, 0.5, -0.5, 0.5, 2, 2,
		func(x, y float32) float32 { return 0 })))
	fr.Add(nil)

	assert.Equal(t, 2, len(fr.Plots))

	prims := fr.Primitives()
	// One circle from the scatter, then the four surface edges.
	assert.Equal(t, 5, len(prims))
	_, ok := prims[0].(plot.CircleStyled)
	assert.True(t, ok)
	for _, p := range prims[1:] {
		_, ok := p.(plot.Line)
		assert.True(t, ok)
	}
}
