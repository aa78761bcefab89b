// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"github.com/scenicviz/scenic/base/tolassert"
	"github.com/scenicviz/scenic/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera(t *testing.T) {
	cm := NewCamera()
	assert.Equal(t, math32.Vec3(0, 0, 5), cm.Position)
	assert.Equal(t, math32.Vec3(0, 0, 0), cm.Target)
	assert.Equal(t, math32.Vec3Y, cm.Up)
	tolassert.Equal(t, math32.Pi/4, cm.FOV)
	tolassert.Equal(t, 4.0/3.0, cm.Aspect)
	tolassert.Equal(t, 0.1, cm.Near)
	tolassert.Equal(t, 100, cm.Far)
}

func TestCameraZoom(t *testing.T) {
	cm := NewCamera()
	cm.Zoom(0.5)
	tolassert.Equal(t, 2.5, cm.ViewVector().Length())
	assert.Equal(t, math32.Vec3(0, 0, 0), cm.Target)
	tolassert.Equal(t, 0, cm.Position.X)
	tolassert.Equal(t, 0, cm.Position.Y)
	tolassert.Equal(t, 2.5, cm.Position.Z)
}

func TestCameraZoomFloor(t *testing.T) {
	cm := NewCamera()
	cm.Zoom(0.001)
	tolassert.Equal(t, 0.1, cm.ViewVector().Length())

	// Zooming out from the floor works normally.
	cm.Zoom(10)
	tolassert.Equal(t, 1, cm.ViewVector().Length())
}

func TestCameraOrbitPreservesDistance(t *testing.T) {
	cm := NewCamera()
	for _, deltas := range [][2]float32{
		{0.3, 0},
		{0, 0.4},
		{-1.2, 0.7},
		{math32.Pi, -0.2},
	} {
		cm.Orbit(deltas[0], deltas[1])
		tolassert.EqualTol(t, 5, cm.ViewVector().Length(), 1.0e-3)
	}
}

func TestCameraOrbitAzimuth(t *testing.T) {
	cm := NewCamera()
	// A quarter-turn in azimuth moves the eye from +Z to -X.
	cm.Orbit(math32.Pi/2, 0)
	tolassert.EqualTol(t, -5, cm.Position.X, 1.0e-3)
	tolassert.EqualTol(t, 0, cm.Position.Y, 1.0e-3)
	tolassert.EqualTol(t, 0, cm.Position.Z, 1.0e-3)
}

func TestCameraOrbitPoleClamp(t *testing.T) {
	cm := NewCamera()
	cm.Orbit(0, 10)
	// Elevation stops short of the pole, so some horizontal offset
	// always remains.
	offset := cm.ViewVector()
	horiz := math32.Vec2(offset.X, offset.Z).Length()
	assert.Greater(t, horiz, float32(0.01))
	tolassert.EqualTol(t, 5, offset.Length(), 1.0e-3)

	cm.Orbit(0, -20)
	offset = cm.ViewVector()
	assert.Greater(t, math32.Vec2(offset.X, offset.Z).Length(), float32(0.01))
}

func TestCameraPan(t *testing.T) {
	cm := NewCamera()
	cm.Pan(1, 2)
	// For the default pose, camera right is world +X and camera up is
	// world +Y; both eye and target translate together.
	tolassert.Equal(t, 1, cm.Position.X)
	tolassert.Equal(t, 2, cm.Position.Y)
	tolassert.Equal(t, 5, cm.Position.Z)
	tolassert.Equal(t, 1, cm.Target.X)
	tolassert.Equal(t, 2, cm.Target.Y)
	tolassert.Equal(t, 0, cm.Target.Z)
	tolassert.Equal(t, 5, cm.ViewVector().Length())
}

func TestCameraSetClipPlanes(t *testing.T) {
	cm := NewCamera()
	cm.SetClipPlanes(0.5, 50)
	tolassert.Equal(t, 0.5, cm.Near)
	tolassert.Equal(t, 50, cm.Far)

	// Invalid pairs are rejected, keeping the current values.
	cm.SetClipPlanes(0, 50)
	tolassert.Equal(t, 0.5, cm.Near)
	cm.SetClipPlanes(60, 50)
	tolassert.Equal(t, 0.5, cm.Near)
	tolassert.Equal(t, 50, cm.Far)
}

func TestCameraSetters(t *testing.T) {
	cm := NewCamera().
		SetPosition(1, 2, 3).
		SetTarget(4, 5, 6).
		SetFOVDegrees(60).
		SetAspect(1)

	assert.Equal(t, math32.Vec3(1, 2, 3), cm.Position)
	assert.Equal(t, math32.Vec3(4, 5, 6), cm.Target)
	tolassert.Equal(t, math32.Pi/3, cm.FOV)
	tolassert.Equal(t, 1, cm.Aspect)
}

func TestCameraMatrices(t *testing.T) {
	cm := NewCamera()
	view := cm.ViewMatrix()
	target := view.MulVector3AsPoint(cm.Target)
	tolassert.Equal(t, -5, target.Z)

	proj := cm.ProjectionMatrix()
	onNear := proj.MulVector4(math32.Vec4(0, 0, -cm.Near, 1))
	tolassert.Equal(t, 0, onNear.Z/onNear.W)
}
