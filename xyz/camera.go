// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the 3D side of the scene core: the camera
// model, the projection pipeline from world space to 2D primitives,
// and the 3D chart layers (scatter, surface, mesh, axes) built on it.
package xyz

import (
	"log/slog"

	"github.com/scenicviz/scenic/math32"
)

// minCameraDistance is the floor on the eye-to-target distance
// enforced by Zoom.
const minCameraDistance = 0.1

// poleEpsilon keeps the orbit elevation away from +/- Pi/2 so the up
// vector never becomes parallel to the viewing direction.
const poleEpsilon = 0.1

// Camera is a perspective camera looking from Position toward Target
// with the given up direction. Orbit, Zoom and Pan manipulate the pose
// while maintaining the camera invariants: Up stays non-parallel to
// the viewing direction, and 0 < Near < Far.
type Camera struct {

	// Position is the eye location in world space.
	Position math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the world-space up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in radians.
	FOV float32

	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32

	// Near and Far are the clip plane distances, 0 < Near < Far.
	Near float32
	Far  float32
}

// NewCamera returns a new [Camera] at (0, 0, 5) looking at the origin
// with Y up, a 45 degree field of view, 4:3 aspect ratio, and clip
// planes at 0.1 and 100.
func NewCamera() *Camera {
	return &Camera{
		Position: math32.Vec3(0, 0, 5),
		Target:   math32.Vec3(0, 0, 0),
		Up:       math32.Vec3Y,
		FOV:      math32.Pi / 4,
		Aspect:   4.0 / 3.0,
		Near:     0.1,
		Far:      100,
	}
}

// SetPosition sets the eye location and returns the camera for chaining.
func (cm *Camera) SetPosition(x, y, z float32) *Camera {
	cm.Position = math32.Vec3(x, y, z)
	return cm
}

// SetTarget sets the look-at target and returns the camera for chaining.
func (cm *Camera) SetTarget(x, y, z float32) *Camera {
	cm.Target = math32.Vec3(x, y, z)
	return cm
}

// SetFOVDegrees sets the vertical field of view from degrees and
// returns the camera for chaining.
func (cm *Camera) SetFOVDegrees(degrees float32) *Camera {
	cm.FOV = math32.DegToRad(degrees)
	return cm
}

// SetAspect sets the aspect ratio and returns the camera for chaining.
func (cm *Camera) SetAspect(aspect float32) *Camera {
	cm.Aspect = aspect
	return cm
}

// SetClipPlanes sets the near and far clip distances and returns the
// camera for chaining. An invalid pair (not 0 < near < far) is
// rejected, keeping the current values.
func (cm *Camera) SetClipPlanes(near, far float32) *Camera {
	if near <= 0 || near >= far {
		slog.Error("xyz.Camera.SetClipPlanes: rejecting invalid clip planes", "near", near, "far", far)
		return cm
	}
	cm.Near = near
	cm.Far = far
	return cm
}

// ViewMatrix returns the right-handed look-at view matrix for the
// current pose.
func (cm *Camera) ViewMatrix() math32.Matrix4 {
	return math32.NewLookAt(cm.Position, cm.Target, cm.Up)
}

// ProjectionMatrix returns the symmetric perspective projection matrix
// for the current intrinsics, with zero-to-one depth.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	return math32.NewPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// ViewVector returns the vector from the target to the eye.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Position.Sub(cm.Target)
}

// Orbit rotates the eye around the target by the given azimuth and
// elevation deltas in radians, preserving the eye-to-target distance
// exactly. Elevation is clamped short of the poles so the up vector
// never flips.
func (cm *Camera) Orbit(deltaAzimuth, deltaElevation float32) {
	offset := cm.ViewVector()
	dist := offset.Length()
	if dist == 0 {
		return
	}

	azim := math32.Atan2(offset.Z, offset.X)
	elev := math32.Asin(offset.Y / dist)

	azim += deltaAzimuth
	elev = math32.Clamp(elev+deltaElevation, -math32.Pi/2+poleEpsilon, math32.Pi/2-poleEpsilon)

	cm.Position = cm.Target.Add(math32.Vec3(
		dist*math32.Cos(elev)*math32.Cos(azim),
		dist*math32.Sin(elev),
		dist*math32.Cos(elev)*math32.Sin(azim),
	))
}

// Zoom scales the eye-to-target distance by the given factor, floored
// at the minimum distance. The target and the viewing direction are
// unchanged.
func (cm *Camera) Zoom(factor float32) {
	offset := cm.ViewVector()
	dist := offset.Length()
	if dist == 0 {
		return
	}
	newDist := math32.Max(dist*factor, minCameraDistance)
	cm.Position = cm.Target.Add(offset.Normal().MulScalar(newDist))
}

// Pan translates the eye and the target together along the camera's
// local right and up axes, preserving the viewing direction and
// distance.
func (cm *Camera) Pan(deltaX, deltaY float32) {
	forward := cm.Target.Sub(cm.Position).Normal()
	right := forward.Cross(cm.Up).Normal()
	up := right.Cross(forward)

	delta := right.MulScalar(deltaX).Add(up.MulScalar(deltaY))
	cm.Position = cm.Position.Add(delta)
	cm.Target = cm.Target.Add(delta)
}
