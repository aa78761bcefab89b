// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"github.com/scenicviz/scenic/math32"
)

// Projected is a world-space point mapped into the viewport.
type Projected struct {

	// Screen is the position in viewport pixels, with Y down.
	Screen math32.Vector2

	// Depth is the normalized device depth in [0, 1], 0 at the near
	// plane.
	Depth float32
}

// DepthFactor returns 1 - Depth, the scale applied to sizes and colors
// so nearer points render larger and brighter.
func (pr Projected) DepthFactor() float32 {
	return 1 - pr.Depth
}

// Project maps a world-space point through the combined
// view-projection matrix into viewport pixels. It reports false when
// the point is dropped: a zero clip-space w, or a position outside the
// frustum (NDC x or y outside [-1, 1], or depth outside [0, 1]).
func Project(vp *math32.Matrix4, point math32.Vector3, viewport math32.Vector2) (Projected, bool) {
	clip := vp.MulVector4(math32.Vector4FromVector3(point, 1))
	if clip.W == 0 {
		return Projected{}, false
	}
	ndc := clip.PerspectiveDiv()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < 0 || ndc.Z > 1 {
		return Projected{}, false
	}
	return Projected{
		Screen: math32.Vec2(
			(ndc.X+1)*0.5*viewport.X,
			(1-ndc.Y)*0.5*viewport.Y,
		),
		Depth: ndc.Z,
	}, true
}
