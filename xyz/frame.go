// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/math32/minmax"
	"github.com/scenicviz/scenic/plot"
)

// Frame is the 3D counterpart of a 2D scene: it holds the data-space
// bounds of the plotted volume, the camera, the viewport size in
// pixels, and the 3D layers to render.
type Frame struct {

	// X, Y, Z are the data-space ranges of the plotted volume.
	X, Y, Z minmax.F32

	// Camera views the volume.
	Camera *Camera

	// Viewport is the output size in pixels.
	Viewport math32.Vector2

	// Plots are the 3D layers, rendered in insertion order.
	Plots []Plotter3D
}

// Plotter3D is a 3D chart layer that projects itself through a frame's
// camera into 2D primitives.
type Plotter3D interface {
	// Plot returns the 2D primitives for this layer as seen through
	// the frame's camera, in draw order.
	Plot(fr *Frame) []plot.Primitive
}

// NewFrame returns a new [Frame] with the given data-space bounds, a
// default [Camera], and an 800x600 viewport.
func NewFrame(x, y, z minmax.F32) *Frame {
	return &Frame{
		X:        x,
		Y:        y,
		Z:        z,
		Camera:   NewCamera(),
		Viewport: math32.Vec2(800, 600),
	}
}

// SetViewport sets the viewport size in pixels, updates the camera
// aspect ratio to match, and returns the frame for chaining.
func (fr *Frame) SetViewport(width, height float32) *Frame {
	fr.Viewport = math32.Vec2(width, height)
	if height > 0 {
		fr.Camera.Aspect = width / height
	}
	return fr
}

// Add appends a 3D layer to the frame. A nil layer is ignored.
func (fr *Frame) Add(p Plotter3D) *Frame {
	if p == nil {
		return fr
	}
	fr.Plots = append(fr.Plots, p)
	return fr
}

// ViewProjection returns the combined projection * view matrix for the
// frame's camera, computed once per call for use across a batch of
// points.
func (fr *Frame) ViewProjection() math32.Matrix4 {
	proj := fr.Camera.ProjectionMatrix()
	view := fr.Camera.ViewMatrix()
	return proj.Mul(&view)
}

// Primitives flattens every layer into one ordered list of 2D
// primitives, preserving insertion order across layers.
func (fr *Frame) Primitives() []plot.Primitive {
	var prims []plot.Primitive
	for _, p := range fr.Plots {
		prims = append(prims, p.Plot(fr)...)
	}
	return prims
}
