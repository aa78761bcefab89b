// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
)

// Figure is the top-level container of a visualization: an ordered
// list of scenes, a declared size, and an optional figure title.
// Scenes are moved into the figure by AddScene and owned by it.
type Figure struct {

	// Scenes are the owned scenes, flattened in insertion order.
	Scenes []*Scene

	// Size is the declared logical width and height of the figure.
	Size math32.Vector2

	// Title is the optional figure-level title.
	Title string
}

// NewFigure returns a new [Figure] with the given logical size.
func NewFigure(width, height float32) *Figure {
	return &Figure{Size: math32.Vec2(width, height)}
}

// SetTitle sets the figure title and returns the figure for chaining.
func (fg *Figure) SetTitle(title string) *Figure {
	fg.Title = title
	return fg
}

// AddScene appends a scene and returns the figure for chaining.
func (fg *Figure) AddScene(sc *Scene) *Figure {
	fg.Scenes = append(fg.Scenes, sc)
	return fg
}

// Primitives flattens the whole figure into one primitive stream:
// the figure title if present, then each scene's primitives in
// insertion order. The query is pure and idempotent: repeated calls
// with no intervening mutation return identical output.
func (fg *Figure) Primitives() []Primitive {
	prims := []Primitive{}
	if fg.Title != "" {
		prims = append(prims, Text{
			Position: math32.Vec2(fg.Size.X/2, 30),
			Content:  fg.Title,
			Size:     20,
			Color:    colors.RGB(0.1, 0.1, 0.1),
			HAlign:   Center,
			VAlign:   Bottom,
		})
	}
	for _, sc := range fg.Scenes {
		prims = append(prims, sc.Primitives()...)
	}
	return prims
}
