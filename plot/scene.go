// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"log/slog"

	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
)

// Scene is one plot area with up to two axes and an ordered list of
// chart layers. Parts are moved into the scene by the Add and Set
// calls and owned by it exclusively; once primitives have been
// requested the scene is not expected to be mutated further.
type Scene struct {

	// Area is the plot area shared by all chart layers in this scene.
	Area PlotArea

	// XAxis is the optional horizontal axis, below the plot area.
	XAxis *Axis

	// YAxis is the optional vertical axis, left of the plot area.
	YAxis *Axis

	// Plots are the chart layers, drawn in the order added:
	// later layers draw over earlier ones.
	Plots []Plotter

	// Title is the optional scene title, above the plot area.
	Title string
}

// axisOffset is the gap in pixels between the plot area and an axis shaft.
const axisOffset = 20

// NewScene returns a new [Scene] for the given plot area.
func NewScene(area PlotArea) *Scene {
	return &Scene{Area: area}
}

// SetTitle sets the scene title and returns the scene for chaining.
func (sc *Scene) SetTitle(title string) *Scene {
	sc.Title = title
	return sc
}

// AddXAxis adds a horizontal axis below the plot area, spanning its
// width with the given scale, and returns the scene for chaining.
// An empty title means no axis title.
func (sc *Scene) AddXAxis(scale Scale, title string) *Scene {
	pos := math32.Vec2(sc.Area.X, sc.Area.Y+sc.Area.Height+axisOffset)
	sc.XAxis = NewAxis(Horizontal, scale, pos, sc.Area.Width).SetTitle(title)
	return sc
}

// AddYAxis adds a vertical axis left of the plot area, spanning its
// height with the given scale, and returns the scene for chaining.
// An empty title means no axis title.
func (sc *Scene) AddYAxis(scale Scale, title string) *Scene {
	pos := math32.Vec2(sc.Area.X-axisOffset, sc.Area.Y)
	sc.YAxis = NewAxis(Vertical, scale, pos, sc.Area.Height).SetTitle(title)
	return sc
}

// Add appends a chart layer and returns the scene for chaining.
func (sc *Scene) Add(p Plotter) *Scene {
	if p == nil {
		slog.Error("plot.Scene.Add: nil Plotter ignored")
		return sc
	}
	sc.Plots = append(sc.Plots, p)
	return sc
}

// Primitives flattens this scene into one primitive stream, in this
// fixed order: scene title if present, horizontal axis if present,
// vertical axis if present, the plot area border rectangle, then each
// chart layer in the order added, all sharing the same plot area.
// The ordering is a contract: it is what makes later layers draw over
// earlier ones under the painter's algorithm.
func (sc *Scene) Primitives() []Primitive {
	prims := []Primitive{}

	if sc.Title != "" {
		prims = append(prims, Text{
			Position: math32.Vec2(sc.Area.X+sc.Area.Width/2, sc.Area.Y-40),
			Content:  sc.Title,
			Size:     16,
			Color:    colors.RGB(0.1, 0.1, 0.1),
			HAlign:   Center,
			VAlign:   Bottom,
		})
	}
	if sc.XAxis != nil {
		prims = append(prims, sc.XAxis.Primitives()...)
	}
	if sc.YAxis != nil {
		prims = append(prims, sc.YAxis.Primitives()...)
	}
	prims = append(prims, Rectangle{Box: math32.B2(
		sc.Area.X, sc.Area.Y,
		sc.Area.X+sc.Area.Width, sc.Area.Y+sc.Area.Height,
	)})
	for _, p := range sc.Plots {
		prims = append(prims, p.Plot(sc.Area)...)
	}
	return prims
}
