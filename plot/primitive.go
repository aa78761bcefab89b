// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
)

// Primitive is one renderer-agnostic drawable shape. The set of
// implementations is closed: Point, Points, Line, LineStrip, Rectangle,
// RectangleStyled, Circle, CircleStyled, Text, TriangleList, Point3D
// and Line3D.
// Primitives are immutable values: they carry only intrinsic geometry
// (and, for the styled variants, already-resolved colors); any other
// styling is associated externally by the renderer or exporter.
type Primitive interface {

	// Bounds returns the 2D bounding box of the primitive.
	// The second return value is false if the primitive is empty
	// and has no meaningful bounds. 3D variants project onto their
	// x/y components for bounding purposes.
	Bounds() (math32.Box2, bool)

	isPrimitive()
}

// HorizontalAlign specifies horizontal text alignment relative to the
// text position.
type HorizontalAlign int32

const (
	Left HorizontalAlign = iota
	Center
	Right
)

// VerticalAlign specifies vertical text alignment relative to the
// text position.
type VerticalAlign int32

const (
	Top VerticalAlign = iota
	Middle
	Baseline
	Bottom
)

// Stroke is an outline color and width pair for styled primitives.
type Stroke struct {
	Color colors.Color
	Width float32
}

// Point is a single 2D point.
type Point struct {
	XY math32.Vector2
}

// Points is a set of 2D points, as one primitive (e.g., one scatter layer).
type Points struct {
	XYs []math32.Vector2
}

// Line is a single 2D line segment.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
}

// LineStrip is a polyline through consecutive points.
type LineStrip struct {
	XYs []math32.Vector2
}

// Rectangle is an axis-aligned rectangle with no styling.
type Rectangle struct {
	Box math32.Box2
}

// RectangleStyled is an axis-aligned rectangle with a resolved fill
// color and an optional stroke.
type RectangleStyled struct {
	Box    math32.Box2
	Fill   colors.Color
	Stroke *Stroke
}

// Circle is a circle with the given center and radius.
type Circle struct {
	Center math32.Vector2
	Radius float32
}

// CircleStyled is a circle with a resolved fill color, as emitted by
// depth-attenuating 3D layers.
type CircleStyled struct {
	Center math32.Vector2
	Radius float32
	Fill   colors.Color
}

// Text is a styled text run anchored at Position per its alignment.
type Text struct {
	Position math32.Vector2
	Content  string
	Size     float32
	Color    colors.Color
	HAlign   HorizontalAlign
	VAlign   VerticalAlign
}

// TriangleList is a set of triangles given as consecutive vertex triples.
type TriangleList struct {
	XYs []math32.Vector2
}

// Point3D is a single 3D point, for pass-through to 3D-aware backends.
type Point3D struct {
	XYZ math32.Vector3
}

// Line3D is a single 3D line segment, for pass-through to 3D-aware backends.
type Line3D struct {
	Start math32.Vector3
	End   math32.Vector3
}

func (p Point) isPrimitive()           {}
func (p Points) isPrimitive()          {}
func (p Line) isPrimitive()            {}
func (p LineStrip) isPrimitive()       {}
func (p Rectangle) isPrimitive()       {}
func (p RectangleStyled) isPrimitive() {}
func (p Circle) isPrimitive()          {}
func (p CircleStyled) isPrimitive()    {}
func (p Text) isPrimitive()            {}
func (p TriangleList) isPrimitive()    {}
func (p Point3D) isPrimitive()         {}
func (p Line3D) isPrimitive()          {}

func (p Point) Bounds() (math32.Box2, bool) {
	return math32.Box2{Min: p.XY, Max: p.XY}, true
}

func (p Points) Bounds() (math32.Box2, bool) {
	return pointsBounds(p.XYs)
}

func (p Line) Bounds() (math32.Box2, bool) {
	return math32.Box2{Min: p.Start.Min(p.End), Max: p.Start.Max(p.End)}, true
}

func (p LineStrip) Bounds() (math32.Box2, bool) {
	return pointsBounds(p.XYs)
}

func (p Rectangle) Bounds() (math32.Box2, bool) {
	return p.Box, true
}

func (p RectangleStyled) Bounds() (math32.Box2, bool) {
	return p.Box, true
}

// Bounds for a circle are center +/- radius on both axes.
func (p Circle) Bounds() (math32.Box2, bool) {
	r := math32.Vector2Scalar(p.Radius)
	return math32.Box2{Min: p.Center.Sub(r), Max: p.Center.Add(r)}, true
}

func (p CircleStyled) Bounds() (math32.Box2, bool) {
	r := math32.Vector2Scalar(p.Radius)
	return math32.Box2{Min: p.Center.Sub(r), Max: p.Center.Add(r)}, true
}

// Bounds for text are the anchor position only: the core does not
// shape text, so the extent is unknown here.
func (p Text) Bounds() (math32.Box2, bool) {
	return math32.Box2{Min: p.Position, Max: p.Position}, true
}

func (p TriangleList) Bounds() (math32.Box2, bool) {
	return pointsBounds(p.XYs)
}

func (p Point3D) Bounds() (math32.Box2, bool) {
	xy := p.XYZ.ToVector2()
	return math32.Box2{Min: xy, Max: xy}, true
}

func (p Line3D) Bounds() (math32.Box2, bool) {
	s, e := p.Start.ToVector2(), p.End.ToVector2()
	return math32.Box2{Min: s.Min(e), Max: s.Max(e)}, true
}

func pointsBounds(xys []math32.Vector2) (math32.Box2, bool) {
	if len(xys) == 0 {
		return math32.B2Empty(), false
	}
	b := math32.B2Empty()
	b.ExpandByPoints(xys)
	return b, true
}
