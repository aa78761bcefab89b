// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"

	"github.com/scenicviz/scenic/math32"
)

// ErrDegenerateGeometry is reported for zero-width or zero-height data
// or screen bounds in a coordinate system.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// CoordinateSystem maps data-space points to a screen region and back.
type CoordinateSystem interface {

	// DataToScreen maps a data-space point to screen space.
	DataToScreen(p math32.Vector2) math32.Vector2

	// ScreenToData maps a screen-space point back to data space.
	// It is the inverse of DataToScreen to floating tolerance.
	ScreenToData(p math32.Vector2) math32.Vector2

	// TransformMatrix returns the homogeneous 2D matrix equivalent
	// to DataToScreen, including any axis flip.
	TransformMatrix() math32.Matrix3
}

// CartesianCoords is a 2D Cartesian coordinate system mapping a data
// bounds rectangle onto a screen bounds rectangle with independent
// affine scaling per axis. With FlipY set (the default), increasing
// data Y maps to decreasing screen Y, reconciling a bottom-left data
// origin with a top-left screen origin.
//
// A zero-size span on either axis of either bounds is degenerate:
// points on that axis map to the midpoint of the target bounds
// (mirroring the Scale policy of normalizing a degenerate domain
// to 0.5) instead of producing NaN or infinity. Use [CartesianCoords.Validate]
// to detect degenerate bounds up front.
type CartesianCoords struct {
	DataBounds   math32.Box2
	ScreenBounds math32.Box2
	FlipY        bool
}

// NewCartesianCoords returns a new [CartesianCoords] mapping the given
// data bounds onto the given screen bounds, with FlipY on.
func NewCartesianCoords(dataBounds, screenBounds math32.Box2) *CartesianCoords {
	return &CartesianCoords{DataBounds: dataBounds, ScreenBounds: screenBounds, FlipY: true}
}

// Validate reports an error wrapping [ErrDegenerateGeometry] if either
// bounds rectangle has a zero-size span on either axis.
func (cc *CartesianCoords) Validate() error {
	ds, ss := cc.DataBounds.Size(), cc.ScreenBounds.Size()
	if ds.X == 0 || ds.Y == 0 {
		return fmt.Errorf("%w: data bounds %v have a zero span", ErrDegenerateGeometry, cc.DataBounds)
	}
	if ss.X == 0 || ss.Y == 0 {
		return fmt.Errorf("%w: screen bounds %v have a zero span", ErrDegenerateGeometry, cc.ScreenBounds)
	}
	return nil
}

// XScale returns the screen-per-data scale factor on the X axis,
// and false if either X span is zero.
func (cc *CartesianCoords) XScale() (float32, bool) {
	dw := cc.DataBounds.Size().X
	sw := cc.ScreenBounds.Size().X
	if dw == 0 || sw == 0 {
		return 0, false
	}
	return sw / dw, true
}

// YScale returns the screen-per-data scale factor on the Y axis,
// and false if either Y span is zero.
func (cc *CartesianCoords) YScale() (float32, bool) {
	dh := cc.DataBounds.Size().Y
	sh := cc.ScreenBounds.Size().Y
	if dh == 0 || sh == 0 {
		return 0, false
	}
	return sh / dh, true
}

func (cc *CartesianCoords) DataToScreen(p math32.Vector2) math32.Vector2 {
	var sp math32.Vector2
	if sx, ok := cc.XScale(); ok {
		sp.X = (p.X-cc.DataBounds.Min.X)*sx + cc.ScreenBounds.Min.X
	} else {
		sp.X = cc.ScreenBounds.Center().X
	}
	if sy, ok := cc.YScale(); ok {
		if cc.FlipY {
			sp.Y = cc.ScreenBounds.Max.Y - (p.Y-cc.DataBounds.Min.Y)*sy
		} else {
			sp.Y = (p.Y-cc.DataBounds.Min.Y)*sy + cc.ScreenBounds.Min.Y
		}
	} else {
		sp.Y = cc.ScreenBounds.Center().Y
	}
	return sp
}

func (cc *CartesianCoords) ScreenToData(p math32.Vector2) math32.Vector2 {
	var dp math32.Vector2
	if sx, ok := cc.XScale(); ok {
		dp.X = (p.X-cc.ScreenBounds.Min.X)/sx + cc.DataBounds.Min.X
	} else {
		dp.X = cc.DataBounds.Center().X
	}
	if sy, ok := cc.YScale(); ok {
		if cc.FlipY {
			dp.Y = cc.DataBounds.Max.Y - (p.Y-cc.ScreenBounds.Min.Y)/sy
		} else {
			dp.Y = (p.Y-cc.ScreenBounds.Min.Y)/sy + cc.DataBounds.Min.Y
		}
	} else {
		dp.Y = cc.DataBounds.Center().Y
	}
	return dp
}

// TransformMatrix returns the homogeneous matrix reproducing
// DataToScreen exactly, including the Y flip and the degenerate
// midpoint fallback (a degenerate axis gets scale 0 and the midpoint
// as translation).
func (cc *CartesianCoords) TransformMatrix() math32.Matrix3 {
	var sx, sy, tx, ty float32
	if xs, ok := cc.XScale(); ok {
		sx = xs
		tx = cc.ScreenBounds.Min.X - cc.DataBounds.Min.X*sx
	} else {
		tx = cc.ScreenBounds.Center().X
	}
	if ys, ok := cc.YScale(); ok {
		if cc.FlipY {
			sy = -ys
			ty = cc.ScreenBounds.Max.Y + cc.DataBounds.Min.Y*ys
		} else {
			sy = ys
			ty = cc.ScreenBounds.Min.Y - cc.DataBounds.Min.Y*ys
		}
	} else {
		ty = cc.ScreenBounds.Center().Y
	}
	m := math32.Matrix3{}
	m.Set(
		sx, 0, tx,
		0, sy, ty,
		0, 0, 1,
	)
	return m
}
