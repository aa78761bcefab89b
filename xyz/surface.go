// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/math32/minmax"
	"github.com/scenicviz/scenic/plot"
)

// SurfaceGrid is a regular grid of height samples: Points[i][j] is the
// point at row i (y), column j (x). Rows and Cols cache the grid
// dimensions.
type SurfaceGrid struct {
	Points [][]math32.Vector3
	Rows   int
	Cols   int
}

// SurfaceGridFromFunc samples z = f(x, y) over the given x and y
// ranges on a cols x rows grid.
func SurfaceGridFromFunc(xmin, xmax, ymin, ymax float32, cols, rows int, f func(x, y float32) float32) *SurfaceGrid {
	if cols < 2 || rows < 2 {
		return &SurfaceGrid{}
	}
	points := make([][]math32.Vector3, rows)
	for i := range points {
		y := ymin + (ymax-ymin)*float32(i)/float32(rows-1)
		row := make([]math32.Vector3, cols)
		for j := range row {
			x := xmin + (xmax-xmin)*float32(j)/float32(cols-1)
			row[j] = math32.Vec3(x, y, f(x, y))
		}
		points[i] = row
	}
	return &SurfaceGrid{Points: points, Rows: rows, Cols: cols}
}

// SurfaceGridFromData builds a grid from explicit x and y coordinates
// and z values indexed as zs[row][col].
func SurfaceGridFromData(xs, ys []float32, zs [][]float32) *SurfaceGrid {
	rows, cols := len(ys), len(xs)
	points := make([][]math32.Vector3, rows)
	for i, y := range ys {
		row := make([]math32.Vector3, cols)
		for j, x := range xs {
			row[j] = math32.Vec3(x, y, zs[i][j])
		}
		points[i] = row
	}
	return &SurfaceGrid{Points: points, Rows: rows, Cols: cols}
}

// Bounds returns the data-space extent of the grid on each axis.
// It reports false when the grid is empty.
func (sg *SurfaceGrid) Bounds() (x, y, z minmax.F32, ok bool) {
	if sg.Rows == 0 || sg.Cols == 0 {
		return
	}
	x.SetInfinity()
	y.SetInfinity()
	z.SetInfinity()
	for _, row := range sg.Points {
		for _, p := range row {
			x.FitValInRange(p.X)
			y.FitValInRange(p.Y)
			z.FitValInRange(p.Z)
		}
	}
	return x, y, z, true
}

// Surface3D renders a [SurfaceGrid] as a wireframe: each grid edge is
// projected through the frame's camera and emitted as a 2D line when
// both endpoints are inside the frustum.
type Surface3D struct {

	// Grid is the sampled surface.
	Grid *SurfaceGrid

	// Wireframe enables edge output. When false the layer emits
	// nothing.
	Wireframe bool

	// WireColor is the edge color.
	WireColor colors.Color
}

// NewSurface3D returns a new [Surface3D] over the given grid with
// wireframe enabled and a dark gray edge color.
func NewSurface3D(grid *SurfaceGrid) *Surface3D {
	return &Surface3D{
		Grid:      grid,
		Wireframe: true,
		WireColor: colors.RGB(0.3, 0.3, 0.3),
	}
}

// Surface3DFromFunc samples z = f(x, y) and returns a wireframe
// surface over the result.
func Surface3DFromFunc(xmin, xmax, ymin, ymax float32, cols, rows int, f func(x, y float32) float32) *Surface3D {
	return NewSurface3D(SurfaceGridFromFunc(xmin, xmax, ymin, ymax, cols, rows, f))
}

// SetWireframe toggles edge output and returns the surface for chaining.
func (sf *Surface3D) SetWireframe(on bool) *Surface3D {
	sf.Wireframe = on
	return sf
}

// SetWireColor sets the edge color and returns the surface for chaining.
func (sf *Surface3D) SetWireColor(clr colors.Color) *Surface3D {
	sf.WireColor = clr
	return sf
}

// Plot projects the grid edges through the frame's camera: first the
// row-direction edges, row by row, then the column-direction edges,
// column by column. An edge is emitted only when both endpoints are
// inside the frustum.
func (sf *Surface3D) Plot(fr *Frame) []plot.Primitive {
	if !sf.Wireframe || sf.Grid == nil || sf.Grid.Rows == 0 || sf.Grid.Cols == 0 {
		return nil
	}
	vp := fr.ViewProjection()

	var prims []plot.Primitive
	edge := func(a, b math32.Vector3) {
		pa, oka := Project(&vp, a, fr.Viewport)
		pb, okb := Project(&vp, b, fr.Viewport)
		if oka && okb {
			prims = append(prims, plot.Line{Start: pa.Screen, End: pb.Screen})
		}
	}

	for i := 0; i < sf.Grid.Rows; i++ {
		for j := 0; j < sf.Grid.Cols-1; j++ {
			edge(sf.Grid.Points[i][j], sf.Grid.Points[i][j+1])
		}
	}
	for j := 0; j < sf.Grid.Cols; j++ {
		for i := 0; i < sf.Grid.Rows-1; i++ {
			edge(sf.Grid.Points[i][j], sf.Grid.Points[i+1][j])
		}
	}
	return prims
}
