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

// Triangle is one face of a [Mesh3D], with a flat normal shared by all
// three vertices.
type Triangle struct {
	Vertices [3]math32.Vector3
	Normal   math32.Vector3
	Color    colors.Color
}

// NewTriangle returns a new [Triangle] over the given vertices, with
// the flat face normal computed from the winding order and a light
// lavender color.
func NewTriangle(v0, v1, v2 math32.Vector3) Triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return Triangle{
		Vertices: [3]math32.Vector3{v0, v1, v2},
		Normal:   e1.Cross(e2).Normal(),
		Color:    colors.RGB(0.7, 0.7, 0.9),
	}
}

// SetColor sets the face color and returns the triangle for chaining.
func (tr Triangle) SetColor(clr colors.Color) Triangle {
	tr.Color = clr
	return tr
}

// Centroid returns the average of the three vertices.
func (tr Triangle) Centroid() math32.Vector3 {
	return tr.Vertices[0].Add(tr.Vertices[1]).Add(tr.Vertices[2]).MulScalar(1.0 / 3.0)
}

// Mesh3D is a triangle mesh rendered as a wireframe: each triangle
// whose three vertices all project inside the frustum contributes its
// three edges as 2D lines.
type Mesh3D struct {
	Triangles []Triangle
}

// NewMesh3D returns a new empty [Mesh3D].
func NewMesh3D() *Mesh3D {
	return &Mesh3D{}
}

// AddTriangle appends a triangle and returns the mesh for chaining.
func (ms *Mesh3D) AddTriangle(tr Triangle) *Mesh3D {
	ms.Triangles = append(ms.Triangles, tr)
	return ms
}

// Mesh3DFromIndices builds a mesh from a vertex list and consecutive
// index triples. A trailing partial triple is ignored.
func Mesh3DFromIndices(vertices []math32.Vector3, indices []int, clr colors.Color) *Mesh3D {
	ms := NewMesh3D()
	for i := 0; i+2 < len(indices); i += 3 {
		tr := NewTriangle(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]).SetColor(clr)
		ms.AddTriangle(tr)
	}
	return ms
}

// NewCube returns a cube mesh of the given edge length centered at the
// origin, with 12 triangles.
func NewCube(size float32) *Mesh3D {
	s := size / 2
	vertices := []math32.Vector3{
		math32.Vec3(-s, -s, -s),
		math32.Vec3(s, -s, -s),
		math32.Vec3(s, s, -s),
		math32.Vec3(-s, s, -s),
		math32.Vec3(-s, -s, s),
		math32.Vec3(s, -s, s),
		math32.Vec3(s, s, s),
		math32.Vec3(-s, s, s),
	}
	indices := []int{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
		0, 3, 7, 0, 7, 4,
		1, 5, 6, 1, 6, 2,
		3, 2, 6, 3, 6, 7,
		0, 4, 5, 0, 5, 1,
	}
	return Mesh3DFromIndices(vertices, indices, colors.RGB(0.8, 0.8, 0.9))
}

// NewSphere returns a UV sphere mesh of the given radius centered at
// the origin. The ring count is floored at 3, with twice as many
// sectors as rings.
func NewSphere(radius float32, rings int) *Mesh3D {
	if rings < 3 {
		rings = 3
	}
	sectors := rings * 2
	if sectors < 6 {
		sectors = 6
	}

	var vertices []math32.Vector3
	for i := 0; i <= rings; i++ {
		lat := math32.Pi*float32(i)/float32(rings) - math32.Pi/2
		y := radius * math32.Sin(lat)
		r := radius * math32.Cos(lat)
		for j := 0; j <= sectors; j++ {
			lon := 2 * math32.Pi * float32(j) / float32(sectors)
			vertices = append(vertices, math32.Vec3(r*math32.Cos(lon), y, r*math32.Sin(lon)))
		}
	}

	var indices []int
	for i := 0; i < rings; i++ {
		ring := i * (sectors + 1)
		next := (i + 1) * (sectors + 1)
		for j := 0; j < sectors; j++ {
			indices = append(indices,
				ring+j, next+j+1, ring+j+1,
				ring+j, next+j, next+j+1)
		}
	}
	return Mesh3DFromIndices(vertices, indices, colors.RGB(0.7, 0.9, 0.7))
}

// NewCylinder returns a cylinder mesh of the given radius and height
// centered at the origin, with its axis along Y. The segment count is
// floored at 3.
func NewCylinder(radius, height float32, segments int) *Mesh3D {
	if segments < 3 {
		segments = 3
	}
	hh := height / 2

	vertices := []math32.Vector3{
		math32.Vec3(0, -hh, 0),
		math32.Vec3(0, hh, 0),
	}
	for i := 0; i < segments; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segments)
		x := radius * math32.Cos(ang)
		z := radius * math32.Sin(ang)
		vertices = append(vertices, math32.Vec3(x, -hh, z), math32.Vec3(x, hh, z))
	}

	var indices []int
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		indices = append(indices, 0, 2+i*2, 2+next*2)
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		indices = append(indices, 1, 3+next*2, 3+i*2)
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		bc, tc := 2+i*2, 3+i*2
		bn, tn := 2+next*2, 3+next*2
		indices = append(indices, bc, tc, bn, bn, tc, tn)
	}
	return Mesh3DFromIndices(vertices, indices, colors.RGB(0.9, 0.7, 0.7))
}

// NewCone returns a cone mesh with its base at the origin and apex at
// (0, height, 0). The segment count is floored at 3.
func NewCone(radius, height float32, segments int) *Mesh3D {
	if segments < 3 {
		segments = 3
	}

	vertices := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(0, height, 0),
	}
	for i := 0; i < segments; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segments)
		vertices = append(vertices, math32.Vec3(radius*math32.Cos(ang), 0, radius*math32.Sin(ang)))
	}

	var indices []int
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		indices = append(indices, 0, 2+i, 2+next)
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		indices = append(indices, 1, 2+next, 2+i)
	}
	return Mesh3DFromIndices(vertices, indices, colors.RGB(0.8, 0.8, 0.6))
}

// NewTorus returns a torus mesh centered at the origin with its axis
// along Y. Both segment counts are floored at 3.
func NewTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh3D {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	var vertices []math32.Vector3
	for i := 0; i < majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		cu, su := math32.Cos(u), math32.Sin(u)
		for j := 0; j < minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			cv, sv := math32.Cos(v), math32.Sin(v)
			vertices = append(vertices, math32.Vec3(
				(majorRadius+minorRadius*cv)*cu,
				minorRadius*sv,
				(majorRadius+minorRadius*cv)*su,
			))
		}
	}

	var indices []int
	for i := 0; i < majorSegments; i++ {
		ni := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			nj := (j + 1) % minorSegments
			a := i*minorSegments + j
			b := ni*minorSegments + j
			c := ni*minorSegments + nj
			d := i*minorSegments + nj
			indices = append(indices, a, b, d, b, c, d)
		}
	}
	return Mesh3DFromIndices(vertices, indices, colors.RGB(0.9, 0.6, 0.9))
}

// TriangleCount returns the number of triangles in the mesh.
func (ms *Mesh3D) TriangleCount() int {
	return len(ms.Triangles)
}

// Bounds returns the data-space extent of the mesh vertices on each
// axis. It reports false when the mesh is empty.
func (ms *Mesh3D) Bounds() (x, y, z minmax.F32, ok bool) {
	if len(ms.Triangles) == 0 {
		return
	}
	x.SetInfinity()
	y.SetInfinity()
	z.SetInfinity()
	for _, tr := range ms.Triangles {
		for _, v := range tr.Vertices {
			x.FitValInRange(v.X)
			y.FitValInRange(v.Y)
			z.FitValInRange(v.Z)
		}
	}
	return x, y, z, true
}

// Plot projects each triangle through the frame's camera and, when all
// three vertices are inside the frustum, emits its three edges as 2D
// lines in vertex order. Triangles with any culled vertex are skipped
// whole.
func (ms *Mesh3D) Plot(fr *Frame) []plot.Primitive {
	if len(ms.Triangles) == 0 {
		return nil
	}
	vp := fr.ViewProjection()

	var prims []plot.Primitive
	for _, tr := range ms.Triangles {
		var screen [3]math32.Vector2
		visible := true
		for i, v := range tr.Vertices {
			pr, ok := Project(&vp, v, fr.Viewport)
			if !ok {
				visible = false
				break
			}
			screen[i] = pr.Screen
		}
		if !visible {
			continue
		}
		prims = append(prims,
			plot.Line{Start: screen[0], End: screen[1]},
			plot.Line{Start: screen[1], End: screen[2]},
			plot.Line{Start: screen[2], End: screen[0]},
		)
	}
	return prims
}
