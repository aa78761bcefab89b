// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a vector/point in homogeneous coordinates
// with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vec4(v.X, v.Y, v.Z, w)
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vec4(v.X+other.X, v.Y+other.Y, v.Z+other.Z, v.W+other.W)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vec4(v.X-other.X, v.Y-other.Y, v.Z-other.Z, v.W-other.W)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vec4(v.X*s, v.Y*s, v.Z*s, v.W*s)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// PerspectiveDiv returns the X, Y and Z components of this vector
// divided by the W component, mapping clip space to normalized
// device coordinates. W must be non-zero.
func (v Vector4) PerspectiveDiv() Vector3 {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}

// ToVector3 returns a [Vector3] with the X, Y and Z components of this vector.
func (v Vector4) ToVector3() Vector3 {
	return Vec3(v.X, v.Y, v.Z)
}
