// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix in column-major order.
type Matrix4 [16]float32

// Identity4 returns a new 4x4 identity matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// NewLookAt returns a new right-handed look-at view matrix for a viewer
// at eye looking at target with the given up direction. up and the
// eye-to-target direction must not be parallel.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	m := Matrix4{}
	m.SetLookAt(eye, target, up)
	return m
}

// NewPerspective returns a new symmetric perspective projection matrix
// for the given vertical field of view in radians, aspect ratio
// (width / height), and near and far clip plane distances
// (0 < near < far). Depth maps to [0, 1]: points on the near plane
// project to NDC z = 0 and points on the far plane to z = 1.
func NewPerspective(fov, aspect, near, far float32) Matrix4 {
	m := Matrix4{}
	m.SetPerspective(fov, aspect, near, far)
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns this matrix times the other given matrix.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix to a times b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[r]*b0 + a[4+r]*b1 + a[8+r]*b2 + a[12+r]*b3
		}
	}
}

// MulVector4 returns the given vector transformed by this matrix.
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return Vec4(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12]*v.W,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13]*v.W,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14]*v.W,
		m[3]*v.X+m[7]*v.Y+m[11]*v.Z+m[15]*v.W,
	)
}

// MulVector3AsPoint returns the given 3D point transformed by this matrix
// as a homogeneous point with an implicit fourth coordinate of 1,
// without perspective division.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).ToVector3()
}

// SetLookAt sets this matrix to a right-handed look-at view matrix.
// See [NewLookAt].
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	fwd := target.Sub(eye).Normal()
	side := fwd.Cross(up).Normal()
	upn := side.Cross(fwd)

	m[0] = side.X
	m[1] = upn.X
	m[2] = -fwd.X
	m[3] = 0
	m[4] = side.Y
	m[5] = upn.Y
	m[6] = -fwd.Y
	m[7] = 0
	m[8] = side.Z
	m[9] = upn.Z
	m[10] = -fwd.Z
	m[11] = 0
	m[12] = -side.Dot(eye)
	m[13] = -upn.Dot(eye)
	m[14] = fwd.Dot(eye)
	m[15] = 1
}

// SetPerspective sets this matrix to a symmetric perspective projection
// with zero-to-one depth. See [NewPerspective].
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(fov/2)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
}
