// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is a 3x3 matrix in column-major order, used for
// homogeneous 2D affine transforms.
type Matrix3 [9]float32

// Identity3 returns a new 3x3 identity matrix.
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// Matrix3Translate2D returns a new 3x3 matrix translating by the given offsets.
func Matrix3Translate2D(x, y float32) Matrix3 {
	m := Identity3()
	m[6] = x
	m[7] = y
	return m
}

// Matrix3Scale2D returns a new 3x3 matrix scaling by the given factors.
func Matrix3Scale2D(x, y float32) Matrix3 {
	m := Identity3()
	m[0] = x
	m[4] = y
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix3) SetIdentity() {
	*m = Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Set sets all the elements of this matrix row by row starting at
// row 1, column 1 up to row 3, column 3.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// Mul returns this matrix times the other given matrix.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	nm := Matrix3{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix to a times b.
func (m *Matrix3) MulMatrices(a, b Matrix3) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c*3+r] = a[r]*b[c*3] + a[3+r]*b[c*3+1] + a[6+r]*b[c*3+2]
		}
	}
}

// MulVector2AsPoint returns the given 2D point transformed by this matrix
// as a homogeneous point with an implicit third coordinate of 1.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(
		m[0]*v.X+m[3]*v.Y+m[6],
		m[1]*v.X+m[4]*v.Y+m[7],
	)
}

// MulVector2AsVector returns the given 2D vector transformed by this matrix
// without translation (implicit third coordinate of 0).
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(
		m[0]*v.X+m[3]*v.Y,
		m[1]*v.X+m[4]*v.Y,
	)
}
