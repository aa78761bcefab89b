// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/scenicviz/scenic/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = FromHex("00ff00")
	assert.NoError(t, err)
	assert.Equal(t, Green, c)

	c, err = FromHex("#808080")
	assert.NoError(t, err)
	tolassert.EqualTol(t, 128.0/255, c.R, 1.0e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestFromHexInvalid(t *testing.T) {
	for _, bad := range []string{"", "#fff", "#ff00000", "zzzzzz", "#gg0000"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestMustFromHex(t *testing.T) {
	assert.Equal(t, Blue, MustFromHex("#0000ff"))
	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestArithmetic(t *testing.T) {
	c := New(0.2, 0.4, 0.6, 1)

	sum := c.Add(New(0.1, 0.1, 0.1, 0))
	tolassert.Equal(t, 0.3, sum.R)
	tolassert.Equal(t, 0.5, sum.G)
	tolassert.Equal(t, 0.7, sum.B)
	tolassert.Equal(t, 1, sum.A)

	mod := c.Mul(RGB(0.5, 0.5, 0.5))
	tolassert.Equal(t, 0.1, mod.R)
	tolassert.Equal(t, 0.2, mod.G)
	tolassert.Equal(t, 0.3, mod.B)

	sc := c.MulScalar(0.5)
	tolassert.Equal(t, 0.5, sc.A)
}

func TestAttenuate(t *testing.T) {
	c := RGB(0.4, 0.6, 0.8).Attenuate(0.5)
	tolassert.Equal(t, 0.2, c.R)
	tolassert.Equal(t, 0.3, c.G)
	tolassert.Equal(t, 0.4, c.B)
	// Alpha is untouched by attenuation.
	assert.Equal(t, float32(1), c.A)
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	assert.Equal(t, float32(0.25), c.A)
	assert.Equal(t, float32(1), c.R)
}
