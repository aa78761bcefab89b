// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec2(1, 2))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec2(0, 0), b.Size())

	b.ExpandByPoint(Vec2(-1, 4))
	assert.Equal(t, B2(-1, 2, 1, 4), b)
	assert.Equal(t, Vec2(2, 2), b.Size())
	assert.Equal(t, Vec2(0, 3), b.Center())

	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.True(t, b.ContainsPoint(Vec2(-1, 2)))
	assert.False(t, b.ContainsPoint(Vec2(2, 3)))
}

func TestBox2SetFromPoints(t *testing.T) {
	b := Box2{}
	b.SetFromPoints([]Vector2{Vec2(3, 1), Vec2(-2, 5), Vec2(0, 0)})
	assert.Equal(t, B2(-2, 0, 3, 5), b)

	other := B2(4, 4, 6, 6)
	b.ExpandByBox(other)
	assert.Equal(t, B2(-2, 0, 6, 6), b)
}

func TestBox2Fixed(t *testing.T) {
	b := B2(1, 2, 3, 4)
	fx := b.ToFixed()
	back := B2FromFixed(fx)
	assert.Equal(t, b, back)
}
