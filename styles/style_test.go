// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/scenicviz/scenic/colors"
	"github.com/stretchr/testify/assert"
)

func TestStyleDefaults(t *testing.T) {
	st := NewStyle()
	assert.Equal(t, colors.Blue, *st.Fill)
	assert.Equal(t, colors.Black, *st.Stroke)
	assert.Equal(t, float32(1), st.StrokeWidth)
	assert.Equal(t, Solid, st.Line)
	assert.Equal(t, Circle, st.Marker)
	assert.Equal(t, float32(3), st.MarkerSize)
	assert.Equal(t, float32(1), st.Opacity)
}

func TestStyleChaining(t *testing.T) {
	st := NewStyle().
		SetFill(colors.Red).
		SetStroke(colors.Green, 2).
		SetMarker(Diamond, 7).
		SetOpacity(0.5)

	assert.Equal(t, colors.Red, *st.Fill)
	assert.Equal(t, colors.Green, *st.Stroke)
	assert.Equal(t, float32(2), st.StrokeWidth)
	assert.Equal(t, Diamond, st.Marker)
	assert.Equal(t, float32(7), st.MarkerSize)
	assert.Equal(t, float32(0.5), st.Opacity)
}

func TestStyleOpacityClamp(t *testing.T) {
	assert.Equal(t, float32(0), NewStyle().SetOpacity(-1).Opacity)
	assert.Equal(t, float32(1), NewStyle().SetOpacity(2).Opacity)
}
