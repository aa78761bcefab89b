// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers within a tolerance.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two given numbers are within 1.0e-4 of each other.
func Equal(t *testing.T, expected, actual float32, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol(t *testing.T, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualTolSlice asserts that the elements of the two given slices are
// pairwise within the given tolerance of each other.
func EqualTolSlice(t *testing.T, expected, actual []float32, tolerance float32) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	ok := true
	for i, ev := range expected {
		if !EqualTol(t, ev, actual[i], tolerance, "index", i) {
			ok = false
		}
	}
	return ok
}
