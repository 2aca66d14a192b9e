// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFace(t *testing.T) {
	f := Default(16)
	require.NotNil(t, f)
	assert.Equal(t, float32(16), f.Size())
	assert.Greater(t, f.Height(), float32(0))
}

func TestAdvance(t *testing.T) {
	f := Default(16)
	assert.Equal(t, float32(0), f.Advance(""))

	short := f.Advance("hi")
	long := f.Advance("hello there")
	assert.Greater(t, short, float32(0))
	assert.Greater(t, long, short)

	// Advance scales with the font size.
	big := Default(32).Advance("hi")
	assert.Greater(t, big, short)
}

func TestMeasure(t *testing.T) {
	f := Default(16)
	one := f.Measure("hello")
	assert.Greater(t, one.X, float32(0))
	assert.Greater(t, one.Y, float32(0))

	// Two lines are as wide as the widest line and about twice as tall.
	two := f.Measure("hello\nhi")
	assert.Equal(t, one.X, two.X)
	assert.InDelta(t, one.Y*2, two.Y, 2)
}

func TestNewFaceInvalid(t *testing.T) {
	_, err := NewFace([]byte("not a font"), 16)
	assert.Error(t, err)
}
