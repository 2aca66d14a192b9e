// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"testing"

	"cogentcore.org/compose/math32"
	"github.com/stretchr/testify/assert"
)

func TestAxisClamp(t *testing.T) {
	assert.Equal(t, float32(50), Any().Clamp(50))
	assert.Equal(t, float32(30), UpTo(30).Clamp(50))
	assert.Equal(t, float32(20), UpTo(30).Clamp(20))
	assert.Equal(t, float32(30), Exactly(30).Clamp(50))
	assert.Equal(t, float32(30), Exactly(30).Clamp(10))
}

func TestAxisMax(t *testing.T) {
	assert.True(t, math32.IsInf(Any().Max(), 1))
	assert.Equal(t, float32(30), UpTo(30).Max())
	assert.Equal(t, float32(30), Exactly(30).Max())
}

func TestConstraint(t *testing.T) {
	c := Size(math32.Vec2(100, 50))
	assert.Equal(t, math32.Vec2(100, 50), c.Clamp(math32.Vec2(1, 1)))
	assert.Equal(t, math32.Vec2(100, 50), c.Clamp(math32.Vec2(500, 500)))

	w := Within(math32.Vec2(100, 50))
	assert.Equal(t, math32.Vec2(1, 1), w.Clamp(math32.Vec2(1, 1)))
	assert.Equal(t, math32.Vec2(100, 50), w.Clamp(math32.Vec2(500, 500)))

	u := Unbounded()
	assert.Equal(t, math32.Vec2(500, 500), u.Clamp(math32.Vec2(500, 500)))
}
