// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"testing"

	"cogentcore.org/compose/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	e := Env{}
	assert.Equal(t, float32(1), Get(e, DisplayScale))
	assert.Equal(t, math32.SideFloats{}, Get(e, SafeAreaInsets))
	assert.Equal(t, LeftToRight, Get(e, Direction))
	assert.Equal(t, math32.Vector2{}, Get(e, WindowSize))
}

func TestSetGet(t *testing.T) {
	e := Set(Env{}, DisplayScale, 2)
	assert.Equal(t, float32(2), Get(e, DisplayScale))

	e = Set(e, Direction, RightToLeft)
	assert.Equal(t, float32(2), Get(e, DisplayScale))
	assert.Equal(t, RightToLeft, Get(e, Direction))
}

func TestImmutable(t *testing.T) {
	base := Set(Env{}, DisplayScale, 2)
	derived := Set(base, DisplayScale, 3)
	assert.Equal(t, float32(2), Get(base, DisplayScale))
	assert.Equal(t, float32(3), Get(derived, DisplayScale))
}

func TestCustomKey(t *testing.T) {
	theme := NewKey("theme", "light")
	e := Env{}
	assert.Equal(t, "light", Get(e, theme))
	e = Set(e, theme, "dark")
	assert.Equal(t, "dark", Get(e, theme))

	// A distinct key value with the same name is a distinct entry.
	other := NewKey("theme", "light")
	assert.Equal(t, "light", Get(e, other))
}
