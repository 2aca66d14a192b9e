// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
	"github.com/stretchr/testify/assert"
)

// fixedChild is a layout child with a fixed measured size.
type fixedChild struct {
	size math32.Vector2
	grow float32
}

func (fc fixedChild) Measure(c element.Constraint, e env.Env) math32.Vector2 {
	return c.Clamp(fc.size)
}

func (fc fixedChild) Grow() float32 {
	return fc.grow
}

func fixed(w, h float32) element.LayoutChild {
	return fixedChild{size: math32.Vec2(w, h)}
}

func growing(w, h, grow float32) element.LayoutChild {
	return fixedChild{size: math32.Vec2(w, h), grow: grow}
}

func TestInset(t *testing.T) {
	in := Inset{Insets: math32.NewSideFloats(10)}
	children := []element.LayoutChild{fixed(30, 20)}

	sz := in.Measure(element.Unbounded(), children, env.Env{})
	assert.Equal(t, math32.Vec2(50, 40), sz)

	frames := in.Place(math32.Vec2(100, 60), children, env.Env{})
	assert.Equal(t, []math32.Box2{math32.B2(10, 10, 90, 50)}, frames)

	// Empty inset measures to the insets alone.
	assert.Equal(t, math32.Vec2(20, 20), in.Measure(element.Unbounded(), nil, env.Env{}))
}

func TestInsetConstraint(t *testing.T) {
	in := Inset{Insets: math32.NewSideFloats(10)}
	// The child sees the container size minus insets as an upper bound.
	child := fixedChild{size: math32.Vec2(1000, 1000)}
	sz := in.Measure(element.Size(math32.Vec2(100, 60)), []element.LayoutChild{child}, env.Env{})
	assert.Equal(t, math32.Vec2(100, 60), sz)
}

func TestOverlay(t *testing.T) {
	children := []element.LayoutChild{fixed(30, 20), fixed(10, 50)}
	sz := Overlay{}.Measure(element.Unbounded(), children, env.Env{})
	assert.Equal(t, math32.Vec2(30, 50), sz)

	frames := Overlay{}.Place(math32.Vec2(30, 50), children, env.Env{})
	assert.Equal(t, []math32.Box2{math32.B2(0, 0, 30, 50), math32.B2(0, 0, 30, 50)}, frames)
}

func TestStackMeasure(t *testing.T) {
	st := Stack{Orientation: Vertical, Gap: 5}
	children := []element.LayoutChild{fixed(30, 20), fixed(50, 10)}
	sz := st.Measure(element.Unbounded(), children, env.Env{})
	assert.Equal(t, math32.Vec2(50, 35), sz)

	st.Orientation = Horizontal
	sz = st.Measure(element.Unbounded(), children, env.Env{})
	assert.Equal(t, math32.Vec2(85, 20), sz)
}

func TestStackPlace(t *testing.T) {
	st := Stack{Orientation: Vertical, Gap: 5}
	children := []element.LayoutChild{fixed(30, 20), fixed(50, 10)}
	frames := st.Place(math32.Vec2(50, 35), children, env.Env{})
	assert.Equal(t, math32.B2(0, 0, 30, 20), frames[0])
	assert.Equal(t, math32.B2(0, 25, 50, 35), frames[1])
}

func TestStackGrow(t *testing.T) {
	st := Stack{Orientation: Horizontal}
	children := []element.LayoutChild{growing(10, 10, 1), fixed(10, 10), growing(10, 10, 3)}
	frames := st.Place(math32.Vec2(70, 10), children, env.Env{})
	// 40 leftover split 1:3 between the growing children.
	assert.Equal(t, math32.B2(0, 0, 20, 10), frames[0])
	assert.Equal(t, math32.B2(20, 0, 30, 10), frames[1])
	assert.Equal(t, math32.B2(30, 0, 70, 10), frames[2])
}

func TestStackAlignment(t *testing.T) {
	children := []element.LayoutChild{fixed(30, 10)}
	size := math32.Vec2(30, 50)

	frames := Stack{Orientation: Horizontal, Alignment: Center}.Place(size, children, env.Env{})
	assert.Equal(t, math32.B2(0, 20, 30, 30), frames[0])

	frames = Stack{Orientation: Horizontal, Alignment: End}.Place(size, children, env.Env{})
	assert.Equal(t, math32.B2(0, 40, 30, 50), frames[0])

	frames = Stack{Orientation: Horizontal, Alignment: Stretch}.Place(size, children, env.Env{})
	assert.Equal(t, math32.B2(0, 0, 30, 50), frames[0])
}
