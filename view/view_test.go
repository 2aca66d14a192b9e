// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"cogentcore.org/compose/math32"
	"github.com/stretchr/testify/assert"
)

// layoutView counts LayoutSubviews invocations.
type layoutView struct {
	ViewBase
	layouts int
}

func (lv *layoutView) LayoutSubviews() {
	lv.layouts++
}

func TestInitialize(t *testing.T) {
	v := NewContainerView()
	assert.Equal(t, View(v), v.This)
	assert.Equal(t, float32(1), v.Alpha)
	assert.True(t, v.Transform.IsIdentity())
}

func TestSubviews(t *testing.T) {
	parent := NewContainerView()
	a := NewContainerView()
	b := NewContainerView()
	c := NewContainerView()

	parent.InsertSubview(a, 0)
	parent.InsertSubview(b, 1)
	parent.InsertSubview(c, 99) // out of range appends
	assert.Equal(t, []View{a, b, c}, parent.Subviews)
	assert.Equal(t, View(parent), a.Superview)

	parent.MoveSubview(c, 0)
	assert.Equal(t, []View{c, a, b}, parent.Subviews)

	b.RemoveFromSuperview()
	assert.Equal(t, []View{c, a}, parent.Subviews)
	assert.Nil(t, b.Superview)
	b.RemoveFromSuperview() // no-op without superview
}

func TestReparent(t *testing.T) {
	p1 := NewContainerView()
	p2 := NewContainerView()
	v := NewContainerView()

	p1.InsertSubview(v, 0)
	p2.InsertSubview(v, 0)
	assert.Empty(t, p1.Subviews)
	assert.Equal(t, []View{v}, p2.Subviews)
	assert.Equal(t, View(p2), v.Superview)
}

func TestLayoutIfNeeded(t *testing.T) {
	lv := Initialize(&layoutView{})
	lv.LayoutIfNeeded()
	assert.Equal(t, 0, lv.layouts)

	lv.SetNeedsLayout()
	lv.LayoutIfNeeded()
	lv.LayoutIfNeeded() // flag consumed by first pass
	assert.Equal(t, 1, lv.layouts)
}

func TestWalkDown(t *testing.T) {
	parent := NewContainerView()
	a := NewContainerView()
	b := NewContainerView()
	parent.InsertSubview(a, 0)
	a.InsertSubview(b, 0)

	var visited []View
	parent.WalkDown(func(v View) bool {
		visited = append(visited, v)
		return true
	})
	assert.Equal(t, []View{parent, a, b}, visited)

	visited = nil
	parent.WalkDown(func(v View) bool {
		visited = append(visited, v)
		return v.AsView() != a.AsView()
	})
	assert.Equal(t, []View{parent, a}, visited)
}

func TestDescribe(t *testing.T) {
	d := Describe(func() *ContainerView { return &ContainerView{} })
	v := d.Build()
	assert.IsType(t, &ContainerView{}, v)
	assert.Equal(t, float32(1), v.AsView().Alpha)

	d2 := Describe(func() *layoutView { return &layoutView{} })
	assert.True(t, Compatible(d, d))
	assert.False(t, Compatible(d, d2))
	assert.True(t, Compatible(nil, nil))
	assert.False(t, Compatible(d, nil))
}

func TestTransitions(t *testing.T) {
	f := Fade(0)
	assert.Equal(t, float32(0), f.Alpha)
	assert.True(t, f.Transform.IsIdentity())

	s := Slide(math32.Vec2(0, 20), 0)
	assert.Equal(t, math32.Vec2(5, 24), s.Transform.MulVector2AsPoint(math32.Vec2(5, 4)))

	assert.Equal(t, float32(0.5), Linear(0.5))
	assert.Equal(t, float32(0), EaseInOut(0))
	assert.Equal(t, float32(1), EaseInOut(1))
	assert.Equal(t, float32(0.5), EaseInOut(0.5))
}
