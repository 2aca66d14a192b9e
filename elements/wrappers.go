// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Opacity wraps a child in a plain container view with the given
// opacity applied to its resolved attributes.
type Opacity struct {

	// Child is the wrapped element.
	Child element.Element

	// Alpha is the opacity in [0, 1].
	Alpha float32
}

func (o Opacity) Content() element.Content {
	return element.Content{
		Layout:   layout.Inset{},
		Children: []element.Child{{Element: o.Child}},
		Alpha:    &o.Alpha,
	}
}

func (o Opacity) Description(e env.Env) *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}

// Transformed wraps a child in a plain container view with the given
// affine transform applied to its resolved attributes.
type Transformed struct {

	// Child is the wrapped element.
	Child element.Element

	// Transform is the transform to apply.
	Transform math32.Matrix2
}

func (t Transformed) Content() element.Content {
	return element.Content{
		Layout:    layout.Inset{},
		Children:  []element.Child{{Element: t.Child}},
		Transform: &t.Transform,
	}
}

func (t Transformed) Description(e env.Env) *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}

// TransitionContainer wraps a child in a plain container view carrying
// transition declarations and an animation policy, so that any element
// can be given appearance, disappearance, and layout transitions.
type TransitionContainer struct {

	// Child is the wrapped element.
	Child element.Element

	// Appearing is the transition played when the container appears.
	Appearing *view.Transition

	// Disappearing is the transition played when the container is
	// removed.
	Disappearing *view.Transition

	// Layout is the transition used when the container's layout
	// attributes change.
	Layout *view.LayoutTransition

	// Animations optionally overrides whether animations are
	// permitted for the container's subtree.
	Animations view.AnimationPolicy
}

func (tc TransitionContainer) Content() element.Content {
	return element.Content{
		Layout:   layout.Inset{},
		Children: []element.Child{{Element: tc.Child}},
	}
}

func (tc TransitionContainer) Description(e env.Env) *view.Description {
	d := view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
	d.Appearing = tc.Appearing
	d.Disappearing = tc.Disappearing
	d.Layout = tc.Layout
	d.Animations = tc.Animations
	return d
}
