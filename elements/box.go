// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"image/color"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Box is a view-backed container holding at most one child, inset from
// its edges, with an optional background color. It is backed by a
// [BoxView].
type Box struct {

	// Child is the box's content; nil means an empty box.
	Child element.Element

	// Insets are the distances from the box edges to the child.
	Insets math32.SideFloats

	// Background is the box's fill color; the zero value means none.
	Background color.RGBA
}

func (b Box) Content() element.Content {
	c := element.Content{Layout: layout.Inset{Insets: b.Insets}}
	if b.Child != nil {
		c.Children = []element.Child{{Element: b.Child}}
	}
	return c
}

func (b Box) Description(e env.Env) *view.Description {
	d := view.Describe(func() *BoxView { return &BoxView{} })
	d.Apply = func(v view.View) {
		v.(*BoxView).Background = b.Background
	}
	return d
}

// BoxView is the backing view for [Box].
type BoxView struct {
	view.ViewBase

	// Background is the fill color.
	Background color.RGBA
}
