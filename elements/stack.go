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

// Stack arranges children sequentially along a main axis. It is a pure
// layout element: it contributes no backing view, and its children's
// views attach to the nearest view-backed ancestor.
type Stack struct {

	// Orientation is the main axis.
	Orientation layout.Orientation

	// Gap is the space between adjacent children.
	Gap float32

	// Alignment positions children along the cross axis.
	Alignment layout.Align

	// Children are the stack's children in order.
	Children []element.Child
}

// Column returns a vertical [Stack] of the given elements.
func Column(children ...element.Element) Stack {
	return Stack{Orientation: layout.Vertical, Children: Plain(children...)}
}

// Row returns a horizontal [Stack] of the given elements.
func Row(children ...element.Element) Stack {
	return Stack{Orientation: layout.Horizontal, Children: Plain(children...)}
}

// Plain wraps the given elements as unkeyed children.
func Plain(els ...element.Element) []element.Child {
	out := make([]element.Child, len(els))
	for i, el := range els {
		out[i] = element.Child{Element: el}
	}
	return out
}

// WithKey wraps the given element as a child with an explicit key.
func WithKey(key string, el element.Element) element.Child {
	return element.Child{Key: element.Key(key), Element: el}
}

// Growing wraps the given element as a child with the given flex grow
// factor.
func Growing(grow float32, el element.Element) element.Child {
	return element.Child{Grow: grow, Element: el}
}

func (s Stack) Content() element.Content {
	return element.Content{
		Layout: layout.Stack{
			Orientation: s.Orientation,
			Gap:         s.Gap,
			Alignment:   s.Alignment,
		},
		Children: s.Children,
	}
}

func (s Stack) Description(e env.Env) *view.Description {
	return nil
}

// Spacer is a pure layout leaf occupying a fixed size. Combined with
// [Growing] it absorbs leftover stack space.
type Spacer struct {

	// Size is the spacer's measured size.
	Size math32.Vector2
}

func (s Spacer) Content() element.Content {
	return element.Content{
		Measure: func(c element.Constraint, e env.Env) math32.Vector2 {
			return s.Size
		},
	}
}

func (s Spacer) Description(e env.Env) *view.Description {
	return nil
}
