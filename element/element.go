// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element defines the element protocol: immutable, value-typed
// descriptions of one logical piece of UI. Elements supply content
// (a leaf measurement function, or a layouter with children) and an
// optional backing view description; the layout package resolves an
// element tree into positioned nodes and the core package reconciles
// those against live views.
package element

import (
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Element is one immutable node of a declarative UI tree.
// Implementations should be lightweight value types; a new tree is
// constructed for every update and discarded after resolution.
type Element interface {

	// Content returns the element's content: either a leaf measurer
	// or a layouter with children.
	Content() Content

	// Description returns the recipe for this element's backing view,
	// or nil for a pure layout element that contributes no view.
	Description(e env.Env) *view.Description
}

// Key is an optional explicit stable key for a child element, used to
// preserve identity across reorderings of its siblings.
type Key string

// Child is one child of a container element.
type Child struct {

	// Key optionally pins the child's identity across sibling
	// reorderings. Two children of one parent with the same element
	// type and the same non-empty Key are a programming error.
	Key Key

	// Grow is the flex grow factor used by layouters that distribute
	// leftover space, such as the stack layout. Zero means the child
	// keeps its measured size.
	Grow float32

	// Element is the child element.
	Element Element
}

// Content is a tagged variant describing what an element contains:
// exactly one of Measure (leaf) or Layout (container with Children)
// should be set. Alpha and Transform optionally override the resolved
// attributes of the element's node; they are only meaningful on
// view-backed elements.
type Content struct {

	// Measure measures a leaf element under the given constraint.
	Measure MeasureFunc

	// Layout measures and places Children for a container element.
	Layout Layouter

	// Children are the container's children, in declaration order.
	Children []Child

	// Alpha, if non-nil, sets the resolved opacity of this element's
	// node (default 1).
	Alpha *float32

	// Transform, if non-nil, sets the resolved transform of this
	// element's node (default identity).
	Transform *math32.Matrix2
}

// MeasureFunc measures a leaf element: given a size constraint and an
// environment, it returns the element's preferred size. It must be
// deterministic and idempotent, and monotonic in the constraint
// (tightening an axis never increases the measured size along it),
// since containers invoke it repeatedly during negotiation.
type MeasureFunc func(c Constraint, e env.Env) math32.Vector2

// Measurable is a child as seen by a [Layouter]: something that can be
// measured under a constraint.
type Measurable interface {

	// Measure returns the child's preferred size under the constraint.
	Measure(c Constraint, e env.Env) math32.Vector2
}

// LayoutChild is a child as seen by a [Layouter], with its flex grow
// factor.
type LayoutChild interface {
	Measurable

	// Grow returns the child's flex grow factor.
	Grow() float32
}

// Layouter measures a container and places its children. The same
// determinism and idempotence requirements as [MeasureFunc] apply.
type Layouter interface {

	// Measure returns the container's preferred size under the given
	// constraint, measuring children as needed.
	Measure(c Constraint, children []LayoutChild, e env.Env) math32.Vector2

	// Place returns one frame per child, in child order, relative to
	// the container's origin, for a container of the given size.
	Place(size math32.Vector2, children []LayoutChild, e env.Env) []math32.Box2
}
