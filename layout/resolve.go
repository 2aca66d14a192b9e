// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"reflect"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
)

// Resolve measures and lays out the given element tree under the given
// constraint and environment, returning the resolved node tree. The
// root node's frame is the measured size at the origin.
func Resolve(el element.Element, c element.Constraint, e env.Env) *Node {
	size := Measure(el, c, e)
	return resolveNode(el, math32.B2Size(math32.Vector2{}, size), e)
}

// Measure returns the size of the given element under the given
// constraint and environment, without producing a resolved tree.
// It is deterministic, idempotent, and safe to invoke repeatedly.
func Measure(el element.Element, c element.Constraint, e env.Env) math32.Vector2 {
	content := el.Content()
	switch {
	case content.Measure != nil:
		return c.Clamp(content.Measure(c, e))
	case content.Layout != nil:
		return c.Clamp(content.Layout.Measure(c, layoutChildren(content.Children), e))
	}
	return c.Clamp(math32.Vector2{})
}

func resolveNode(el element.Element, frame math32.Box2, e env.Env) *Node {
	content := el.Content()
	attrs := DefaultAttributes(frame)
	if content.Alpha != nil {
		attrs.Alpha = *content.Alpha
	}
	if content.Transform != nil {
		attrs.Transform = *content.Transform
	}
	n := &Node{
		Description: el.Description(e),
		Attributes:  attrs,
	}
	if content.Layout == nil || len(content.Children) == 0 {
		return n
	}
	frames := content.Layout.Place(frame.Size(), layoutChildren(content.Children), e)
	ids := newIdentifierFactory()
	n.Children = make([]ChildNode, 0, len(content.Children))
	for i, ch := range content.Children {
		cn := resolveNode(ch.Element, frames[i], e)
		id := ids.next(reflect.TypeOf(ch.Element), ch.Key)
		n.Children = append(n.Children, ChildNode{ID: id, Node: cn})
	}
	return n
}

// layoutChild adapts an [element.Child] to the [element.LayoutChild]
// interface consumed by layouters.
type layoutChild struct {
	child element.Child
}

func (lc layoutChild) Measure(c element.Constraint, e env.Env) math32.Vector2 {
	return Measure(lc.child.Element, c, e)
}

func (lc layoutChild) Grow() float32 {
	return lc.child.Grow
}

func layoutChildren(children []element.Child) []element.LayoutChild {
	out := make([]element.LayoutChild, len(children))
	for i, ch := range children {
		out[i] = layoutChild{child: ch}
	}
	return out
}
