// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Attributes are the resolved layout attributes of one node: its frame
// in the parent's coordinate space, its opacity, and its transform.
type Attributes struct {
	Frame     math32.Box2
	Alpha     float32
	Transform math32.Matrix2
}

// DefaultAttributes returns [Attributes] for the given frame with
// alpha 1 and the identity transform.
func DefaultAttributes(frame math32.Box2) Attributes {
	return Attributes{Frame: frame, Alpha: 1, Transform: math32.Identity2()}
}

// Lerp returns the linear interpolation between these attributes and
// the other given attributes, by the given amount in [0, 1].
func (a Attributes) Lerp(other Attributes, amount float32) Attributes {
	return Attributes{
		Frame:     a.Frame.Lerp(other.Frame, amount),
		Alpha:     math32.Lerp(a.Alpha, other.Alpha, amount),
		Transform: a.Transform.Lerp(other.Transform, amount),
	}
}

// Apply sets the given view's attributes to these attributes and marks
// the view as needing an internal layout pass.
func (a Attributes) Apply(v view.View) {
	vb := v.AsView()
	vb.Frame = a.Frame
	vb.Alpha = a.Alpha
	vb.Transform = a.Transform
	vb.SetNeedsLayout()
}

// Node is one resolved node: an immutable snapshot of one point in the
// element tree after measurement and placement. It is produced once
// per update pass by [Resolve], consumed by the reconciler, and then
// discarded; it is never mutated.
type Node struct {

	// Description is the recipe for this node's backing view, or nil
	// for a pure layout node.
	Description *view.Description

	// Attributes are the node's resolved layout attributes. The frame
	// is relative to the parent node's origin.
	Attributes Attributes

	// Children are the node's resolved children, in layout order.
	Children []ChildNode
}

// ChildNode pairs a child [Node] with its [Identifier].
type ChildNode struct {
	ID   Identifier
	Node *Node
}

// ViewChild is one view-backed child of a node as seen by the
// reconciler: pure layout descendants are flattened away, so the path
// may span multiple levels and the attributes carry the frame
// translated into the node's own coordinate space.
type ViewChild struct {

	// Path is the relative path from the node to this view-backed
	// descendant, including the identifiers of any flattened pure
	// layout levels.
	Path Path

	// Attributes are the descendant's attributes with its frame
	// translated by the origins of the flattened levels.
	Attributes Attributes

	// Node is the resolved node itself.
	Node *Node
}

// ViewChildren returns the node's view-backed children in layout
// order, flattening pure layout descendants: a child with no backing
// description contributes its own view-backed children in its place,
// with paths prefixed by its identifier and frames translated by its
// origin.
func (n *Node) ViewChildren() []ViewChild {
	if len(n.Children) == 0 {
		return nil
	}
	var out []ViewChild
	n.appendViewChildren(&out, nil, math32.Vector2{})
	return out
}

func (n *Node) appendViewChildren(out *[]ViewChild, prefix Path, offset math32.Vector2) {
	for _, c := range n.Children {
		if c.Node.Description != nil {
			attrs := c.Node.Attributes
			attrs.Frame = attrs.Frame.Translate(offset)
			*out = append(*out, ViewChild{
				Path:       prefix.Child(c.ID),
				Attributes: attrs,
				Node:       c.Node,
			})
			continue
		}
		c.Node.appendViewChildren(out, prefix.Child(c.ID), offset.Add(c.Node.Attributes.Frame.Min))
	}
}
