// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf is a view-backed leaf element with a fixed size.
type leaf struct {
	size math32.Vector2
}

func (l leaf) Content() element.Content {
	return element.Content{
		Measure: func(c element.Constraint, e env.Env) math32.Vector2 {
			return l.size
		},
	}
}

func (l leaf) Description(e env.Env) *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}

// column is a pure layout element stacking children vertically.
type column struct {
	children []element.Child
}

func (col column) Content() element.Content {
	return element.Content{Layout: Stack{Orientation: Vertical}, Children: col.children}
}

func (col column) Description(e env.Env) *view.Description {
	return nil
}

// group is a view-backed container overlaying its children.
type group struct {
	children []element.Child
}

func (g group) Content() element.Content {
	return element.Content{Layout: Overlay{}, Children: g.children}
}

func (g group) Description(e env.Env) *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}

func plain(els ...element.Element) []element.Child {
	out := make([]element.Child, len(els))
	for i, el := range els {
		out[i] = element.Child{Element: el}
	}
	return out
}

func TestResolveLeaf(t *testing.T) {
	n := Resolve(leaf{size: math32.Vec2(30, 20)}, element.Unbounded(), env.Env{})
	assert.Equal(t, math32.B2(0, 0, 30, 20), n.Attributes.Frame)
	assert.Equal(t, float32(1), n.Attributes.Alpha)
	assert.NotNil(t, n.Description)
	assert.Empty(t, n.Children)
}

func TestResolveChildren(t *testing.T) {
	el := column{children: plain(leaf{size: math32.Vec2(30, 20)}, leaf{size: math32.Vec2(50, 10)})}
	n := Resolve(el, element.Unbounded(), env.Env{})
	require.Len(t, n.Children, 2)
	assert.Equal(t, math32.B2(0, 0, 30, 20), n.Children[0].Node.Attributes.Frame)
	assert.Equal(t, math32.B2(0, 20, 50, 30), n.Children[1].Node.Attributes.Frame)
}

func TestIdentifierOrdinals(t *testing.T) {
	el := column{children: []element.Child{
		{Element: leaf{}},
		{Element: leaf{}},
		{Key: "a", Element: leaf{}},
		{Element: group{}},
	}}
	n := Resolve(el, element.Unbounded(), env.Env{})
	require.Len(t, n.Children, 4)
	assert.Equal(t, 0, n.Children[0].ID.Index)
	assert.Equal(t, 1, n.Children[1].ID.Index)
	// A keyed child counts separately from unkeyed ones of the same type.
	assert.Equal(t, 0, n.Children[2].ID.Index)
	assert.Equal(t, element.Key("a"), n.Children[2].ID.Key)
	// A different type counts separately as well.
	assert.Equal(t, 0, n.Children[3].ID.Index)
	assert.NotEqual(t, n.Children[0].ID.Type, n.Children[3].ID.Type)
}

func TestViewChildrenFlattening(t *testing.T) {
	inner := column{children: plain(leaf{size: math32.Vec2(30, 20)}, leaf{size: math32.Vec2(30, 20)})}
	outer := group{children: []element.Child{
		{Element: leaf{size: math32.Vec2(10, 10)}},
		{Element: inner},
	}}
	n := Resolve(outer, element.Size(math32.Vec2(100, 100)), env.Env{})

	vcs := n.ViewChildren()
	require.Len(t, vcs, 3)

	// The direct leaf keeps a single-segment path.
	assert.Len(t, vcs[0].Path, 1)

	// The column is flattened away: its leaves surface with two-segment
	// paths and frames translated into the group's coordinate space.
	assert.Len(t, vcs[1].Path, 2)
	assert.Len(t, vcs[2].Path, 2)
	assert.Equal(t, math32.B2(0, 0, 30, 20), vcs[1].Attributes.Frame)
	assert.Equal(t, math32.B2(0, 20, 30, 40), vcs[2].Attributes.Frame)
	assert.NotEqual(t, vcs[1].Path.String(), vcs[2].Path.String())
}

func TestPathStrings(t *testing.T) {
	assert.Equal(t, "/", Path{}.String())
	n := Resolve(column{children: plain(leaf{})}, element.Unbounded(), env.Env{})
	p := Path{}.Child(n.Children[0].ID)
	assert.Equal(t, "/leaf[0]", p.String())
	assert.Equal(t, 1, len(p))

	q := p.Join(Path{n.Children[0].ID})
	assert.Equal(t, "/leaf[0]/leaf[0]", q.String())
	assert.Len(t, p, 1)
}

func TestContentAlphaTransform(t *testing.T) {
	a := float32(0.5)
	tr := math32.Translate2D(1, 2)
	el := faded{alpha: &a, transform: &tr}
	n := Resolve(el, element.Unbounded(), env.Env{})
	assert.Equal(t, float32(0.5), n.Attributes.Alpha)
	assert.Equal(t, tr, n.Attributes.Transform)
}

// faded is a leaf overriding its resolved alpha and transform.
type faded struct {
	alpha     *float32
	transform *math32.Matrix2
}

func (f faded) Content() element.Content {
	return element.Content{Alpha: f.alpha, Transform: f.transform}
}

func (f faded) Description(e env.Env) *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}
