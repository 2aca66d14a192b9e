// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPass() *updatePass {
	return &updatePass{
		animator: &Animator{},
		settings: &DebugSettings{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func containerDesc() *view.Description {
	return view.Describe(func() *view.ContainerView { return &view.ContainerView{} })
}

func leafNode(d *view.Description, frame math32.Box2) *layout.Node {
	return &layout.Node{Description: d, Attributes: layout.DefaultAttributes(frame)}
}

func TestDuplicateSiblingPathPanics(t *testing.T) {
	id := layout.Identifier{Type: reflect.TypeOf(sized{})}
	node := &layout.Node{
		Attributes: layout.DefaultAttributes(math32.B2(0, 0, 100, 100)),
		Children: []layout.ChildNode{
			{ID: id, Node: leafNode(containerDesc(), math32.B2(0, 0, 10, 10))},
			{ID: id, Node: leafNode(containerDesc(), math32.B2(0, 10, 10, 20))},
		},
	}
	root := newRootController()
	require.PanicsWithValue(t,
		"core: duplicate sibling path /sized[0] under /; the identifiers of children within one parent must be pairwise distinct",
		func() {
			root.update(node, updateContext{}, testPass(), layout.Path{})
		})
}

func TestIncompatibleDescriptionPanics(t *testing.T) {
	d := containerDesc()
	ctrl := newViewController(d)
	ctrl.update(leafNode(d, math32.B2(0, 0, 10, 10)), updateContext{}, testPass(), layout.Path{})

	alt := view.Describe(func() *altView { return &altView{} })
	assert.Panics(t, func() {
		ctrl.update(leafNode(alt, math32.B2(0, 0, 10, 10)), updateContext{}, testPass(), layout.Path{})
	})
}

func TestLeafFastPath(t *testing.T) {
	d := containerDesc()
	ctrl := newViewController(d)
	node := leafNode(d, math32.B2(0, 0, 10, 10))
	ctrl.update(node, updateContext{}, testPass(), layout.Path{})
	assert.Empty(t, ctrl.Children())
	ctrl.update(node, updateContext{}, testPass(), layout.Path{})
	assert.Empty(t, ctrl.Children())
}

func TestApplyCalledEveryUpdate(t *testing.T) {
	applied := 0
	s := newTestSurface()
	el := vcolumn{children: plain(sized{w: 10, h: 10, apply: func(v view.View) { applied++ }})}
	s.SetElement(el, false)
	s.LayoutIfNeeded()
	assert.Equal(t, 1, applied)

	s.SetElement(el, false)
	s.LayoutIfNeeded()
	assert.Equal(t, 2, applied)
}

func TestContentViewInsertion(t *testing.T) {
	// Children of a described view with a ContentView hook land in the
	// view it returns, not in the described view itself.
	s := newTestSurface()
	s.SetElement(vcolumn{children: plain(wrapped{child: sized{w: 10, h: 10}})}, false)
	s.LayoutIfNeeded()

	outer := s.RootView().AsView().Subviews[0].(*wrapView)
	assert.Empty(t, outer.Subviews)
	require.Len(t, outer.inner.Subviews, 1)
}

// wrapView hosts its reconciled children in a nested inner view.
type wrapView struct {
	view.ViewBase
	inner *view.ContainerView
}

// wrapped is an element backed by a [wrapView].
type wrapped struct {
	child sized
}

func (w wrapped) Content() element.Content {
	return element.Content{Layout: layout.Overlay{}, Children: plain(w.child)}
}

func (w wrapped) Description(e env.Env) *view.Description {
	d := view.Describe(func() *wrapView {
		return &wrapView{inner: view.NewContainerView()}
	})
	d.ContentView = func(v view.View) *view.ViewBase {
		return v.(*wrapView).inner.AsView()
	}
	return d
}
