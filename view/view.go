// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides the backing view tree that the reconciler
// owns and mutates: the [View] interface with its [ViewBase] state,
// the [Description] recipe for building and configuring a view, and
// the [Transition] animation declarations.
package view

import (
	"slices"

	"cogentcore.org/compose/math32"
)

// View is a live backing view. Concrete view types embed [ViewBase]
// and implement View through it. A view that performs its own internal
// layout of subviews additionally implements [Layouter].
type View interface {

	// AsView returns the [ViewBase] for this view.
	AsView() *ViewBase
}

// Layouter is an optional capability for views whose internal layout
// depends on subview state. The reconciler invokes it through
// [ViewBase.LayoutIfNeeded] after all children have been updated, so
// implementations always see up-to-date subviews.
type Layouter interface {
	View

	// LayoutSubviews performs one synchronous internal layout pass.
	LayoutSubviews()
}

// ViewBase implements the [View] interface and holds the state common
// to all views: layout attributes, the subview list, and the superview
// reference. All higher-level view types must embed ViewBase.
//
// Views are exclusively owned by the reconciler tree during updates;
// outside of an update, external code may read but must not mutate.
type ViewBase struct {

	// Frame is the position and size of this view in its superview's
	// coordinate space.
	Frame math32.Box2

	// Alpha is the opacity of this view, in [0, 1].
	Alpha float32

	// Transform is the affine transform applied to this view about
	// its frame.
	Transform math32.Matrix2

	// Subviews is the ordered list of child views. It is managed by
	// [ViewBase.InsertSubview], [ViewBase.MoveSubview], and
	// [ViewBase.RemoveFromSuperview]; do not modify it directly.
	Subviews []View

	// Superview is the view this view is currently installed in,
	// or nil if it is not in a hierarchy.
	Superview View

	// This is the value of this view as its true underlying type,
	// set by [Initialize]. It allows ViewBase methods to reach
	// capability interfaces implemented on higher-level types.
	This View

	// needsLayout is whether a [Layouter] pass is pending.
	needsLayout bool
}

// Initialize sets up the given view for use, setting its This pointer
// and default attributes (alpha 1, identity transform). It must be
// called on every newly constructed view; [Describe] build functions
// do this automatically.
func Initialize[T View](v T) T {
	vb := v.AsView()
	vb.This = v
	vb.Alpha = 1
	vb.Transform = math32.Identity2()
	return v
}

// AsView returns the [ViewBase] for this view.
func (vb *ViewBase) AsView() *ViewBase {
	return vb
}

// IndexOfSubview returns the index of the given view in the subview
// list, or -1 if it is not a subview.
func (vb *ViewBase) IndexOfSubview(v View) int {
	return slices.IndexFunc(vb.Subviews, func(s View) bool {
		return s.AsView() == v.AsView()
	})
}

// InsertSubview inserts the given view as a subview at the given index,
// removing it from any current superview first. An index at or beyond
// the current subview count appends.
func (vb *ViewBase) InsertSubview(v View, i int) {
	cvb := v.AsView()
	if cvb.Superview != nil {
		cvb.RemoveFromSuperview()
	}
	if i < 0 {
		i = 0
	}
	if i > len(vb.Subviews) {
		i = len(vb.Subviews)
	}
	vb.Subviews = slices.Insert(vb.Subviews, i, v)
	cvb.Superview = vb.This
	vb.needsLayout = true
}

// MoveSubview moves an existing subview to the given index.
// It is a no-op if the view is not currently a subview.
func (vb *ViewBase) MoveSubview(v View, i int) {
	ci := vb.IndexOfSubview(v)
	if ci < 0 || ci == i {
		return
	}
	vb.Subviews = slices.Delete(vb.Subviews, ci, ci+1)
	if i > len(vb.Subviews) {
		i = len(vb.Subviews)
	}
	vb.Subviews = slices.Insert(vb.Subviews, i, v)
	vb.needsLayout = true
}

// RemoveFromSuperview removes this view from its superview's subview
// list. It is a no-op if the view has no superview.
func (vb *ViewBase) RemoveFromSuperview() {
	if vb.Superview == nil {
		return
	}
	svb := vb.Superview.AsView()
	if i := svb.IndexOfSubview(vb.This); i >= 0 {
		svb.Subviews = slices.Delete(svb.Subviews, i, i+1)
	}
	vb.Superview = nil
}

// SetNeedsLayout marks this view as needing an internal layout pass.
func (vb *ViewBase) SetNeedsLayout() {
	vb.needsLayout = true
}

// LayoutIfNeeded runs one synchronous [Layouter.LayoutSubviews] pass if
// one is pending and this view implements [Layouter]. The reconciler
// calls this after updating a view's children, so internal layout
// always sees current subview state.
func (vb *ViewBase) LayoutIfNeeded() {
	if !vb.needsLayout {
		return
	}
	vb.needsLayout = false
	if l, ok := vb.This.(Layouter); ok {
		l.LayoutSubviews()
	}
}

// WalkDown calls the given function on this view and then recursively
// on all of its subviews, depth-first. The function returns whether to
// continue into the children of the visited view.
func (vb *ViewBase) WalkDown(fun func(v View) bool) {
	if vb.This == nil {
		return
	}
	if !fun(vb.This) {
		return
	}
	for _, sv := range vb.Subviews {
		sv.AsView().WalkDown(fun)
	}
}

// ContainerView is a plain view with no content and no behavior of its
// own, used for grouping subviews. The root of every display surface
// is a ContainerView, as is the backing view of box-like elements.
type ContainerView struct {
	ViewBase
}

// NewContainerView returns a new initialized [ContainerView].
func NewContainerView() *ContainerView {
	return Initialize(&ContainerView{})
}
