// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "reflect"

// AnimationPolicy is a per-description override of whether transition
// animations are permitted for the described view and its descendants.
type AnimationPolicy int32

const (
	// AnimationsInherit leaves the ancestor's animation permission
	// unchanged. This is the default.
	AnimationsInherit AnimationPolicy = iota

	// AnimationsEnabled forces animations on for this subtree,
	// regardless of the ancestor value.
	AnimationsEnabled

	// AnimationsDisabled forces animations off for this subtree,
	// regardless of the ancestor value.
	AnimationsDisabled
)

// Description is a value describing how to build and configure one
// backing view: the view's concrete type, lifecycle hooks, and declared
// transition animations. Descriptions are produced by elements during
// resolution and consumed by the reconciler; two descriptions are
// compatible, and thus allow the live view to be reused, exactly when
// their ViewType is the same.
type Description struct {

	// ViewType is the concrete type of the described view. It is the
	// sole criterion for view reuse across updates.
	ViewType reflect.Type

	// Build constructs a new initialized view of ViewType. It is
	// called once, when no compatible view exists at the node's path.
	Build func() View

	// ApplyBeforeLayout, if non-nil, is called on the view before its
	// layout attributes are applied in an update.
	ApplyBeforeLayout func(v View)

	// Apply, if non-nil, synchronizes the view's content with the
	// description. It is called on every update in which the view is
	// created or reused, after attributes are applied.
	Apply func(v View)

	// ContentView, if non-nil, returns the view into which child
	// subviews are inserted. When nil, children are inserted into the
	// described view itself.
	ContentView func(v View) *ViewBase

	// Appearing, if non-nil, is the transition played when the view
	// first appears.
	Appearing *Transition

	// Disappearing, if non-nil, is the transition played when the view
	// is removed.
	Disappearing *Transition

	// Layout, if non-nil, is the transition used when the view's
	// layout attributes change in an update. When nil, attribute
	// changes inherit any in-flight ancestor transition without an
	// additional animation wrapper.
	Layout *LayoutTransition

	// Animations optionally overrides whether animations are permitted
	// for this view's subtree.
	Animations AnimationPolicy
}

// Describe returns a [Description] for the view type constructed by the
// given build function, which is wrapped to initialize the view. The
// remaining fields can be set directly on the returned value.
func Describe[T View](build func() T) *Description {
	return &Description{
		ViewType: reflect.TypeOf((*T)(nil)).Elem(),
		Build: func() View {
			return Initialize(build())
		},
	}
}

// Compatible reports whether the two descriptions describe the same
// concrete view type, meaning a live view built from one can be
// updated in place from the other. A nil description is compatible
// only with another nil description.
func Compatible(a, b *Description) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ViewType == b.ViewType
}

// ContentViewBase returns the [ViewBase] into which children of the
// given described view should be inserted.
func (d *Description) ContentViewBase(v View) *ViewBase {
	if d != nil && d.ContentView != nil {
		return d.ContentView(v)
	}
	return v.AsView()
}
