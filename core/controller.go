// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"

	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/view"
)

// ViewController is the shadow node the reconciler keeps for one live
// view: the view itself, the description it was last updated from, its
// last applied layout attributes, and its children keyed by relative
// path. The controller tree is the only record of which view belongs to
// which position in the logical tree; the reconciler owns it and is the
// only writer.
type ViewController struct {
	view        view.View
	description *view.Description
	attributes  layout.Attributes
	children    []ControllerChild
}

// ControllerChild pairs a child [ViewController] with its path relative
// to the parent controller. The path can span multiple levels when pure
// layout nodes were flattened between the two views.
type ControllerChild struct {
	Path       layout.Path
	Controller *ViewController
}

// newRootController returns the controller for a surface root, holding
// a plain container view and no description.
func newRootController() *ViewController {
	return &ViewController{view: view.NewContainerView()}
}

// newViewController builds a view from the given description and wraps
// it in a fresh controller.
func newViewController(d *view.Description) *ViewController {
	return &ViewController{view: d.Build(), description: d}
}

// View returns the live view this controller manages.
func (c *ViewController) View() view.View {
	return c.view
}

// Description returns the description this controller's view was last
// updated from. It is nil for the surface root.
func (c *ViewController) Description() *view.Description {
	return c.description
}

// Attributes returns the layout attributes last applied to the view,
// ignoring any in-flight animation.
func (c *ViewController) Attributes() layout.Attributes {
	return c.attributes
}

// Children returns a copy of the controller's children in order.
func (c *ViewController) Children() []ControllerChild {
	return slices.Clone(c.children)
}
