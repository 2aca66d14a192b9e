// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/compose/view"

// updateContext is the per-update coordination state passed down the
// controller tree by value, so that state set while descending into one
// subtree never leaks into a sibling subtree.
type updateContext struct {

	// animationsEnabled is whether transition animations are permitted
	// at this point in the descent. It starts from whether the update
	// itself is animated and is overridden along the way by
	// [view.Description.Animations].
	animationsEnabled bool

	// appearancePlayed is whether an enclosing ancestor has already
	// played an appearance transition in this update batch. It gates
	// [view.TriggerIfNotNested] appearance transitions on descendants.
	appearancePlayed bool
}

// descend returns the context for descending into a child with the
// given description, applying its animation policy override.
func (ctx updateContext) descend(d *view.Description) updateContext {
	if d == nil {
		return ctx
	}
	switch d.Animations {
	case view.AnimationsEnabled:
		ctx.animationsEnabled = true
	case view.AnimationsDisabled:
		ctx.animationsEnabled = false
	}
	return ctx
}
