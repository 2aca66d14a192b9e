// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/view"
)

// updatePass carries the per-update collaborators down the controller
// tree.
type updatePass struct {
	animator *Animator
	settings *DebugSettings
	logger   *slog.Logger
}

func (p *updatePass) trace(msg string, args ...any) {
	if p.settings != nil && p.settings.UpdateTrace {
		p.logger.Info(msg, args...)
	}
}

func (p *updatePass) traceLayout(path layout.Path, attrs layout.Attributes) {
	if p.settings != nil && p.settings.LayoutTrace {
		p.logger.Info("layout", "path", path.String(), "frame", attrs.Frame, "alpha", attrs.Alpha)
	}
}

// update reconciles this controller's subtree against the given
// resolved node. The node's description must be compatible with the
// controller's view; the caller establishes that before descending.
// path is the controller's absolute path, used in diagnostics.
func (c *ViewController) update(node *layout.Node, ctx updateContext, pass *updatePass, path layout.Path) {
	if !view.Compatible(c.description, node.Description) {
		panic(fmt.Sprintf("core: view controller at %v holds a %T but was asked to update in place from an incompatible description; this is a reconciler bug", path, c.view))
	}
	c.description = node.Description
	if d := c.description; d != nil && d.Apply != nil {
		d.Apply(c.view)
	}

	viewChildren := node.ViewChildren()
	if len(c.children) == 0 && len(viewChildren) == 0 {
		// Leaf fast path: no child bookkeeping to reconcile.
		c.view.AsView().LayoutIfNeeded()
		return
	}

	existing := make(map[string]*ViewController, len(c.children))
	oldOrder := make([]string, len(c.children))
	for i, cc := range c.children {
		k := cc.Path.String()
		existing[k] = cc.Controller
		oldOrder[i] = k
	}

	// A child is reused when a controller exists at the same path and
	// its view type still matches. Ordering has changed when the reused
	// children appear in a different relative order than before; only
	// then are subviews moved, so stable updates leave sibling view
	// order untouched.
	reused := make(map[string]bool, len(viewChildren))
	newOrder := make([]string, 0, len(viewChildren))
	for _, vc := range viewChildren {
		k := vc.Path.String()
		if old, ok := existing[k]; ok && view.Compatible(old.description, vc.Node.Description) {
			reused[k] = true
			newOrder = append(newOrder, k)
		}
	}
	oldSurviving := make([]string, 0, len(newOrder))
	for _, k := range oldOrder {
		if reused[k] {
			oldSurviving = append(oldSurviving, k)
		}
	}
	orderingChanged := !slices.Equal(oldSurviving, newOrder)

	// Insertion and move indices are relative to the new child list. A
	// view still animating out keeps its subview slot until its
	// disappearance finishes, so a newly inserted sibling can briefly
	// stack below it.
	content := c.description.ContentViewBase(c.view)
	consumed := make(map[*ViewController]bool, len(c.children))
	seen := make(map[string]bool, len(viewChildren))
	newChildren := make([]ControllerChild, 0, len(viewChildren))

	for i, vc := range viewChildren {
		k := vc.Path.String()
		if seen[k] {
			panic(fmt.Sprintf("core: duplicate sibling path %s under %v; the identifiers of children within one parent must be pairwise distinct", k, path))
		}
		seen[k] = true
		childPath := path.Join(vc.Path)
		d := vc.Node.Description
		childCtx := ctx.descend(d)
		pass.traceLayout(childPath, vc.Attributes)

		if old, ok := existing[k]; ok && view.Compatible(old.description, d) {
			consumed[old] = true
			if d.ApplyBeforeLayout != nil {
				d.ApplyBeforeLayout(old.view)
			}
			if vc.Attributes != old.attributes {
				if lt := d.Layout; lt != nil && childCtx.animationsEnabled {
					pass.animator.animateAttributes(old.view, old.attributes, vc.Attributes, lt.Duration, lt.CurveOrDefault(), nil)
				} else {
					// A direct application supersedes any attribute
					// animation still running from an earlier update.
					pass.animator.applyAttributes(old.view, vc.Attributes)
				}
				old.attributes = vc.Attributes
			}
			if orderingChanged {
				content.MoveSubview(old.view, i)
			}
			pass.trace("update", "path", childPath.String())
			old.update(vc.Node, childCtx, pass, childPath)
			newChildren = append(newChildren, ControllerChild{Path: vc.Path, Controller: old})
			continue
		}

		ctrl := newViewController(d)
		if d.ApplyBeforeLayout != nil {
			d.ApplyBeforeLayout(ctrl.view)
		}
		// Initial attributes are always applied directly; only the
		// appearance transition animates a newly created view.
		vc.Attributes.Apply(ctrl.view)
		ctrl.attributes = vc.Attributes
		content.InsertSubview(ctrl.view, i)
		playAppearance := childCtx.animationsEnabled && d.Appearing != nil &&
			(d.Appearing.Trigger == view.TriggerAlways || !ctx.appearancePlayed)
		recurseCtx := childCtx
		if playAppearance {
			recurseCtx.appearancePlayed = true
		}
		pass.trace("create", "path", childPath.String(), "view", fmt.Sprintf("%T", ctrl.view))
		ctrl.update(vc.Node, recurseCtx, pass, childPath)
		if playAppearance {
			pass.animator.playAppearance(ctrl.view, d.Appearing, vc.Attributes)
		}
		newChildren = append(newChildren, ControllerChild{Path: vc.Path, Controller: ctrl})
	}

	for _, cc := range c.children {
		if consumed[cc.Controller] {
			continue
		}
		pass.trace("remove", "path", path.Join(cc.Path).String())
		removeChild(cc.Controller, ctx, pass)
	}

	c.children = newChildren
	c.view.AsView().LayoutIfNeeded()
}

// removeChild takes the given stale controller's view out of the live
// hierarchy, playing its disappearance transition first when one is
// declared and animations are permitted.
func removeChild(ctrl *ViewController, ctx updateContext, pass *updatePass) {
	d := ctrl.description
	if d != nil && d.Disappearing != nil && ctx.descend(d).animationsEnabled {
		v := ctrl.view
		pass.animator.playDisappearance(v, d.Disappearing, func() {
			v.AsView().RemoveFromSuperview()
		})
		return
	}
	ctrl.view.AsView().RemoveFromSuperview()
}
