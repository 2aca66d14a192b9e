// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/logx"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// TransitionSnapshot records the transitions a controller's description
// declares, as clones detached from the live description.
type TransitionSnapshot struct {
	Appearing    *view.Transition
	Disappearing *view.Transition
	Layout       *view.LayoutTransition
}

// ControllerSnapshot is a read-only copy of one controller's state for
// inspection and testing: its path segment, the concrete view type
// name, its applied attributes, its declared transitions, and its
// children. Snapshots share no state with the live tree.
type ControllerSnapshot struct {
	Path        string
	ViewType    string
	Attributes  layout.Attributes
	Transitions TransitionSnapshot
	Children    []ControllerSnapshot
}

// Snapshot returns a deep copy of the surface's controller tree.
func (s *Surface) Snapshot() ControllerSnapshot {
	return s.root.snapshot(layout.Path{})
}

func (c *ViewController) snapshot(rel layout.Path) ControllerSnapshot {
	snap := ControllerSnapshot{
		Path:       rel.String(),
		ViewType:   fmt.Sprintf("%T", c.view),
		Attributes: c.attributes,
	}
	if c.description != nil {
		// Deep copy so the snapshot does not alias the description's
		// transition pointers.
		logx.PrintError(copier.CopyWithOption(&snap.Transitions, c.description, copier.Option{DeepCopy: true}))
	}
	for _, cc := range c.children {
		snap.Children = append(snap.Children, cc.Controller.snapshot(cc.Path))
	}
	return snap
}

// String renders the snapshot subtree as an indented listing.
func (cs ControllerSnapshot) String() string {
	b := &strings.Builder{}
	cs.write(b, 0)
	return b.String()
}

func (cs ControllerSnapshot) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s %s %v\n", strings.Repeat("\t", depth), cs.Path, cs.ViewType, cs.Attributes.Frame)
	for _, ch := range cs.Children {
		ch.write(b, depth+1)
	}
}

// RootController returns the surface's root controller. The returned
// controller and its subtree are owned by the reconciler; callers may
// traverse but must not mutate.
func (s *Surface) RootController() *ViewController {
	return s.root
}

// ControllerAt returns the controller at the given path relative to
// the root, or nil if no controller exists there. The path must match
// the concatenated child paths exactly.
func (s *Surface) ControllerAt(p layout.Path) *ViewController {
	return s.root.find(p)
}

func (c *ViewController) find(p layout.Path) *ViewController {
	if len(p) == 0 {
		return c
	}
	for _, cc := range c.children {
		if len(cc.Path) > len(p) {
			continue
		}
		if pathHasPrefix(p, cc.Path) {
			return cc.Controller.find(p[len(cc.Path):])
		}
	}
	return nil
}

func pathHasPrefix(p, prefix layout.Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, id := range prefix {
		if p[i] != id {
			return false
		}
	}
	return true
}

// HitTest returns the deepest view in the live hierarchy whose frame
// contains the given point in root coordinates, or nil when the point
// is outside the root's bounds. Transforms are not considered.
func (s *Surface) HitTest(pt math32.Vector2) view.View {
	rvb := s.root.view.AsView()
	if !rvb.Frame.ContainsPoint(pt) {
		return nil
	}
	return hitTest(s.root.view, pt.Sub(rvb.Frame.Min))
}

func hitTest(v view.View, pt math32.Vector2) view.View {
	vb := v.AsView()
	// Later subviews draw on top, so test them first.
	for i := len(vb.Subviews) - 1; i >= 0; i-- {
		sub := vb.Subviews[i]
		svb := sub.AsView()
		if svb.Frame.ContainsPoint(pt) {
			return hitTest(sub, pt.Sub(svb.Frame.Min))
		}
	}
	return v
}

// FindAncestor walks up the controller tree from the controller owning
// the given view and returns the first ancestor view for which match
// returns true, or nil if there is none or the view is not in this
// surface's tree.
func (s *Surface) FindAncestor(of view.View, match func(v view.View) bool) view.View {
	chain := s.root.chainTo(of)
	if chain == nil {
		return nil
	}
	for i := len(chain) - 2; i >= 0; i-- {
		if match(chain[i].view) {
			return chain[i].view
		}
	}
	return nil
}

// chainTo returns the controller chain from this controller down to the
// one owning the given view, inclusive, or nil if the view is not in
// this subtree.
func (c *ViewController) chainTo(v view.View) []*ViewController {
	if c.view.AsView() == v.AsView() {
		return []*ViewController{c}
	}
	for _, cc := range c.children {
		if chain := cc.Controller.chainTo(v); chain != nil {
			return append([]*ViewController{c}, chain...)
		}
	}
	return nil
}
