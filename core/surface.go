// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the display surface and the reconciler: the
// machinery that turns a declarative element tree into a live backing
// view hierarchy and keeps the two in sync across updates, preserving
// view identity by path and view type, and coordinating transition
// animations.
//
// All surface and controller state is confined to the thread that owns
// the surface; nothing in this package synchronizes.
package core

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"time"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/logx"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// surfaceState is the update scheduling state of a [Surface].
type surfaceState int32

const (
	// surfaceIdle means the live hierarchy is in sync with the current
	// content and bounds.
	surfaceIdle surfaceState = iota

	// surfaceScheduled means an update has been requested and will run
	// on the next [Surface.LayoutIfNeeded].
	surfaceScheduled

	// surfaceUpdating means an update pass is in progress. Triggering
	// another update in this state is a fatal programming error.
	surfaceUpdating
)

func (s surfaceState) String() string {
	switch s {
	case surfaceIdle:
		return "idle"
	case surfaceScheduled:
		return "scheduled"
	case surfaceUpdating:
		return "updating"
	}
	return fmt.Sprintf("surfaceState(%d)", int32(s))
}

// Surface hosts one element tree inside a region of a window: it owns
// the root of the live view hierarchy, schedules update passes, and
// snapshots the environment once per pass. A Surface must only be used
// from the thread that created it.
type Surface struct {
	root        *ViewController
	element     element.Element
	size        math32.Vector2
	appliedSize math32.Vector2
	environment env.Env
	state       surfaceState
	animated    bool
	animator    *Animator
	settings    *DebugSettings
	logger      *slog.Logger
	scheduler   func()
	onChange    func(s *Surface)
	updates     int
}

// SurfaceOption configures a [Surface] at construction.
type SurfaceOption func(s *Surface)

// WithEnvironment sets the surface's base environment, which is
// snapshotted at the start of every update pass.
func WithEnvironment(e env.Env) SurfaceOption {
	return func(s *Surface) { s.environment = e }
}

// WithLogger sets the logger used for update tracing.
func WithLogger(l *slog.Logger) SurfaceOption {
	return func(s *Surface) { s.logger = l }
}

// WithSettings sets the surface's debug settings.
func WithSettings(ds *DebugSettings) SurfaceOption {
	return func(s *Surface) { s.settings = ds }
}

// WithScheduler sets the function called when an update becomes
// scheduled, so the host can request a layout pass from its event loop
// and call [Surface.LayoutIfNeeded] from it.
func WithScheduler(fun func()) SurfaceOption {
	return func(s *Surface) { s.scheduler = fun }
}

// WithViewChangeObserver sets a function called after every completed
// update pass, once the view hierarchy reflects the new content.
func WithViewChangeObserver(fun func(s *Surface)) SurfaceOption {
	return func(s *Surface) { s.onChange = fun }
}

// NewSurface returns a new idle surface with no content and zero size.
func NewSurface(opts ...SurfaceOption) *Surface {
	s := &Surface{
		root:     newRootController(),
		animator: &Animator{},
		settings: &DebugSettings{},
		logger:   logx.NewLogger(os.Stderr),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RootView returns the root of the live view hierarchy. The host
// installs it in its window; its subtree is owned by the reconciler.
func (s *Surface) RootView() view.View {
	return s.root.view
}

// Element returns the surface's current content element, or nil.
func (s *Surface) Element() element.Element {
	return s.element
}

// Size returns the surface's current bounds size.
func (s *Surface) Size() math32.Vector2 {
	return s.size
}

// Updates returns the number of completed update passes.
func (s *Surface) Updates() int {
	return s.updates
}

// SetElement assigns the surface's content. Assigning nil when the
// content is already nil is a no-op. When called inside an [Animate]
// scope, the resulting update runs synchronously and plays transitions;
// otherwise the update is scheduled for the next [LayoutIfNeeded],
// animated as requested.
func (s *Surface) SetElement(el element.Element, animated bool) {
	if s.state == surfaceUpdating {
		panic("core: Surface.SetElement called during an in-progress update; content must not be assigned from update callbacks")
	}
	if el == nil && s.element == nil {
		return
	}
	s.element = el
	s.animated = s.animated || animated || s.animator.InScope()
	if s.animator.InScope() {
		s.performUpdate()
		return
	}
	s.schedule()
}

// SetSize assigns the surface's bounds size. A change schedules a
// non-animated update unless an animation scope is open.
func (s *Surface) SetSize(size math32.Vector2) {
	if s.size == size {
		return
	}
	s.size = size
	if s.state != surfaceUpdating {
		s.schedule()
	}
}

// SetEnvironment replaces the surface's base environment and schedules
// an update so content re-resolves against it.
func (s *Surface) SetEnvironment(e env.Env) {
	s.environment = e
	s.Invalidate()
}

// Invalidate schedules a non-animated update with the current content,
// for when externally held state the content depends on has changed.
func (s *Surface) Invalidate() {
	if s.state == surfaceUpdating {
		panic("core: Surface.Invalidate called during an in-progress update")
	}
	s.animated = s.animated || s.animator.InScope()
	s.schedule()
}

func (s *Surface) schedule() {
	if s.state == surfaceScheduled {
		return
	}
	s.state = surfaceScheduled
	if s.scheduler != nil {
		s.scheduler()
	}
}

// LayoutIfNeeded runs the scheduled update pass, if any. When nothing
// is scheduled and the bounds are unchanged it does nothing, so it is
// safe and cheap to call on every host layout pass. Calling it from
// within an update pass is a fatal programming error.
func (s *Surface) LayoutIfNeeded() {
	if s.state == surfaceUpdating {
		panic("core: reentrant update: Surface.LayoutIfNeeded called during an in-progress update")
	}
	if s.state != surfaceScheduled && s.size == s.appliedSize {
		return
	}
	s.performUpdate()
}

// Animate opens an animation scope for the duration of the given
// function: content assigned inside it updates synchronously with
// transitions enabled. Scopes nest.
func (s *Surface) Animate(fun func()) {
	s.animator.Animate(fun)
}

// AdvanceAnimations drives the surface's running animations forward by
// the given time step. The host calls this from its frame clock.
func (s *Surface) AdvanceAnimations(dt time.Duration) {
	s.animator.Advance(dt)
}

// Animations returns the number of running animations.
func (s *Surface) Animations() int {
	return s.animator.Active()
}

// SizeThatFits measures the current content under the given constraint
// without updating any views. It returns zero when there is no content.
func (s *Surface) SizeThatFits(c element.Constraint) math32.Vector2 {
	if s.element == nil {
		return math32.Vector2{}
	}
	return layout.Measure(s.element, c, s.snapshotEnvironment(s.size))
}

// snapshotEnvironment captures the environment for one update pass,
// exactly once per pass, with the surface's own contributions set.
func (s *Surface) snapshotEnvironment(size math32.Vector2) env.Env {
	return env.Set(s.environment, env.WindowSize, size)
}

// performUpdate runs one full update pass: resolve the element tree
// under the current bounds and a single environment snapshot, then
// reconcile the controller tree against the result. The bounds size is
// captured once at the start; a size assigned from within the pass is
// picked up by a follow-up scheduled pass, never by this one.
func (s *Surface) performUpdate() {
	if s.state == surfaceUpdating {
		panic("core: reentrant update on Surface; a second top-level update was triggered while one is in progress")
	}
	s.state = surfaceUpdating
	animated := s.animated || s.animator.InScope()
	size := s.size
	defer func() {
		s.state = surfaceIdle
		s.animated = false
		if s.size != s.appliedSize {
			s.schedule()
		}
	}()

	e := s.snapshotEnvironment(size)
	bounds := math32.B2Size(math32.Vector2{}, size)
	rootNode := &layout.Node{Attributes: layout.DefaultAttributes(bounds)}
	if s.element != nil {
		resolved := layout.Resolve(s.element, element.Size(size), e)
		rootNode.Children = []layout.ChildNode{{
			ID:   layout.Identifier{Type: elementType(s.element)},
			Node: resolved,
		}}
	}

	rvb := s.root.view.AsView()
	rvb.Frame = bounds
	rvb.SetNeedsLayout()

	ctx := updateContext{animationsEnabled: animated}
	pass := &updatePass{animator: s.animator, settings: s.settings, logger: s.logger}
	s.root.update(rootNode, ctx, pass, layout.Path{})

	s.appliedSize = size
	s.updates++
	pass.trace("update pass complete", "size", size, "animated", animated, "updates", s.updates)
	if s.onChange != nil {
		s.onChange(s)
	}
}

func elementType(el element.Element) reflect.Type {
	return reflect.TypeOf(el)
}
