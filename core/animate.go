// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"
	"time"

	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Animation represents one running animation on a surface. The Func is
// called once per [Animator.Advance] tick with the elapsed Delta set,
// and sets Done when the animation has reached its final state.
type Animation struct {

	// Func is the function called on every tick to advance the
	// animation. It reads Delta and sets Done when finished.
	Func func(a *Animation)

	// Delta is the time elapsed since the previous tick. It is set by
	// [Animator.Advance] before Func is called.
	Delta time.Duration

	// Done is set by Func when the animation is complete, causing it to
	// be removed after the current tick.
	Done bool

	// OnDone, if non-nil, is called once after the animation completes.
	OnDone func()
}

// Animator owns the running animations of one surface and tracks the
// animation scope depth used to decide whether content assignment
// inherits an enclosing animation.
type Animator struct {
	animations []*Animation

	// attributes tracks the in-flight attribute animation per view, so
	// a later update touching the same view supersedes it.
	attributes map[*view.ViewBase]*Animation

	scopeDepth int
}

// Animate runs the given function inside an animation scope. Updates
// triggered within the scope run synchronously and play transitions.
// Scopes nest.
func (an *Animator) Animate(fun func()) {
	an.scopeDepth++
	defer func() { an.scopeDepth-- }()
	fun()
}

// InScope reports whether an animation scope is currently open.
func (an *Animator) InScope() bool {
	return an.scopeDepth > 0
}

// Add registers the given animation to be driven by subsequent
// [Animator.Advance] ticks.
func (an *Animator) Add(a *Animation) {
	an.animations = append(an.animations, a)
}

// Active returns the number of running animations.
func (an *Animator) Active() int {
	return len(an.animations)
}

// Advance drives all running animations forward by the given time step,
// removing those that complete and invoking their OnDone hooks.
func (an *Animator) Advance(dt time.Duration) {
	running := an.animations
	for _, a := range running {
		if a.Done {
			continue
		}
		a.Delta = dt
		a.Func(a)
	}
	kept := an.animations[:0]
	for _, a := range an.animations {
		if a.Done {
			if a.OnDone != nil {
				a.OnDone()
			}
			continue
		}
		kept = append(kept, a)
	}
	an.animations = kept
}

// cancelAttributes stops any in-flight attribute animation on the
// given view without applying its final state or its OnDone hook. Each
// view has at most one attribute animation at a time; the newest update
// to touch a view owns its attributes.
func (an *Animator) cancelAttributes(v view.View) {
	vb := v.AsView()
	a := an.attributes[vb]
	if a == nil {
		return
	}
	a.Done = true
	a.OnDone = nil
	delete(an.attributes, vb)
	an.animations = slices.DeleteFunc(an.animations, func(x *Animation) bool { return x == a })
}

// applyAttributes applies the given attributes to the view directly,
// superseding any attribute animation still running from an earlier
// update.
func (an *Animator) applyAttributes(v view.View, attrs layout.Attributes) {
	an.cancelAttributes(v)
	attrs.Apply(v)
}

// animateAttributes animates the given view's layout attributes from
// one state to another over the given duration, superseding any earlier
// attribute animation on the same view. A non-positive duration applies
// the final state immediately. The optional onDone hook runs once the
// final state has been applied.
func (an *Animator) animateAttributes(v view.View, from, to layout.Attributes, d time.Duration, curve view.Curve, onDone func()) {
	an.cancelAttributes(v)
	if d <= 0 {
		to.Apply(v)
		if onDone != nil {
			onDone()
		}
		return
	}
	vb := v.AsView()
	var elapsed time.Duration
	a := &Animation{OnDone: onDone}
	a.Func = func(a *Animation) {
		elapsed += a.Delta
		t := float32(elapsed) / float32(d)
		if t >= 1 {
			to.Apply(v)
			a.Done = true
			if an.attributes[vb] == a {
				delete(an.attributes, vb)
			}
			return
		}
		from.Lerp(to, curve(t)).Apply(v)
	}
	if an.attributes == nil {
		an.attributes = map[*view.ViewBase]*Animation{}
	}
	an.attributes[vb] = a
	an.Add(a)
}

// hiddenAttributes returns the attributes of the hidden end state of
// the given transition relative to the given resolved attributes.
func hiddenAttributes(final layout.Attributes, t *view.Transition) layout.Attributes {
	hidden := final
	hidden.Alpha = t.Alpha
	if t.Transform != (math32.Matrix2{}) {
		hidden.Transform = final.Transform.Mul(t.Transform)
	}
	return hidden
}

// playAppearance places the given newly created view in the hidden end
// state of its appearance transition and animates it to its resolved
// attributes.
func (an *Animator) playAppearance(v view.View, t *view.Transition, final layout.Attributes) {
	hidden := hiddenAttributes(final, t)
	hidden.Apply(v)
	an.animateAttributes(v, hidden, final, t.Duration, t.CurveOrDefault(), nil)
}

// playDisappearance animates the given view from its current attributes
// to the hidden end state of its disappearance transition, then calls
// remove. The view stays in the live hierarchy until the animation
// completes.
func (an *Animator) playDisappearance(v view.View, t *view.Transition, remove func()) {
	vb := v.AsView()
	from := layout.Attributes{Frame: vb.Frame, Alpha: vb.Alpha, Transform: vb.Transform}
	an.animateAttributes(v, from, hiddenAttributes(from, t), t.Duration, t.CurveOrDefault(), remove)
}
