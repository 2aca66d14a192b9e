// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"time"

	"cogentcore.org/compose/math32"
)

// Curve maps animation progress in [0, 1] to an eased value in [0, 1].
type Curve func(t float32) float32

// Linear is the identity [Curve].
func Linear(t float32) float32 {
	return t
}

// EaseInOut is a smoothstep [Curve], accelerating from rest and
// decelerating into the final state.
func EaseInOut(t float32) float32 {
	return t * t * (3 - 2*t)
}

// Trigger is the policy for when an appearance transition plays.
type Trigger int32

const (
	// TriggerIfNotNested plays the transition only when no enclosing
	// ancestor in the same update batch already played an appearance
	// transition. This is the default: when a parent and its
	// descendants all appear at once, only the outermost animates and
	// the descendants appear directly in their final state.
	TriggerIfNotNested Trigger = iota

	// TriggerAlways plays the transition whenever the view appears and
	// animations are permitted, regardless of ancestor transitions.
	TriggerAlways
)

// Transition declares an appearance or disappearance animation for a
// view: the attributes of the hidden end state, a duration, a curve,
// and a trigger policy. When appearing, the view starts at the hidden
// state and animates to its resolved attributes; when disappearing, it
// animates from its current attributes to the hidden state and is then
// removed.
type Transition struct {

	// Alpha is the view's opacity at the hidden end of the transition.
	Alpha float32

	// Transform is the view's transform at the hidden end of the
	// transition, composed with its resolved transform.
	Transform math32.Matrix2

	// Duration is how long the transition runs.
	Duration time.Duration

	// Curve is the easing curve; nil means [EaseInOut].
	Curve Curve

	// Trigger is the appearance trigger policy. It has no effect on
	// disappearance.
	Trigger Trigger
}

// Fade returns a [Transition] that fades between transparent and the
// resolved alpha over the given duration.
func Fade(d time.Duration) *Transition {
	return &Transition{Transform: math32.Identity2(), Duration: d}
}

// Slide returns a [Transition] that fades and translates by the given
// offset over the given duration.
func Slide(offset math32.Vector2, d time.Duration) *Transition {
	return &Transition{Transform: math32.Translate2D(offset.X, offset.Y), Duration: d}
}

// CurveOrDefault returns the transition's curve, or [EaseInOut] if nil.
func (t *Transition) CurveOrDefault() Curve {
	if t.Curve == nil {
		return EaseInOut
	}
	return t.Curve
}

// LayoutTransition declares the animation used when a view's layout
// attributes change across an update.
type LayoutTransition struct {

	// Duration is how long the attribute animation runs.
	Duration time.Duration

	// Curve is the easing curve; nil means [EaseInOut].
	Curve Curve
}

// CurveOrDefault returns the transition's curve, or [EaseInOut] if nil.
func (t *LayoutTransition) CurveOrDefault() Curve {
	if t.Curve == nil {
		return EaseInOut
	}
	return t.Curve
}
