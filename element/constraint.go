// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "cogentcore.org/compose/math32"

// AxisMode is the kind of constraint applied to one axis.
type AxisMode int32

const (
	// Unconstrained means any size is acceptable along the axis.
	Unconstrained AxisMode = iota

	// AtMost means sizes up to and including Value are acceptable.
	AtMost

	// Exact means only Value itself is acceptable.
	Exact
)

// Axis is a size constraint along one axis.
type Axis struct {

	// Mode is the kind of constraint.
	Mode AxisMode

	// Value is the constraining size for the [AtMost] and [Exact]
	// modes; it is ignored when Unconstrained.
	Value float32
}

// Exactly returns an [Exact] axis constraint for the given value.
func Exactly(v float32) Axis {
	return Axis{Mode: Exact, Value: v}
}

// UpTo returns an [AtMost] axis constraint for the given value.
func UpTo(v float32) Axis {
	return Axis{Mode: AtMost, Value: v}
}

// Any returns an [Unconstrained] axis constraint.
func Any() Axis {
	return Axis{}
}

// Max returns the largest acceptable size along this axis:
// Value for constrained axes, positive infinity otherwise.
func (a Axis) Max() float32 {
	if a.Mode == Unconstrained {
		return math32.Inf(1)
	}
	return a.Value
}

// Clamp returns the given size clamped to this axis constraint.
// Clamping is monotonic: for a fixed constraint, a larger input never
// produces a smaller output, and a tighter constraint never produces a
// larger output for the same input.
func (a Axis) Clamp(v float32) float32 {
	switch a.Mode {
	case Exact:
		return a.Value
	case AtMost:
		return math32.Min(v, a.Value)
	}
	return v
}

// Constraint is a two-axis size constraint, the input to all element
// measurement.
type Constraint struct {
	Width  Axis
	Height Axis
}

// Size returns an exact [Constraint] for the given size.
func Size(sz math32.Vector2) Constraint {
	return Constraint{Width: Exactly(sz.X), Height: Exactly(sz.Y)}
}

// Within returns an at-most [Constraint] for the given size.
func Within(sz math32.Vector2) Constraint {
	return Constraint{Width: UpTo(sz.X), Height: UpTo(sz.Y)}
}

// Unbounded returns a fully unconstrained [Constraint].
func Unbounded() Constraint {
	return Constraint{}
}

// Clamp returns the given size clamped to both axes of the constraint.
func (c Constraint) Clamp(sz math32.Vector2) math32.Vector2 {
	return math32.Vec2(c.Width.Clamp(sz.X), c.Height.Clamp(sz.Y))
}

// MaxSize returns the largest acceptable size under this constraint,
// with infinities on unconstrained axes.
func (c Constraint) MaxSize() math32.Vector2 {
	return math32.Vec2(c.Width.Max(), c.Height.Max())
}
