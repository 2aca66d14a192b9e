// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
)

// Orientation is the main axis of a [Stack].
type Orientation int32

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota

	// Horizontal stacks children along the layout direction.
	Horizontal
)

// Align positions children along a stack's cross axis.
type Align int32

const (
	// Start aligns children at the cross-axis start.
	Start Align = iota

	// Center centers children on the cross axis.
	Center

	// End aligns children at the cross-axis end.
	End

	// Stretch sizes children to the full cross-axis extent.
	Stretch
)

// loosen converts an exact axis constraint to an at-most one, so
// children of a fixed-size container may be smaller than it.
func loosen(a element.Axis) element.Axis {
	if a.Mode == element.Exact {
		return element.UpTo(a.Value)
	}
	return a
}

// Inset is a [element.Layouter] for a single child inset from the
// container's edges.
type Inset struct {

	// Insets are the distances from the container's edges to the child.
	Insets math32.SideFloats
}

func (in Inset) childConstraint(c element.Constraint) element.Constraint {
	shrink := func(a element.Axis, by float32) element.Axis {
		if a.Mode == element.Unconstrained {
			return a
		}
		a.Value = math32.Max(a.Value-by, 0)
		return a
	}
	return element.Constraint{
		Width:  shrink(loosen(c.Width), in.Insets.Horizontal()),
		Height: shrink(loosen(c.Height), in.Insets.Vertical()),
	}
}

// Measure returns the child's size plus the insets.
func (in Inset) Measure(c element.Constraint, children []element.LayoutChild, e env.Env) math32.Vector2 {
	if len(children) == 0 {
		return math32.Vec2(in.Insets.Horizontal(), in.Insets.Vertical())
	}
	sz := children[0].Measure(in.childConstraint(c), e)
	return sz.Add(math32.Vec2(in.Insets.Horizontal(), in.Insets.Vertical()))
}

// Place puts the child in the inset interior of the container.
func (in Inset) Place(size math32.Vector2, children []element.LayoutChild, e env.Env) []math32.Box2 {
	frames := make([]math32.Box2, len(children))
	interior := in.Insets.InsetBox(math32.B2Size(math32.Vector2{}, size))
	for i := range frames {
		frames[i] = interior
	}
	return frames
}

// Overlay is a [element.Layouter] that gives every child the full
// container size, layering them in declaration order.
type Overlay struct{}

// Measure returns the maximum of the children's measured sizes.
func (Overlay) Measure(c element.Constraint, children []element.LayoutChild, e env.Env) math32.Vector2 {
	cc := element.Constraint{Width: loosen(c.Width), Height: loosen(c.Height)}
	var sz math32.Vector2
	for _, ch := range children {
		sz = sz.Max(ch.Measure(cc, e))
	}
	return sz
}

// Place gives every child the full container bounds.
func (Overlay) Place(size math32.Vector2, children []element.LayoutChild, e env.Env) []math32.Box2 {
	frames := make([]math32.Box2, len(children))
	full := math32.B2Size(math32.Vector2{}, size)
	for i := range frames {
		frames[i] = full
	}
	return frames
}

// Stack is a [element.Layouter] that arranges children sequentially
// along a main axis, with a gap between adjacent children, flex grow
// distribution of leftover main-axis space, and cross-axis alignment.
type Stack struct {

	// Orientation is the main axis.
	Orientation Orientation

	// Gap is the space between adjacent children.
	Gap float32

	// Alignment positions children along the cross axis.
	Alignment Align
}

// main and cross extract the axis components for this orientation.
func (st Stack) main(v math32.Vector2) float32 {
	if st.Orientation == Horizontal {
		return v.X
	}
	return v.Y
}

func (st Stack) cross(v math32.Vector2) float32 {
	if st.Orientation == Horizontal {
		return v.Y
	}
	return v.X
}

func (st Stack) vec(main, cross float32) math32.Vector2 {
	if st.Orientation == Horizontal {
		return math32.Vec2(main, cross)
	}
	return math32.Vec2(cross, main)
}

// childConstraint is the constraint children are measured under:
// at most the cross-axis extent, unconstrained along the main axis.
func (st Stack) childConstraint(c element.Constraint) element.Constraint {
	if st.Orientation == Horizontal {
		return element.Constraint{Height: loosen(c.Height)}
	}
	return element.Constraint{Width: loosen(c.Width)}
}

// Measure returns the sum of child sizes plus gaps along the main
// axis, and the maximum child size along the cross axis.
func (st Stack) Measure(c element.Constraint, children []element.LayoutChild, e env.Env) math32.Vector2 {
	cc := st.childConstraint(c)
	var main, cross float32
	for i, ch := range children {
		sz := ch.Measure(cc, e)
		main += st.main(sz)
		cross = math32.Max(cross, st.cross(sz))
		if i > 0 {
			main += st.Gap
		}
	}
	return st.vec(main, cross)
}

// Place lays children out along the main axis in order, distributing
// any leftover main-axis space to children with non-zero grow factors
// in proportion to those factors.
func (st Stack) Place(size math32.Vector2, children []element.LayoutChild, e env.Env) []math32.Box2 {
	cc := st.childConstraint(element.Size(size))
	sizes := make([]math32.Vector2, len(children))
	var used, totalGrow float32
	for i, ch := range children {
		sizes[i] = ch.Measure(cc, e)
		used += st.main(sizes[i])
		if i > 0 {
			used += st.Gap
		}
		totalGrow += ch.Grow()
	}
	leftover := st.main(size) - used
	frames := make([]math32.Box2, len(children))
	var pos float32
	for i, ch := range children {
		m := st.main(sizes[i])
		if leftover > 0 && totalGrow > 0 && ch.Grow() > 0 {
			m += leftover * ch.Grow() / totalGrow
		}
		cr := st.cross(sizes[i])
		var crossPos float32
		switch st.Alignment {
		case Stretch:
			cr = st.cross(size)
		case Center:
			crossPos = (st.cross(size) - cr) / 2
		case End:
			crossPos = st.cross(size) - cr
		}
		frames[i] = math32.B2Size(st.vec(pos, crossPos), st.vec(m, cr))
		pos += m + st.Gap
	}
	return frames
}
