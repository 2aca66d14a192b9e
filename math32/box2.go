// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 is a 2D axis-aligned rectangle defined by its Min (upper-left)
// and Max (lower-right) corners.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new empty [Box2], with Min and Max set such that any
// subsequent [Box2.ExpandByPoint] produces a valid box.
func B2Empty() Box2 {
	return Box2{
		Min: Vec2(Inf(1), Inf(1)),
		Max: Vec2(Inf(-1), Inf(-1)),
	}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2Size returns a new [Box2] from the given position and size.
func B2Size(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty reports whether this box has zero or negative area.
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Size returns the size of this box (Max - Min).
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Union returns the smallest box containing both this box and the other
// given box.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Intersect returns the largest box contained by both this box and the
// other given box. If the boxes do not overlap, the result is empty.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// ContainsPoint reports whether this box contains the given point
// (inclusive of Min, exclusive of Max).
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X < b.Max.X && pt.Y >= b.Min.Y && pt.Y < b.Max.Y
}

// ExpandByPoint returns this box expanded to contain the given point.
func (b Box2) ExpandByPoint(pt Vector2) Box2 {
	return Box2{b.Min.Min(pt), b.Max.Max(pt)}
}

// Canon returns a canonical version of this box, with Min actually
// less than or equal to Max in both dimensions.
func (b Box2) Canon() Box2 {
	return Box2{b.Min.Min(b.Max), b.Min.Max(b.Max)}
}

// Lerp returns the corner-wise linear interpolation between this box and
// the other given box, by the given amount in [0, 1].
func (b Box2) Lerp(other Box2, amount float32) Box2 {
	return Box2{b.Min.Lerp(other.Min, amount), b.Max.Lerp(other.Max, amount)}
}

// MulMatrix2 returns this box transformed by the given matrix, as the
// bounding box of the four transformed corners.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	r := B2Empty()
	r = r.ExpandByPoint(m.MulVector2AsPoint(b.Min))
	r = r.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	r = r.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	r = r.ExpandByPoint(m.MulVector2AsPoint(b.Max))
	return r
}

// ToRect returns this box as an [image.Rectangle], rounding coordinates.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointRound(), Max: b.Max.ToPointRound()}
}

// SideFloats are float32 values for the four sides of a rectangle:
// top, right, bottom, left. It is used for insets such as safe areas
// and padding.
type SideFloats struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewSideFloats returns a new [SideFloats] with all sides set to the
// given value.
func NewSideFloats(v float32) SideFloats {
	return SideFloats{v, v, v, v}
}

// Horizontal returns the sum of the left and right sides.
func (s SideFloats) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom sides.
func (s SideFloats) Vertical() float32 {
	return s.Top + s.Bottom
}

// InsetBox returns the given box inset by these side values.
func (s SideFloats) InsetBox(b Box2) Box2 {
	return Box2{
		Min: b.Min.Add(Vec2(s.Left, s.Top)),
		Max: b.Max.Sub(Vec2(s.Right, s.Bottom)),
	}
}
