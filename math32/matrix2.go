// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 2D affine transformation matrix, in the standard
// column-major form used for graphics:
//
//	XX YX
//	XY YY
//	X0 Y0
//
// The identity matrix has XX = YY = 1 and all other components 0.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

func (m Matrix2) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v, %v, %v)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

// IsIdentity reports whether this is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Mul returns this matrix multiplied by the other given matrix,
// so that applying the result is equivalent to applying other first
// and then this matrix.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// Translate returns this matrix translated by the given offsets.
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns this matrix scaled by the given factors.
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns this matrix rotated by the given angle in radians.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// MulVector2AsVector multiplies the given vector by this matrix as a
// vector, ignoring the translation components.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y,
		Y: m.YX*v.X + m.YY*v.Y,
	}
}

// MulVector2AsPoint multiplies the given vector by this matrix as a
// point, including the translation components.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y + m.X0,
		Y: m.YX*v.X + m.YY*v.Y + m.Y0,
	}
}

// Lerp returns the component-wise linear interpolation between this
// matrix and the other given matrix, by the given amount in [0, 1].
// This is only meaningful for matrices that differ by translation
// and/or scale, which is what the transition animations use.
func (m Matrix2) Lerp(other Matrix2, amount float32) Matrix2 {
	return Matrix2{
		XX: Lerp(m.XX, other.XX, amount),
		YX: Lerp(m.YX, other.YX, amount),
		XY: Lerp(m.XY, other.XY, amount),
		YY: Lerp(m.YY, other.YY, amount),
		X0: Lerp(m.X0, other.X0, amount),
		Y0: Lerp(m.Y0, other.Y0, amount),
	}
}
