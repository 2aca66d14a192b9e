// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elements provides the built-in elements: leaves such as
// [Label], [Image], and [Spacer], containers such as [Box] and
// [Stack], and attribute/transition wrappers. They contain no
// reconciliation logic; each one only supplies measurement and a
// backing view description.
package elements

import (
	"image/color"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/text"
	"cogentcore.org/compose/view"
)

// DefaultFontSize is the font size used by a [Label] with no Size.
const DefaultFontSize float32 = 16

// Label displays a single run of text. It measures via the embedded
// default face and is backed by a [TextView].
type Label struct {

	// Text is the string to display. Newlines break lines.
	Text string

	// Size is the font size in points; 0 means [DefaultFontSize].
	Size float32

	// Color is the text color; the zero value means opaque black.
	Color color.RGBA
}

func (l Label) fontSize() float32 {
	if l.Size <= 0 {
		return DefaultFontSize
	}
	return l.Size
}

func (l Label) Content() element.Content {
	return element.Content{
		Measure: func(c element.Constraint, e env.Env) math32.Vector2 {
			return text.Default(l.fontSize()).Measure(l.Text)
		},
	}
}

func (l Label) Description(e env.Env) *view.Description {
	d := view.Describe(func() *TextView { return &TextView{} })
	d.Apply = func(v view.View) {
		tv := v.(*TextView)
		tv.Text = l.Text
		tv.Size = l.fontSize()
		tv.Color = l.Color
	}
	return d
}

// TextView is the backing view for [Label].
type TextView struct {
	view.ViewBase

	// Text is the displayed string.
	Text string

	// Size is the font size in points.
	Size float32

	// Color is the text color.
	Color color.RGBA
}
