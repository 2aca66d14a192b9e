// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"image"

	"cogentcore.org/compose/element"
	"cogentcore.org/compose/env"
	"cogentcore.org/compose/math32"
	"cogentcore.org/compose/view"
)

// Image displays a bitmap image at its natural size in points,
// dividing the pixel size by the environment's display scale.
// It is backed by an [ImageView].
type Image struct {

	// Img is the image to display.
	Img image.Image
}

func (im Image) Content() element.Content {
	return element.Content{
		Measure: func(c element.Constraint, e env.Env) math32.Vector2 {
			if im.Img == nil {
				return math32.Vector2{}
			}
			scale := env.Get(e, env.DisplayScale)
			if scale <= 0 {
				scale = 1
			}
			return math32.Vector2FromPoint(im.Img.Bounds().Size()).DivScalar(scale)
		},
	}
}

func (im Image) Description(e env.Env) *view.Description {
	d := view.Describe(func() *ImageView { return &ImageView{} })
	d.Apply = func(v view.View) {
		v.(*ImageView).Img = im.Img
	}
	return d
}

// ImageView is the backing view for [Image].
type ImageView struct {
	view.ViewBase

	// Img is the displayed image.
	Img image.Image
}
