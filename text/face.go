// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides the text measurement collaborator used by the
// label element: opentype font parsing and advance-based measurement
// of strings at a given size. It does no shaping, wrapping, or
// rendering; those belong to a full text layout system.
package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"cogentcore.org/compose/math32"
)

// Face is a parsed font at a specific size in points. Measurement is
// deterministic and idempotent, and a Face is safe for concurrent use,
// so it satisfies the measurement contract elements depend on.
type Face struct {
	font *sfnt.Font
	size float32
}

// NewFace parses the given opentype font data and returns a [Face] at
// the given size.
func NewFace(data []byte, size float32) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return &Face{font: f, size: size}, nil
}

var (
	defaultFont     *sfnt.Font
	defaultFontOnce sync.Once
)

// Default returns a [Face] for the embedded Latin Modern Roman font at
// the given size. The font data is parsed once and shared.
func Default(size float32) *Face {
	defaultFontOnce.Do(func() {
		f, err := sfnt.Parse(lmroman10regular.TTF)
		if err != nil { // embedded data, can only fail if corrupted
			panic("text: parsing embedded font: " + err.Error())
		}
		defaultFont = f
	})
	return &Face{font: defaultFont, size: size}
}

// Size returns the size of this face in points.
func (f *Face) Size() float32 {
	return f.size
}

func (f *Face) ppem() fixed.Int26_6 {
	return math32.ToFixed(f.size)
}

// Advance returns the total advance width of the given single-line
// string. Runes without a glyph are measured as the missing glyph.
func (f *Face) Advance(s string) float32 {
	var buf sfnt.Buffer
	var adv fixed.Int26_6
	for _, r := range s {
		gi, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		a, err := f.font.GlyphAdvance(&buf, gi, f.ppem(), font.HintingNone)
		if err != nil {
			continue
		}
		adv += a
	}
	return math32.FromFixed(adv)
}

// Height returns the line height of this face.
func (f *Face) Height() float32 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return f.size
	}
	return math32.FromFixed(m.Height)
}

// Measure returns the size of the given string, treating newlines as
// line breaks: the width is the widest line's advance and the height
// is the number of lines times the line height, both rounded up to
// whole points.
func (f *Face) Measure(s string) math32.Vector2 {
	lines := strings.Split(s, "\n")
	var w float32
	for _, ln := range lines {
		w = math32.Max(w, f.Advance(ln))
	}
	return math32.Vec2(math32.Ceil(w), math32.Ceil(float32(len(lines))*f.Height()))
}
