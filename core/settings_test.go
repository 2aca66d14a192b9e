// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/compose/logx"
	"cogentcore.org/compose/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "debug.toml")
	in := DebugSettings{UpdateTrace: true}
	require.NoError(t, in.Save(fname))

	var out DebugSettings
	require.NoError(t, out.Open(fname))
	assert.Equal(t, in, out)
}

func TestSettingsMissingFile(t *testing.T) {
	var ds DebugSettings
	assert.NoError(t, ds.Open(filepath.Join(t.TempDir(), "none.toml")))
	assert.False(t, ds.UpdateTrace)
}

func TestUpdateTraceLogging(t *testing.T) {
	s := NewSurface(WithSettings(&DebugSettings{UpdateTrace: true}), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.SetSize(math32.Vec2(100, 100))
	s.SetElement(vcolumn{children: plain(sized{w: 10, h: 10})}, false)
	s.LayoutIfNeeded()
	assert.Equal(t, 1, s.Updates())
}

func TestLayoutTraceLogging(t *testing.T) {
	b := &strings.Builder{}
	s := NewSurface(WithSettings(&DebugSettings{LayoutTrace: true}), WithLogger(logx.NewLogger(b)))
	s.SetSize(math32.Vec2(100, 100))
	s.SetElement(vcolumn{children: plain(sized{w: 10, h: 10})}, false)
	s.LayoutIfNeeded()

	out := b.String()
	assert.Contains(t, out, "layout")
	assert.Contains(t, out, "path=")
	assert.Contains(t, out, "frame=")
}
