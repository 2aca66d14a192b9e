// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
	On    bool   `toml:"on"`
}

func TestSaveOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "settings.toml")
	in := testSettings{Name: "compose", Count: 3, On: true}
	require.NoError(t, Save(&in, fname))

	var out testSettings
	require.NoError(t, Open(&out, fname))
	assert.Equal(t, in, out)
}

func TestOpenMissing(t *testing.T) {
	var out testSettings
	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "nope.toml")))
}

func TestReadWrite(t *testing.T) {
	var out testSettings
	require.NoError(t, Read(&out, strings.NewReader(`name = "x"`+"\n"+`count = 7`)))
	assert.Equal(t, "x", out.Name)
	assert.Equal(t, 7, out.Count)

	b := &strings.Builder{}
	require.NoError(t, Write(&out, b))
	assert.Contains(t, b.String(), "name")
	assert.Contains(t, b.String(), "count = 7")
}

func TestReadInvalid(t *testing.T) {
	var out testSettings
	assert.Error(t, Read(&out, strings.NewReader("name = ")))
}
