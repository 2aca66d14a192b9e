// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"io/fs"

	"cogentcore.org/compose/base/iox/tomlx"
)

// DebugSettings are development-time switches for the reconciler,
// persisted as TOML.
type DebugSettings struct {

	// UpdateTrace logs every controller create, reuse, and removal
	// during update passes.
	UpdateTrace bool `toml:"update-trace"`

	// LayoutTrace logs resolved sizes and frames during update passes.
	LayoutTrace bool `toml:"layout-trace"`
}

// Open loads the settings from the given TOML file. A missing file
// leaves the settings at their zero values and is not an error.
func (ds *DebugSettings) Open(filename string) error {
	err := tomlx.Open(ds, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Save writes the settings to the given TOML file.
func (ds *DebugSettings) Save(filename string) error {
	return tomlx.Save(ds, filename)
}
