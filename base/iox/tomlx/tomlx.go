// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides convenience functions for reading and writing
// TOML files to and from arbitrary values.
package tomlx

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f)
}

// OpenFS reads the given value from the given TOML file in the given
// filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f)
}

// Read reads the given value from the given reader as TOML.
func Read(v any, r io.Reader) error {
	d := toml.NewDecoder(r)
	if err := d.Decode(v); err != nil {
		return fmt.Errorf("tomlx: decoding: %w", err)
	}
	return nil
}

// Save writes the given value to the given file as TOML.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given value to the given writer as TOML.
func Write(v any, w io.Writer) error {
	e := toml.NewEncoder(w)
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("tomlx: encoding: %w", err)
	}
	return nil
}
