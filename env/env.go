// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env provides the Environment: an immutable, inherited,
// typed-key configuration bag that is threaded through measurement and
// layout. A [Surface] snapshots the environment exactly once per update
// pass, so every read within one pass sees a consistent view.
package env

import "cogentcore.org/compose/math32"

// Env is an immutable environment snapshot. The zero value is a valid
// empty environment in which every key reads as its declared default.
// Deriving a modified environment with [Env.Set] copies the underlying
// storage; the receiver is never mutated.
type Env struct {
	values map[any]any
}

// Key is a typed environment key with a declared default value.
// Each distinct Key value identifies a distinct entry, so keys should
// be declared once as package-level variables.
type Key[T any] struct {
	// Name identifies the key in diagnostics.
	Name string

	// Default is the value read for this key when none has been set.
	Default T
}

// NewKey returns a new [Key] with the given name and default value.
func NewKey[T any](name string, def T) *Key[T] {
	return &Key[T]{Name: name, Default: def}
}

// Get returns the value set for the given key in the environment,
// or the key's declared default if none has been set.
func Get[T any](e Env, k *Key[T]) T {
	if e.values == nil {
		return k.Default
	}
	if v, ok := e.values[k]; ok {
		return v.(T)
	}
	return k.Default
}

// Set returns a derived environment with the given key set to the given
// value. The receiver is unchanged.
func Set[T any](e Env, k *Key[T], v T) Env {
	nv := make(map[any]any, len(e.values)+1)
	for ek, ev := range e.values {
		nv[ek] = ev
	}
	nv[k] = v
	return Env{values: nv}
}

// LayoutDirection is the direction in which sibling content is laid out.
type LayoutDirection int32

const (
	// LeftToRight lays out siblings from left to right.
	LeftToRight LayoutDirection = iota

	// RightToLeft lays out siblings from right to left.
	RightToLeft
)

// Standard environment keys, snapshotted by the display surface before
// each update pass.
var (
	// DisplayScale is the ratio of physical pixels to logical points.
	DisplayScale = NewKey[float32]("displayScale", 1)

	// SafeAreaInsets are the insets of the display area obscured by
	// host platform decor. The core applies no inset policy itself;
	// elements read this key as needed.
	SafeAreaInsets = NewKey("safeAreaInsets", math32.SideFloats{})

	// Direction is the layout direction for sibling content.
	Direction = NewKey("layoutDirection", LeftToRight)

	// WindowSize is the size of the hosting window in points.
	WindowSize = NewKey("windowSize", math32.Vector2{})
)
