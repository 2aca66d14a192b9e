// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout resolves an element tree under a size constraint and
// an environment into a tree of positioned nodes, each carrying a
// stable path identifier, layout attributes, and an optional backing
// view description. The resolved tree is the single input consumed by
// the reconciler on every update pass.
package layout

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/compose/element"
)

// Identifier identifies one child within its parent's child list:
// the child's element type, its optional explicit key, and the
// occurrence ordinal of that type+key combination among its siblings.
// Using the occurrence ordinal rather than the raw sibling index keeps
// a child's identity stable when unrelated siblings are inserted,
// removed, or reordered around it.
//
// Identifiers compare by value, and within one parent's child list
// they must be pairwise distinct; the reconciler treats a duplicate as
// a fatal programming error.
type Identifier struct {

	// Type is the concrete element type at this position.
	Type reflect.Type

	// Key is the explicit key from [element.Child.Key], if any.
	Key element.Key

	// Index is the occurrence ordinal of this Type+Key combination
	// within the parent's child list, starting at 0.
	Index int
}

func (id Identifier) String() string {
	t := "nil"
	if id.Type != nil {
		t = id.Type.String()
		if i := strings.LastIndex(t, "."); i >= 0 {
			t = t[i+1:]
		}
	}
	if id.Key != "" {
		return fmt.Sprintf("%s:%s[%d]", t, id.Key, id.Index)
	}
	return fmt.Sprintf("%s[%d]", t, id.Index)
}

// Path is an ordered sequence of per-level identifiers that addresses
// one node's position in the logical tree, independent of its position
// in any previous tree.
type Path []Identifier

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := strings.Builder{}
	for _, id := range p {
		b.WriteByte('/')
		b.WriteString(id.String())
	}
	return b.String()
}

// Child returns a new path with the given identifier appended.
// The receiver is not modified or aliased.
func (p Path) Child(id Identifier) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = id
	return np
}

// Join returns a new path with the given relative path appended.
// Neither argument is modified or aliased.
func (p Path) Join(q Path) Path {
	np := make(Path, 0, len(p)+len(q))
	np = append(np, p...)
	return append(np, q...)
}

// identifierFactory assigns occurrence ordinals to the children of one
// parent in declaration order.
type identifierFactory struct {
	counts map[Identifier]int
}

func newIdentifierFactory() *identifierFactory {
	return &identifierFactory{counts: make(map[Identifier]int)}
}

// next returns the identifier for the next child with the given
// element type and key.
func (f *identifierFactory) next(t reflect.Type, key element.Key) Identifier {
	id := Identifier{Type: t, Key: key}
	id.Index = f.counts[id]
	f.counts[Identifier{Type: t, Key: key}]++
	return id
}
