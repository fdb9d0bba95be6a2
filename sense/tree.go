// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

import (
	"strconv"
	"strings"
)

type ownership uint8

const (
	transient ownership = iota // exclusively owned working copy
	canonical                  // shared, owned by a Store
	released                   // transient whose items were handed to another tree
)

// A Tree is a sensitivity domain: an ordered set of items, any of which
// triggers the logic it is attached to.
//
// A Tree is either transient or canonical. Transient trees are built with
// NewTree and may be modified; canonical trees are returned by a Store, are
// shared by reference and must never change.
//
type Tree struct {
	items []Item
	multi bool
	own   ownership
	store *Store // owner of a canonical tree
}

// NewTree returns a transient tree holding a copy of items.
//
func NewTree(items ...Item) *Tree {
	t := &Tree{items: make([]Item, len(items))}
	copy(t.items, items)
	return t
}

// Items returns a copy of the tree's items.
//
func (t *Tree) Items() []Item {
	t.live()
	r := make([]Item, len(t.items))
	copy(r, t.items)
	return r
}

// Len returns the number of items in t.
//
func (t *Tree) Len() int {
	t.live()
	return len(t.items)
}

// HasCombo reports whether t contains a combinational term.
//
func (t *Tree) HasCombo() bool { return t.has(Combo) }

// HasHybrid reports whether t contains a hybrid term.
//
func (t *Tree) HasHybrid() bool { return t.has(Hybrid) }

func (t *Tree) has(e Edge) bool {
	t.live()
	for _, i := range t.items {
		if i.Edge == e {
			return true
		}
	}
	return false
}

// IsMulti reports whether t was synthesized by merging several domains.
//
func (t *Tree) IsMulti() bool { return t.multi }

// IsCanonical reports whether t is owned by a Store. See Store.Owns to check
// for a specific store.
//
func (t *Tree) IsCanonical() bool { return t.own == canonical }

// Add appends items to a transient tree.
//
func (t *Tree) Add(items ...Item) {
	t.mutable()
	t.items = append(t.items, items...)
}

// String returns the disjunction of the tree's items.
//
func (t *Tree) String() string {
	t.live()
	var b strings.Builder
	for n, i := range t.items {
		if n > 0 {
			b.WriteString(" or ")
		}
		b.WriteString(i.String())
	}
	return b.String()
}

// Key returns the structural key of t. Two trees with the same items in the
// same order have the same key.
//
func (t *Tree) Key() string {
	t.live()
	var b strings.Builder
	for _, i := range t.items {
		b.WriteString(strconv.Itoa(int(i.Edge)))
		b.WriteByte(':')
		b.WriteString(i.Signal)
		b.WriteByte(';')
	}
	return b.String()
}

// clone returns a transient structural copy of t.
//
func (t *Tree) clone() *Tree {
	t.live()
	c := NewTree(t.items...)
	c.multi = t.multi
	return c
}

func (t *Tree) release() {
	t.mutable()
	t.items = nil
	t.own = released
}

func (t *Tree) live() {
	if t.own == released {
		invariant(nil, "use of released sensitivity tree")
	}
}

func (t *Tree) mutable() {
	t.live()
	if t.own == canonical {
		invariant(t, "canonical sensitivity tree %q cannot be modified", t.String())
	}
}
