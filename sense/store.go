// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

import "sync"

// A Store owns the canonical universe of sensitivity trees for a compilation
// unit. Structurally equal trees resolve to a single canonical instance, so
// canonical trees can be compared by reference.
//
// A Store is safe for concurrent use.
//
type Store struct {
	mu    sync.Mutex
	trees map[string]*Tree
	order []*Tree
}

// NewStore returns an empty Store.
//
func NewStore() *Store {
	return &Store{trees: make(map[string]*Tree)}
}

// Find returns the canonical tree of s structurally equal to t, adding a copy
// of t to the store if none exists yet. t itself is left untouched, so a tree
// canonical in another store can be imported.
//
// The multi flag is not part of a tree's identity: if an equal tree is
// already present, it is returned as is.
//
func (s *Store) Find(t *Tree) *Tree {
	if s.Owns(t) {
		return t
	}
	t.live()
	k := t.Key()
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.trees[k]; ok {
		return c
	}
	c := t.clone()
	c.own = canonical
	c.store = s
	s.trees[k] = c
	s.order = append(s.order, c)
	return c
}

// Intern returns the canonical tree for the given items, as written in
// source (not multi).
//
func (s *Store) Intern(items ...Item) *Tree {
	t := NewTree(items...)
	Reduce(t)
	return s.Find(t)
}

// Owns reports whether t is a canonical tree of s.
//
func (s *Store) Owns(t *Tree) bool {
	return t != nil && t.own == canonical && t.store == s
}

// Canonical returns the canonical form of d in s. Domains canonical in s are
// returned unchanged and trees canonical in another store are imported with
// Find. A transient tree is reduced, marked as multi, looked up in the store
// and released: d must not be used after the call.
//
func (s *Store) Canonical(d Domain) Domain {
	if !d.IsAssigned() {
		invariant(d, "only assigned domains have a canonical form")
	}
	t := d.tree
	if t.IsCanonical() {
		if t.store == s {
			return d
		}
		return Assigned(s.Find(t))
	}
	Reduce(t)
	t.multi = true
	c := s.Find(t)
	t.release()
	return Assigned(c)
}

// Len returns the number of canonical trees in the store.
//
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Trees returns the canonical trees in the order they were added.
//
func (s *Store) Trees() []*Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Tree(nil), s.order...)
}
