// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

type domainState uint8

const (
	stateUnset domainState = iota
	stateDeleted
	stateAssigned
)

// A Domain is the value of a vertex domain field. It is either unset, the
// Deleted sentinel, or a Tree.
//
// Domains are comparable; two assigned domains are equal if and only if they
// reference the same Tree.
//
type Domain struct {
	state domainState
	tree  *Tree
}

var (
	// Unset is the zero Domain.
	Unset = Domain{}
	// Deleted marks logic that is never triggered by anything.
	Deleted = Domain{state: stateDeleted}
)

// Assigned returns a Domain holding t.
//
func Assigned(t *Tree) Domain {
	if t == nil {
		invariant(nil, "nil sensitivity tree")
	}
	return Domain{state: stateAssigned, tree: t}
}

// IsUnset reports whether d is the zero Domain.
//
func (d Domain) IsUnset() bool { return d.state == stateUnset }

// IsDeleted reports whether d is the Deleted sentinel.
//
func (d Domain) IsDeleted() bool { return d.state == stateDeleted }

// IsAssigned reports whether d holds a Tree.
//
func (d Domain) IsAssigned() bool { return d.state == stateAssigned }

// Tree returns the tree held by d, or nil if d is not assigned.
//
func (d Domain) Tree() *Tree { return d.tree }

// IsCanonical reports whether d holds a canonical tree.
//
func (d Domain) IsCanonical() bool { return d.IsAssigned() && d.tree.IsCanonical() }

// HasCombo reports whether d holds a tree with a combinational term.
// The Deleted sentinel has none.
//
func (d Domain) HasCombo() bool { return d.IsAssigned() && d.tree.HasCombo() }

func (d Domain) String() string {
	switch d.state {
	case stateDeleted:
		return "DELETED"
	case stateAssigned:
		return d.tree.String()
	}
	return "UNSET"
}
