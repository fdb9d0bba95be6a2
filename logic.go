// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"slices"

	"github.com/db47h/hwsched/sense"
)

// A Scope holds the logic blocks of a design.
//
type Scope struct {
	Name  string
	logic []*Logic
}

// NewScope returns a new, empty scope.
//
func NewScope(name string) *Scope {
	return &Scope{Name: name}
}

// Add creates a new logic block in s. hybrid, if not nil, is the explicit
// hybrid sensitivity of the block and must be canonical in the store the
// domain pass runs with.
//
func (s *Scope) Add(name string, hybrid *sense.Tree) *Logic {
	l := &Logic{Name: name, Hybrid: hybrid, scope: s}
	s.logic = append(s.logic, l)
	return l
}

// Logic returns the logic blocks currently in s.
//
func (s *Scope) Logic() []*Logic {
	return append([]*Logic(nil), s.logic...)
}

// Logic is the content of a logic vertex.
//
type Logic struct {
	Name   string
	Hybrid *sense.Tree
	scope  *Scope
}

// Scope returns the scope l belongs to, or nil once unlinked.
//
func (l *Logic) Scope() *Scope { return l.scope }

// Unlink detaches l from its scope.
//
func (l *Logic) Unlink() {
	if l.scope == nil {
		panic("logic " + l.Name + " is not linked")
	}
	l.scope.Remove(l)
}

// Remove detaches the given logic blocks from s. The remaining blocks keep
// their order.
//
func (s *Scope) Remove(ls ...*Logic) {
	if len(ls) == 0 {
		return
	}
	for _, l := range ls {
		if l.scope != s {
			panic("logic " + l.Name + " is not in scope " + s.Name)
		}
		l.scope = nil
	}
	s.logic = slices.DeleteFunc(s.logic, func(l *Logic) bool { return l.scope != s })
}

func (l *Logic) String() string { return l.Name }
