// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing ordering graphs and
// their domain assignment.
//
package hwtest

import (
	"testing"

	"github.com/db47h/hwsched"
	"github.com/db47h/hwsched/sense"
)

// A Builder builds an ordering graph in priority order, along with the
// scope, store and external domains a domain pass needs.
//
type Builder struct {
	t     testing.TB
	G     *hwsched.Graph
	Scope *hwsched.Scope
	Store *sense.Store
	ext   map[string][]*sense.Tree
}

// New returns a new Builder. Parse errors are reported to t as fatal.
//
func New(t testing.TB) *Builder {
	return &Builder{
		t:     t,
		G:     hwsched.NewGraph(),
		Scope: hwsched.NewScope("top"),
		Store: sense.NewStore(),
		ext:   make(map[string][]*sense.Tree),
	}
}

// Tree returns the canonical tree for expr.
//
func (b *Builder) Tree(expr string) *sense.Tree {
	b.t.Helper()
	t, err := hwsched.ParseTree(b.Store, expr)
	if err != nil {
		b.t.Fatal(err)
	}
	return t
}

// Domain returns the canonical domain for expr. The expression "deleted"
// yields sense.Deleted.
//
func (b *Builder) Domain(expr string) sense.Domain {
	b.t.Helper()
	if expr == "deleted" {
		return sense.Deleted
	}
	return sense.Assigned(b.Tree(expr))
}

// Var adds a standard variable vertex for signal id. If expr is not empty,
// it is the pre-assigned domain of the vertex.
//
func (b *Builder) Var(id, expr string) *hwsched.Vertex {
	b.t.Helper()
	return b.VarKind(hwsched.VarStdVertex, id, id, expr)
}

// VarKind adds a variable vertex of the given kind.
//
func (b *Builder) VarKind(kind hwsched.VertexKind, id, signal, expr string) *hwsched.Vertex {
	b.t.Helper()
	v := b.G.AddVar(id, kind, signal)
	if expr != "" {
		v.SetDomain(b.Domain(expr))
	}
	return v
}

// Logic adds a combinational logic vertex.
//
func (b *Builder) Logic(id string) *hwsched.Vertex {
	return b.G.AddLogic(id, b.Scope.Add(id, nil))
}

// Hybrid adds a logic vertex with an explicit hybrid sensitivity.
//
func (b *Builder) Hybrid(id, expr string) *hwsched.Vertex {
	b.t.Helper()
	return b.G.AddLogic(id, b.Scope.Add(id, b.Tree(expr)))
}

// Seq adds a sequential logic vertex whose domain is already set.
//
func (b *Builder) Seq(id, expr string) *hwsched.Vertex {
	b.t.Helper()
	v := b.Logic(id)
	v.SetDomain(b.Domain(expr))
	return v
}

// Edge connects from -> to with weight 1.
//
func (b *Builder) Edge(from, to *hwsched.Vertex) *hwsched.Edge {
	return b.G.Connect(from, to, 1)
}

// Cut connects from -> to with a cut edge.
//
func (b *Builder) Cut(from, to *hwsched.Vertex) *hwsched.Edge {
	return b.G.Connect(from, to, 0)
}

// External registers external domains for signal.
//
func (b *Builder) External(signal string, exprs ...string) {
	b.t.Helper()
	for _, e := range exprs {
		b.ext[signal] = append(b.ext[signal], b.Tree(e))
	}
}

// ExternalDomains returns the external domains registered with External.
//
func (b *Builder) ExternalDomains() hwsched.ExternalDomains {
	return func(signal string) []*sense.Tree { return b.ext[signal] }
}

// Run runs the domain pass over the graph. Errors are fatal.
//
func (b *Builder) Run(opts ...hwsched.Option) *hwsched.Result {
	b.t.Helper()
	r, err := hwsched.ProcessDomains(b.G, b.Store, b.ExternalDomains(), opts...)
	if err != nil {
		b.t.Fatal(err)
	}
	return r
}
