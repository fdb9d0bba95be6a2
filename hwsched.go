// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"github.com/db47h/hwsched/sense"
	"github.com/pkg/errors"
)

// VertexKind is the kind of an ordering graph vertex.
//
type VertexKind int

// Vertex kinds. Variable vertices other than VarStdVertex only exist to order
// logic around the pre, post and ordered phases of a signal update.
//
const (
	LogicVertex VertexKind = iota
	VarStdVertex
	VarPreVertex
	VarPostVertex
	VarPordVertex
)

var kindNames = [...]string{
	LogicVertex:   "logic",
	VarStdVertex:  "var",
	VarPreVertex:  "pre",
	VarPostVertex: "post",
	VarPordVertex: "pord",
}

func (k VertexKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseVertexKind returns the VertexKind with the given name.
//
func ParseVertexKind(name string) (VertexKind, error) {
	for k, n := range kindNames {
		if n == name {
			return VertexKind(k), nil
		}
	}
	return 0, errors.Errorf("unknown vertex kind %q", name)
}

// IsVar reports whether k is one of the variable vertex kinds.
//
func (k VertexKind) IsVar() bool { return k >= VarStdVertex && k <= VarPordVertex }

// DomainMatters reports whether the domain of vertices of kind k propagates
// to their successors.
//
func (k VertexKind) DomainMatters() bool {
	return k == LogicVertex || k == VarStdVertex
}

// A Vertex is a node of the ordering graph: either a piece of logic or an
// occurrence of a signal.
//
type Vertex struct {
	ID     string
	Kind   VertexKind
	Signal string // display name of the signal, for variable vertices
	Logic  *Logic // logic content, for logic vertices

	domain sense.Domain
	in     []*Edge
	out    []*Edge
}

// Name returns the display name of v.
//
func (v *Vertex) Name() string {
	switch {
	case v.Kind.IsVar() && v.Signal != "":
		return v.Signal
	case v.Logic != nil:
		return v.Logic.Name
	}
	return v.ID
}

func (v *Vertex) String() string {
	return v.Kind.String() + " " + v.ID
}

// Domain returns the domain assigned to v.
//
func (v *Vertex) Domain() sense.Domain { return v.domain }

// SetDomain sets the domain of v. A domain can only be set once and only to an
// assigned domain or the Deleted sentinel.
//
func (v *Vertex) SetDomain(d sense.Domain) {
	if !v.domain.IsUnset() {
		invariant(v, "domain already set to %v", v.domain)
	}
	if d.IsUnset() {
		invariant(v, "cannot set an unset domain")
	}
	v.domain = d
}

// InEdges returns the incoming edges of v, in priority order.
//
func (v *Vertex) InEdges() []*Edge { return v.in }

// OutEdges returns the outgoing edges of v, in priority order.
//
func (v *Vertex) OutEdges() []*Edge { return v.out }

// Graph is an ordering graph. Vertices and edges are kept in the order they
// were added, which must be best to worst priority order.
//
type Graph struct {
	vertices []*Vertex
	byID     map[string]*Vertex
	edges    int
}

// NewGraph returns an empty graph.
//
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]*Vertex)}
}

func (g *Graph) add(v *Vertex) *Vertex {
	if _, ok := g.byID[v.ID]; ok {
		panic("duplicate vertex ID " + v.ID)
	}
	g.byID[v.ID] = v
	g.vertices = append(g.vertices, v)
	return v
}

// AddLogic adds a logic vertex for l. It panics if id is already in use.
//
func (g *Graph) AddLogic(id string, l *Logic) *Vertex {
	return g.add(&Vertex{ID: id, Kind: LogicVertex, Logic: l})
}

// AddVar adds a variable vertex of the given kind for a signal. It panics if
// id is already in use or if kind is not a variable kind.
//
func (g *Graph) AddVar(id string, kind VertexKind, signal string) *Vertex {
	if !kind.IsVar() {
		panic("not a variable vertex kind: " + kind.String())
	}
	return g.add(&Vertex{ID: id, Kind: kind, Signal: signal})
}

// Lookup returns the vertex with the given ID, or nil.
//
func (g *Graph) Lookup(id string) *Vertex { return g.byID[id] }

// Vertices returns the graph's vertices in priority order.
//
func (g *Graph) Vertices() []*Vertex {
	return append([]*Vertex(nil), g.vertices...)
}

// Len returns the vertex count.
//
func (g *Graph) Len() int { return len(g.vertices) }

// EdgeCount returns the edge count.
//
func (g *Graph) EdgeCount() int { return g.edges }
