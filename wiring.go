// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import "slices"

// An Edge connects two vertices of an ordering graph. Edges with a zero
// weight are cut edges: they order vertices but do not propagate
// sensitivity.
//
type Edge struct {
	From   *Vertex
	To     *Vertex
	Weight int
}

// IsCut reports whether e is a cut edge.
//
func (e *Edge) IsCut() bool { return e.Weight == 0 }

// Connect adds an edge from -> to. Edges are appended to the in and out edge
// lists of their endpoints, which must therefore be connected in priority
// order.
//
func (g *Graph) Connect(from, to *Vertex, weight int) *Edge {
	if g.byID[from.ID] != from || g.byID[to.ID] != to {
		panic("connecting vertices of another graph")
	}
	if weight < 0 {
		panic("negative edge weight")
	}
	e := &Edge{From: from, To: to, Weight: weight}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
	g.edges++
	return e
}

// Remove unlinks all edges of v and deletes it from the graph.
//
func (g *Graph) Remove(v *Vertex) {
	g.RemoveAll(v)
}

// RemoveAll unlinks all edges of the given vertices and deletes them from the
// graph. The remaining vertices keep their order.
//
func (g *Graph) RemoveAll(vs ...*Vertex) {
	if len(vs) == 0 {
		return
	}
	for _, v := range vs {
		if g.byID[v.ID] != v {
			panic("removing vertex " + v.ID + " not in graph")
		}
		for _, e := range v.in {
			e.From.out = removeEdge(e.From.out, e)
			g.edges--
		}
		for _, e := range v.out {
			e.To.in = removeEdge(e.To.in, e)
			g.edges--
		}
		v.in, v.out = nil, nil
		delete(g.byID, v.ID)
	}
	g.vertices = slices.DeleteFunc(g.vertices, func(w *Vertex) bool {
		return g.byID[w.ID] != w
	})
}

// removeEdge removes e from es, preserving order.
//
func removeEdge(es []*Edge, e *Edge) []*Edge {
	for i, x := range es {
		if x == e {
			copy(es[i:], es[i+1:])
			es[len(es)-1] = nil
			return es[:len(es)-1]
		}
	}
	return es
}
