// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched_test

import (
	"testing"

	hs "github.com/db47h/hwsched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVertexKind(t *testing.T) {
	for _, k := range []hs.VertexKind{hs.LogicVertex, hs.VarStdVertex, hs.VarPreVertex, hs.VarPostVertex, hs.VarPordVertex} {
		got, err := hs.ParseVertexKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := hs.ParseVertexKind("wire")
	assert.Error(t, err)
	assert.Equal(t, "unknown", hs.VertexKind(42).String())
}

func TestVertexKind_DomainMatters(t *testing.T) {
	td := []struct {
		k       hs.VertexKind
		isVar   bool
		matters bool
	}{
		{hs.LogicVertex, false, true},
		{hs.VarStdVertex, true, true},
		{hs.VarPreVertex, true, false},
		{hs.VarPostVertex, true, false},
		{hs.VarPordVertex, true, false},
	}
	for _, tc := range td {
		assert.Equal(t, tc.isVar, tc.k.IsVar(), tc.k.String())
		assert.Equal(t, tc.matters, tc.k.DomainMatters(), tc.k.String())
	}
}

func TestGraph_ConnectRemove(t *testing.T) {
	g := hs.NewGraph()
	sc := hs.NewScope("top")
	a := g.AddVar("a", hs.VarStdVertex, "top.a")
	b := g.AddVar("b", hs.VarStdVertex, "top.b")
	l := g.AddLogic("l", sc.Add("comb", nil))
	c := g.AddVar("c", hs.VarStdVertex, "top.c")

	ea := g.Connect(a, l, 1)
	eb := g.Connect(b, l, 0)
	ec := g.Connect(l, c, 1)
	g.Connect(a, c, 3)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []*hs.Edge{ea, eb}, l.InEdges())
	assert.Equal(t, []*hs.Edge{ec}, l.OutEdges())
	assert.False(t, ea.IsCut())
	assert.True(t, eb.IsCut())

	assert.Equal(t, "comb", l.Name())
	assert.Equal(t, "top.a", a.Name())
	assert.Equal(t, "logic l", l.String())

	g.Remove(l)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Nil(t, g.Lookup("l"))
	assert.Equal(t, []*hs.Vertex{a, b, c}, g.Vertices())
	assert.Len(t, a.OutEdges(), 1)
	assert.Empty(t, b.OutEdges())
	assert.Len(t, c.InEdges(), 1)
	assert.Same(t, a, c.InEdges()[0].From)
	assert.Empty(t, l.InEdges())

	assert.Panics(t, func() { g.Remove(l) })
	assert.Panics(t, func() { g.Connect(a, l, 1) })
	assert.Panics(t, func() { g.Connect(a, b, -1) })
	assert.Panics(t, func() { g.AddVar("a", hs.VarStdVertex, "dup") })
	assert.Panics(t, func() { g.AddVar("x", hs.LogicVertex, "x") })
}

func TestScope_Unlink(t *testing.T) {
	sc := hs.NewScope("top")
	a := sc.Add("a", nil)
	b := sc.Add("b", nil)
	c := sc.Add("c", nil)
	b.Unlink()
	assert.Equal(t, []*hs.Logic{a, c}, sc.Logic())
	assert.Nil(t, b.Scope())
	assert.Same(t, sc, a.Scope())
	assert.Panics(t, func() { b.Unlink() })
}

func TestGraph_RemoveAll(t *testing.T) {
	g := hs.NewGraph()
	sc := hs.NewScope("top")
	var vs []*hs.Vertex
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		vs = append(vs, g.AddLogic(id, sc.Add(id, nil)))
	}
	a, b, c, d, e := vs[0], vs[1], vs[2], vs[3], vs[4]
	g.Connect(a, b, 1)
	g.Connect(b, d, 1) // both ends removed
	g.Connect(d, e, 1)
	g.Connect(a, e, 0)
	g.Connect(c, e, 1)

	g.RemoveAll(d, b)
	assert.Equal(t, []*hs.Vertex{a, c, e}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Nil(t, g.Lookup("b"))
	assert.Nil(t, g.Lookup("d"))
	require.Len(t, a.OutEdges(), 1)
	assert.Same(t, e, a.OutEdges()[0].To)
	assert.Len(t, e.InEdges(), 2)

	g.RemoveAll()
	assert.Equal(t, 3, g.Len())
	assert.Panics(t, func() { g.RemoveAll(b) })
}

func TestScope_Remove(t *testing.T) {
	sc := hs.NewScope("top")
	other := hs.NewScope("other")
	ls := []*hs.Logic{sc.Add("a", nil), sc.Add("b", nil), sc.Add("c", nil), sc.Add("d", nil)}
	sc.Remove(ls[3], ls[1])
	assert.Equal(t, []*hs.Logic{ls[0], ls[2]}, sc.Logic())
	assert.Nil(t, ls[1].Scope())
	assert.Nil(t, ls[3].Scope())
	assert.Panics(t, func() { other.Remove(ls[0]) })
	assert.Panics(t, func() { sc.Remove(ls[1]) })
}
