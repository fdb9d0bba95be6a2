// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	hs "github.com/db47h/hwsched"
	"github.com/db47h/hwsched/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDomainReport(t *testing.T) {
	b := hwtest.New(t)
	zeta := b.Var("zeta", "posedge clk or negedge rst")
	b.VarKind(hs.VarPreVertex, "alpha_pre", "alpha", "")
	b.Var("alpha", "")
	b.VarKind(hs.VarPostVertex, "alpha_post", "alpha", "")
	b.VarKind(hs.VarPordVertex, "alpha_pord", "alpha", "")
	l := b.Logic("L")
	b.Edge(zeta, l)
	b.Run()

	var sb strings.Builder
	require.NoError(t, hs.WriteDomainReport(&sb, b.G))

	line := func(name, domain string) string { return fmt.Sprintf("  %-50s %s", name, domain) }
	want := []string{
		"Signals and their clock domains:",
		line("alpha", "DELETED"),
		line("alpha {PORD}", "DELETED"),
		line("alpha {POST}", "DELETED"),
		line("alpha {PRE}", "DELETED"),
		line("zeta", "posedge clk or negedge rst"),
	}
	got := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	assert.Equal(t, want, got)
	assert.True(t, sort.StringsAreSorted(got[1:]))
}

func TestWriteDomainReport_Unset(t *testing.T) {
	g := hs.NewGraph()
	g.AddVar("q", hs.VarStdVertex, "top.q")
	g.AddLogic("L", hs.NewScope("top").Add("L", nil))

	var sb strings.Builder
	require.NoError(t, hs.WriteDomainReport(&sb, g))
	assert.Equal(t, "Signals and their clock domains:\n"+fmt.Sprintf("  %-50s %s\n", "top.q", "UNSET"), sb.String())
}

func TestWriteDomainReport_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, hs.WriteDomainReport(&sb, hs.NewGraph()))
	assert.Equal(t, "Signals and their clock domains:\n", sb.String())
}

func TestWriteDot(t *testing.T) {
	b := hwtest.New(t)
	s := b.Var("S", "posedge clk")
	p := b.VarKind(hs.VarPreVertex, "S_pre", "S", "")
	v := b.Logic("V")
	b.Edge(s, v)
	b.Cut(p, v)

	var sb strings.Builder
	require.NoError(t, hs.WriteDot(&sb, b.G))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "digraph v3graph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"S" [label="S\nposedge clk", shape=ellipse];`)
	assert.Contains(t, out, `"S_pre" [label="S {PRE}\nUNSET", shape=ellipse];`)
	assert.Contains(t, out, `"V" [label="V\nUNSET", shape=box];`)
	assert.Contains(t, out, `"S" -> "V" [label="1"];`)
	assert.Contains(t, out, `"S_pre" -> "V" [label="0", style=dashed];`)
}
