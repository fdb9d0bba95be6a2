// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteDot writes g in Graphviz DOT format. Vertices are labeled with their
// name and domain; cut edges are dashed.
//
func WriteDot(w io.Writer, g *Graph) error {
	var b strings.Builder
	b.WriteString("digraph v3graph {\n")
	b.WriteString("    rankdir=TB;\n")
	for _, v := range g.vertices {
		shape := "ellipse"
		if v.Kind == LogicVertex {
			shape = "box"
		}
		label := v.Name()
		if t, ok := phaseTags[v.Kind]; ok {
			label += t
		}
		label += "\n" + v.Domain().String()
		fmt.Fprintf(&b, "    %s [label=%s, shape=%s];\n", strconv.Quote(v.ID), strconv.Quote(label), shape)
	}
	for _, v := range g.vertices {
		for _, e := range v.out {
			style := ""
			if e.IsCut() {
				style = ", style=dashed"
			}
			fmt.Fprintf(&b, "    %s -> %s [label=\"%d\"%s];\n", strconv.Quote(e.From.ID), strconv.Quote(e.To.ID), e.Weight, style)
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write dot graph")
}
