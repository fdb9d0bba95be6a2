// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var phaseTags = map[VertexKind]string{
	VarPreVertex:  " {PRE}",
	VarPostVertex: " {POST}",
	VarPordVertex: " {PORD}",
}

// WriteDomainReport writes the name and domain of every signal in g to w,
// one signal per line, sorted.
//
func WriteDomainReport(w io.Writer, g *Graph) error {
	var report []string
	for _, v := range g.vertices {
		if !v.Kind.IsVar() {
			continue
		}
		name := v.Name() + phaseTags[v.Kind]
		report = append(report, fmt.Sprintf("  %-50s %s", name, v.Domain()))
	}
	sort.Strings(report)

	var b strings.Builder
	b.WriteString("Signals and their clock domains:\n")
	for _, l := range report {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write domain report")
}
