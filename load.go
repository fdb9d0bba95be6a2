// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"io"

	"github.com/db47h/hwsched/sense"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Design bundles an ordering graph with everything ProcessDomains needs.
//
type Design struct {
	Graph    *Graph
	Scope    *Scope
	Store    *sense.Store
	External ExternalDomains
}

// ProcessDomains runs ProcessDomains on d.
//
func (d *Design) ProcessDomains(opts ...Option) (*Result, error) {
	return ProcessDomains(d.Graph, d.Store, d.External, opts...)
}

type designFile struct {
	Scope    string              `yaml:"scope"`
	Vertices []vertexSpec        `yaml:"vertices"`
	Edges    []edgeSpec          `yaml:"edges"`
	External map[string][]string `yaml:"external"`
}

type vertexSpec struct {
	ID     string `yaml:"id"`
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`   // logic name, defaults to ID
	Signal string `yaml:"signal"` // variables only, defaults to ID
	Domain string `yaml:"domain"` // pre-assigned domain
	Hybrid string `yaml:"hybrid"` // logic only
}

type edgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int   `yaml:"weight"`
}

// LoadDesign reads a YAML description of an ordering graph:
//
//	scope: top
//	vertices:                     # in priority order
//	  - {id: q, kind: var, domain: "posedge clk"}
//	  - {id: comb, kind: logic, hybrid: "[hybrid] x"}
//	  - {id: q_pre, kind: pre, signal: q}
//	edges:                        # in priority order
//	  - {from: q, to: comb}       # weight defaults to 1
//	  - {from: q_pre, to: comb, weight: 0}
//	external:
//	  q: ["[changed] en"]
//
// Vertex kinds are logic, var, pre, post and pord. A domain set on a vertex
// is pre-assigned; the special domain "deleted" pre-assigns the delete
// sentinel. All sensitivity expressions are interned in the design's store.
//
func LoadDesign(r io.Reader) (*Design, error) {
	var df designFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&df); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode design")
	}

	d := &Design{
		Graph: NewGraph(),
		Scope: NewScope(df.Scope),
		Store: sense.NewStore(),
	}

	for i, vs := range df.Vertices {
		if vs.ID == "" {
			return nil, errors.Errorf("vertex #%d: missing id", i)
		}
		if d.Graph.Lookup(vs.ID) != nil {
			return nil, errors.Errorf("vertex %s: duplicate id", vs.ID)
		}
		kind, err := ParseVertexKind(vs.Kind)
		if err != nil {
			return nil, errors.Wrap(err, "vertex "+vs.ID)
		}
		var v *Vertex
		if kind == LogicVertex {
			if vs.Signal != "" {
				return nil, errors.Errorf("vertex %s: logic vertices have no signal", vs.ID)
			}
			var hybrid *sense.Tree
			if vs.Hybrid != "" {
				if hybrid, err = ParseTree(d.Store, vs.Hybrid); err != nil {
					return nil, errors.Wrap(err, "vertex "+vs.ID+" hybrid")
				}
			}
			name := vs.Name
			if name == "" {
				name = vs.ID
			}
			v = d.Graph.AddLogic(vs.ID, d.Scope.Add(name, hybrid))
		} else {
			if vs.Hybrid != "" {
				return nil, errors.Errorf("vertex %s: only logic vertices have a hybrid sensitivity", vs.ID)
			}
			sig := vs.Signal
			if sig == "" {
				sig = vs.ID
			}
			v = d.Graph.AddVar(vs.ID, kind, sig)
		}
		switch vs.Domain {
		case "":
		case "deleted":
			v.SetDomain(sense.Deleted)
		default:
			t, err := ParseTree(d.Store, vs.Domain)
			if err != nil {
				return nil, errors.Wrap(err, "vertex "+vs.ID+" domain")
			}
			v.SetDomain(sense.Assigned(t))
		}
	}

	for i, es := range df.Edges {
		from, to := d.Graph.Lookup(es.From), d.Graph.Lookup(es.To)
		if from == nil || to == nil {
			return nil, errors.Errorf("edge #%d: unknown vertex in %s -> %s", i, es.From, es.To)
		}
		w := 1
		if es.Weight != nil {
			w = *es.Weight
		}
		if w < 0 {
			return nil, errors.Errorf("edge #%d: negative weight %d", i, w)
		}
		d.Graph.Connect(from, to, w)
	}

	if len(df.External) > 0 {
		ext := make(map[string][]*sense.Tree, len(df.External))
		for sig, exprs := range df.External {
			for _, expr := range exprs {
				t, err := ParseTree(d.Store, expr)
				if err != nil {
					return nil, errors.Wrap(err, "external domain of "+sig)
				}
				ext[sig] = append(ext[sig], t)
			}
		}
		d.External = func(signal string) []*sense.Tree { return ext[signal] }
	}

	return d, nil
}
