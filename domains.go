// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/db47h/hwsched/sense"
	"github.com/pkg/errors"
)

// ExternalDomains reports the sensitivities under which a signal may change
// outside of the logic being ordered, for example because an enclosing scope
// writes it. The returned trees must be canonical in the store given to
// ProcessDomains and must not contain combinational terms. A nil
// ExternalDomains reports nothing.
//
type ExternalDomains func(signal string) []*sense.Tree

// Result summarizes a ProcessDomains run.
//
type Result struct {
	Visited     int      // vertices in the graph at the start of the pass
	Preassigned int      // vertices whose domain was already set
	Assigned    int      // vertices assigned a sensitivity domain
	Deleted     int      // vertices never triggered
	Merges      int      // domain merges
	Removed     []string // names of the removed logic, in graph order
}

type domainPass struct {
	g        *Graph
	store    *sense.Store
	external ExternalDomains
	opts     *options
	log      *slog.Logger

	toDelete []*Vertex // logic never triggered
	res      Result
}

// ProcessDomains assigns a sensitivity domain to every vertex of g that does
// not have one yet, then removes the logic vertices that nothing triggers,
// together with their logic content.
//
// Vertices are processed once, in graph order, which must be a topological
// order of the non cut edges. Sequential logic is expected to arrive with its
// domain already set and is left untouched.
//
// Combinational sensitivity must already have been resolved upstream: a
// predecessor domain or an external domain containing a combinational term
// is a malformed graph. So is a pre-assigned, hybrid or external tree that is
// not canonical in store. Such invariant violations panic with an
// *InvariantError.
//
// Debug files are written according to opts. Write errors are returned after
// the dead logic has been removed.
//
func ProcessDomains(g *Graph, store *sense.Store, external ExternalDomains, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	p := &domainPass{
		g:        g,
		store:    store,
		external: external,
		opts:     o,
		log:      o.log,
	}

	start := time.Now()
	p.processDomains()

	var err error
	if o.dumpGraphLevel > 0 {
		err = p.dumpGraph()
	}
	if o.dumpLevel > 0 {
		if rerr := p.edgeReport(); err == nil {
			err = rerr
		}
	}

	p.deleteDeadLogic()

	domainPassDuration.Observe(time.Since(start).Seconds())
	storeSize.Set(float64(store.Len()))
	p.log.Info("domains assigned",
		"tag", o.tag,
		"vertices", p.res.Visited,
		"preassigned", p.res.Preassigned,
		"assigned", p.res.Assigned,
		"deleted", p.res.Deleted,
		"merges", p.res.Merges,
		"removed", len(p.res.Removed))
	return &p.res, err
}

// combine merges two domains; see sense.Combine.
//
func (p *domainPass) combine(a, b sense.Domain) sense.Domain {
	if a != b && !a.IsDeleted() {
		p.res.Merges++
		domainMerges.Inc()
	}
	return sense.Combine(a, b)
}

func (p *domainPass) processDomains() {
	p.log.Debug("domains...")
	vs := p.g.Vertices()
	p.res.Visited = len(vs)

	for _, v := range vs {
		p.log.Debug("pdi", "vertex", v)
		// sequential logic already has its domain set
		if !v.Domain().IsUnset() {
			p.res.Preassigned++
			domainVertices.WithLabelValues(resultPreassigned).Inc()
			continue
		}

		var domain sense.Domain
		// for logic, start with the explicit hybrid sensitivities
		if v.Kind == LogicVertex && v.Logic != nil && v.Logic.Hybrid != nil {
			domain = sense.Assigned(v.Logic.Hybrid)
			p.log.Debug("hybr", "domain", domain, "vertex", v)
			if !p.store.Owns(domain.Tree()) {
				invariant(v, "hybrid sensitivity should be canonical")
			}
		}

		for _, e := range v.InEdges() {
			from := e.From
			if e.IsCut() || !from.Kind.DomainMatters() {
				continue
			}

			fromDomain := from.Domain()
			p.log.Debug("from", "domain", fromDomain, "vertex", from)
			switch {
			case fromDomain.IsUnset():
				invariant(from, "predecessor of %v has no domain", v)
			case fromDomain.HasCombo():
				invariant(from, "there should be no need for combinational domains")
			case fromDomain.IsAssigned() && !p.store.Owns(fromDomain.Tree()):
				invariant(from, "driver domain should be canonical")
			}

			// add in any external domains of variables
			if from.Kind.IsVar() && p.external != nil {
				for _, t := range p.external(from.Signal) {
					xd := sense.Assigned(t)
					p.log.Debug("xtrn", "domain", xd, "vertex", from, "signal", from.Signal)
					if xd.HasCombo() {
						invariant(from, "there should be no need for combinational domains")
					}
					if !p.store.Owns(t) {
						invariant(from, "external domain should be canonical")
					}
					fromDomain = p.combine(fromDomain, xd)
				}
			}

			// irrelevant input vertex (never triggered, not even externally)
			if fromDomain.IsDeleted() {
				continue
			}

			if domain.IsUnset() {
				domain = fromDomain
			} else {
				domain = p.combine(domain, fromDomain)
			}
		}

		// if nothing triggers this vertex, the corresponding logic can go
		if domain.IsUnset() {
			domain = sense.Deleted
			if v.Kind == LogicVertex {
				p.toDelete = append(p.toDelete, v)
			}
			p.res.Deleted++
			domainVertices.WithLabelValues(resultDeleted).Inc()
		} else {
			domain = p.store.Canonical(domain)
			p.res.Assigned++
			domainVertices.WithLabelValues(resultAssigned).Inc()
		}
		v.SetDomain(domain)

		p.log.Debug("done", "domain", domain, "multi", domain.IsAssigned() && domain.Tree().IsMulti(), "vertex", v)
	}
}

// deleteDeadLogic removes logic that is never triggered. It runs once the
// walk over the graph is complete.
//
func (p *domainPass) deleteDeadLogic() {
	unlink := make(map[*Scope][]*Logic)
	seen := make(map[*Logic]bool)
	for _, v := range p.toDelete {
		if !v.Domain().IsDeleted() {
			invariant(v, "should have been marked as deleted")
		}
		if v.Logic != nil {
			if s := v.Logic.Scope(); s != nil && !seen[v.Logic] {
				seen[v.Logic] = true
				unlink[s] = append(unlink[s], v.Logic)
			}
			p.res.Removed = append(p.res.Removed, v.Logic.Name)
		} else {
			p.res.Removed = append(p.res.Removed, v.ID)
		}
		deadLogicRemoved.Inc()
		p.log.Debug("removed", "vertex", v)
	}
	for s, ls := range unlink {
		s.Remove(ls...)
	}
	p.g.RemoveAll(p.toDelete...)
	p.toDelete = nil
}

func (p *domainPass) debugFile(suffix string) string {
	return filepath.Join(p.opts.dumpDir, p.opts.tag+suffix)
}

func (p *domainPass) dumpGraph() error {
	return p.writeFile(p.debugFile("_orderg_domain.dot"), func(f *os.File) error {
		return WriteDot(f, p.g)
	})
}

func (p *domainPass) edgeReport() error {
	return p.writeFile(p.debugFile("_order_edges.txt"), func(f *os.File) error {
		return WriteDomainReport(f, p.g)
	})
}

func (p *domainPass) writeFile(name string, write func(f *os.File) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "can't write file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, name)
		}
	}()
	if err = write(f); err != nil {
		return errors.Wrap(err, name)
	}
	p.log.Debug("debug file written", "file", name)
	return nil
}
