// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

// Edge is the kind of event a sensitivity item triggers on.
//
type Edge uint8

// Edge kinds. Changed is level sensitive: any change of the signal triggers.
//
const (
	Changed Edge = iota
	BothEdge
	Posedge
	Negedge
	Event
	True
	Combo
	Hybrid
	Static
	Initial
	Final
	Never
)

var edgeKwd = [...]string{
	Changed:  "[changed]",
	BothEdge: "edge",
	Posedge:  "posedge",
	Negedge:  "negedge",
	Event:    "[event]",
	True:     "[true]",
	Combo:    "*",
	Hybrid:   "[hybrid]",
	Static:   "[static]",
	Initial:  "[initial]",
	Final:    "[final]",
	Never:    "[never]",
}

// String returns the keyword used to render e.
//
func (e Edge) String() string {
	if int(e) < len(edgeKwd) {
		return edgeKwd[e]
	}
	return "[unknown]"
}

// HasSignal reports whether items of this kind reference a signal.
//
func (e Edge) HasSignal() bool {
	switch e {
	case Changed, BothEdge, Posedge, Negedge, Event, Hybrid:
		return true
	}
	return false
}

// ParseEdge returns the Edge for the given keyword.
//
func ParseEdge(kwd string) (Edge, bool) {
	for e, k := range edgeKwd {
		if k == kwd {
			return Edge(e), true
		}
	}
	return 0, false
}

// An Item is a single sensitivity: an edge kind paired with a signal.
// Signal is empty for kinds where HasSignal is false.
//
type Item struct {
	Edge   Edge
	Signal string
}

// String renders the item the way it would appear in a sensitivity list.
//
func (i Item) String() string {
	if i.Signal == "" {
		return i.Edge.String()
	}
	return i.Edge.String() + " " + i.Signal
}

func (i Item) compare(j Item) int {
	if i.Edge != j.Edge {
		if i.Edge < j.Edge {
			return -1
		}
		return 1
	}
	switch {
	case i.Signal < j.Signal:
		return -1
	case i.Signal > j.Signal:
		return 1
	}
	return 0
}
