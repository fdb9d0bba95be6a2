// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/hwsched"
	"github.com/db47h/hwsched/sense"
)

// CompareDomains checks the domain of each vertex in want, keyed by vertex ID,
// against expected sensitivity expressions. Expressions are compared after
// reduction, so item order does not matter. "deleted" expects the delete
// sentinel.
//
func CompareDomains(t testing.TB, g *hwsched.Graph, want map[string]string) {
	t.Helper()
	for id, expr := range want {
		v := g.Lookup(id)
		if v == nil {
			t.Errorf("%s: no such vertex", id)
			continue
		}
		CompareDomain(t, v, expr)
	}
}

// CompareDomain checks the domain of v against expr.
//
func CompareDomain(t testing.TB, v *hwsched.Vertex, expr string) {
	t.Helper()
	got := v.Domain()
	if expr == "deleted" {
		if !got.IsDeleted() {
			t.Errorf("%v: got domain %v, expected DELETED", v, got)
		}
		return
	}
	items, err := hwsched.ParseItems(expr)
	if err != nil {
		t.Fatal(err)
	}
	exp := sense.NewTree(items...)
	sense.Reduce(exp)
	if !got.IsAssigned() {
		t.Errorf("%v: got domain %v, expected %s", v, got, exp)
		return
	}
	if got.String() != exp.String() {
		t.Errorf("%v: got domain %v, expected %s", v, got, exp)
	}
	if !got.IsCanonical() {
		t.Errorf("%v: domain %v is not canonical", v, got)
	}
}
