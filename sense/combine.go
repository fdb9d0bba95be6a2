// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

// Combine merges two domains into one that triggers on the items of both.
// The result is not reduced nor canonical; see Store.Canonical.
//
// If a and b are the same domain, a is returned. If a is Deleted, b is
// returned. b must not be Deleted unless a is.
//
// A canonical a is copied; a transient a is extended in place. The items of
// a transient b are moved into the result and b is released: callers must
// not use b after the call.
//
func Combine(a, b Domain) Domain {
	if a == b {
		return a
	}
	if a.IsDeleted() {
		return b
	}
	if b.IsDeleted() {
		invariant(nil, "right hand side of a domain merge should not be the delete domain")
	}
	if !a.IsAssigned() || !b.IsAssigned() {
		invariant(nil, "cannot merge unset domains")
	}

	r := a.tree
	if r.IsCanonical() {
		r = r.clone()
	}
	r.Add(b.tree.Items()...)
	if !b.tree.IsCanonical() {
		b.tree.release()
	}
	return Assigned(r)
}
