// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

import "slices"

// Reduce removes redundant items from a transient tree without changing
// which events trigger it: items are sorted by edge kind then signal,
// duplicates are dropped, and [never] items are dropped unless nothing else
// remains.
//
func Reduce(t *Tree) {
	t.mutable()
	slices.SortFunc(t.items, Item.compare)
	t.items = slices.Compact(t.items)
	if len(t.items) > 1 && t.items[len(t.items)-1].Edge == Never {
		// Never sorts last
		n := len(t.items)
		for n > 1 && t.items[n-1].Edge == Never {
			n--
		}
		t.items = t.items[:n]
	}
}
