// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"github.com/db47h/hwsched/internal/hdl"
	"github.com/db47h/hwsched/sense"
)

// ParseItems parses a sensitivity expression like
//
//	@(posedge clk or negedge rst_n)
//
// and returns its items in source order.
//
func ParseItems(expr string) ([]sense.Item, error) {
	return hdl.Parse(expr)
}

// ParseTree parses a sensitivity expression and returns its canonical tree
// in store.
//
func ParseTree(store *sense.Store, expr string) (*sense.Tree, error) {
	items, err := hdl.Parse(expr)
	if err != nil {
		return nil, err
	}
	return store.Intern(items...), nil
}
