// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"testing"

	"github.com/db47h/hwsched/hwtest"
)

func TestCompareDomains(t *testing.T) {
	b := hwtest.New(t)
	clk := b.Var("clk_q", "posedge clk")
	rst := b.Var("rst_q", "negedge rst")
	c := b.Logic("comb")
	b.Edge(rst, c)
	b.Edge(clk, c)
	b.Run()
	hwtest.CompareDomains(t, b.G, map[string]string{
		"clk_q": "posedge clk",
		"comb":  "negedge rst or posedge clk",
	})
}

func TestCompareDomains_Deleted(t *testing.T) {
	b := hwtest.New(t)
	v := b.Var("dead_q", "")
	b.Run()
	hwtest.CompareDomain(t, v, "deleted")
}
