// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched_test

import (
	"fmt"
	"strings"

	hs "github.com/db47h/hwsched"
	"github.com/db47h/hwsched/sense"
)

// A flip-flop with an asynchronous reset drives some combinational logic. A
// second block has no driver and is removed.
//
func Example() {
	d, err := hs.LoadDesign(strings.NewReader(`
vertices:
  - {id: clk, kind: var, domain: "posedge clk"}
  - {id: rst, kind: var, domain: "negedge rst_n"}
  - {id: q, kind: var}
  - {id: decode, kind: logic}
  - {id: orphan, kind: logic}
edges:
  - {from: rst, to: q}
  - {from: clk, to: q}
  - {from: q, to: decode}
`))
	if err != nil {
		panic(err)
	}
	res, err := d.ProcessDomains()
	if err != nil {
		panic(err)
	}
	for _, v := range d.Graph.Vertices() {
		fmt.Printf("%s: %v\n", v.ID, v.Domain())
	}
	fmt.Println("removed:", res.Removed)

	// Output:
	// clk: posedge clk
	// rst: negedge rst_n
	// q: posedge clk or negedge rst_n
	// decode: posedge clk or negedge rst_n
	// removed: [orphan]
}

func ExampleParseTree() {
	store := sense.NewStore()
	a, _ := hs.ParseTree(store, "@(negedge rst or posedge clk or posedge clk)")
	b, _ := hs.ParseTree(store, "posedge clk, negedge rst")
	fmt.Println(a)
	fmt.Println(a == b)

	// Output:
	// posedge clk or negedge rst
	// true
}
