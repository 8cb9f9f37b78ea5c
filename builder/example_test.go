package builder_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/builder"
)

// ExamplePath demonstrates generating a chain and sorting it.
func ExamplePath() {
	g, _ := builder.Path(4)
	_ = g.SortTopologically()
	fmt.Println(g.TopologicalOrder())

	// Output:
	// [0 1 2 3]
}

// ExampleGrid demonstrates the row-major "r,c" labeling.
func ExampleGrid() {
	g, _ := builder.Grid(2, 2)
	nbs, _ := g.Neighbors("0,0")
	for n := range nbs {
		fmt.Println("0,0 →", n)
	}

	// Output:
	// 0,0 → 0,1
	// 0,0 → 1,0
}
