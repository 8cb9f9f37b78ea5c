package core_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ExampleBuilder demonstrates building a labeled graph and running the
// basic queries.
func ExampleBuilder() {
	// 1) Accumulate edges; labels are registered in first-appearance order.
	b := core.NewBuilder[string, int]()
	_ = b.AddEdge("A", "B", 1)
	_ = b.AddEdge("B", "C", 2)
	g, _ := b.Build()

	// 2) Enumerate neighbors in insertion order.
	nbs, _ := g.Neighbors("A")
	for n := range nbs {
		fmt.Println("A →", n)
	}

	// 3) Safe lookup of an absent pair.
	_, ok := g.TryEdgeValue("A", "C")
	fmt.Println("A→C exists?", ok)

	// Output:
	// A → B
	// A→C exists? false
}

// ExampleGraph_SortTopologically demonstrates the one-shot sort and the
// order it applies to node enumeration.
func ExampleGraph_SortTopologically() {
	b := core.NewBuilder[string, int]()
	_ = b.AddEdge("boot", "load", 0)
	_ = b.AddEdge("load", "run", 0)
	g, _ := b.Build()

	if err := g.SortTopologically(); err == nil {
		fmt.Println(g.TopologicalOrder())
	}
	fmt.Println("sorted:", g.IsSorted())

	// Output:
	// [boot load run]
	// sorted: true
}

// ExampleGraph_Transpose demonstrates pure edge reversal with preserved
// labels and indices.
func ExampleGraph_Transpose() {
	b := core.NewBuilder[string, int]()
	_ = b.AddEdge("A", "B", 1)
	g, _ := b.Build()

	tr := g.Transpose()
	fmt.Println("reversed B→A:", tr.ContainsEdge("B", "A"))
	fmt.Println("original A→B:", g.ContainsEdge("A", "B"))

	// Output:
	// reversed B→A: true
	// original A→B: true
}
