package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/traverse"
)

// ExampleBFS demonstrates discovery order and depths on a chain.
func ExampleBFS() {
	g, _ := builder.Path(4)
	res, _ := traverse.BFS[int64](g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 3:", res.Depth[3])

	// Output:
	// order: [0 1 2 3]
	// depth of 3: 3
}

// ExampleDFS demonstrates post-order on a star.
func ExampleDFS() {
	g, _ := builder.Star(4)
	res, _ := traverse.DFS[int64](g, 0)
	fmt.Println("finish order:", res.Order)

	// Output:
	// finish order: [1 2 3 0]
}
