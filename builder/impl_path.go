package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Path builds the directed path P_n: edges i→i+1 for i in [0, n-1),
// emitted in ascending order. Requires n ≥ 2 (ErrTooFewNodes).
// The result is acyclic and sorts into ascending index order.
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.IndexedGraph[int64], error) {
	if n < 2 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	b, err := core.NewIndexedBuilder[int64](n, cfg.gopts...)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 0; i < n-1; i++ {
		if err = b.AddEdge(i, i+1, cfg.weightFn(i, i+1)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return b.Build()
}
