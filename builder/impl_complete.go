package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Complete builds the materialized complete digraph K_n: every ordered
// pair u≠v, emitted row-major. Requires n ≥ 1 (ErrTooFewNodes).
// Unlike the implicit core.Complete kind, the result stores all
// n·(n-1) edges and supports per-edge weights.
// Complexity: O(n²) time and space.
func Complete(n int, opts ...Option) (*core.IndexedGraph[int64], error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete(%d): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	b, err := core.NewIndexedBuilder[int64](n, cfg.gopts...)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err = b.AddEdge(u, v, cfg.weightFn(u, v)); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return b.Build()
}
