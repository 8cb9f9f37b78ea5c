package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Star builds the directed star S_n: center 0 with edges 0→i for every
// leaf i in [1, n), emitted in ascending leaf order. Requires n ≥ 2
// (ErrTooFewNodes). Complexity: O(n).
func Star(n int, opts ...Option) (*core.IndexedGraph[int64], error) {
	if n < 2 {
		return nil, fmt.Errorf("Star(%d): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	b, err := core.NewIndexedBuilder[int64](n, cfg.gopts...)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = b.AddEdge(0, leaf, cfg.weightFn(0, leaf)); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return b.Build()
}
