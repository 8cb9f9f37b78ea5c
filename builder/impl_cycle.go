package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Cycle builds the directed cycle C_n: edges i→(i+1) mod n, emitted in
// ascending order. Requires n ≥ 3 (ErrTooFewNodes). The result always
// fails SortTopologically with core.ErrGraphCycle.
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.IndexedGraph[int64], error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle(%d): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	b, err := core.NewIndexedBuilder[int64](n, cfg.gopts...)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if err = b.AddEdge(i, next, cfg.weightFn(i, next)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return b.Build()
}
