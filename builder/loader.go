package builder

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// FromEdgeList builds a labeled graph from explicit edge records,
// inserted in slice order (which fixes both index assignment and
// enumeration order). Duplicate (from,to) pairs propagate
// core.ErrDuplicateEdge. Complexity: O(len(edges)).
func FromEdgeList[N comparable, E any](edges []core.LabelEdge[N, E], opts ...Option) (*core.Graph[N, E], error) {
	cfg := newConfig(opts...)
	b := core.NewBuilder[N, E](cfg.gopts...)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Value); err != nil {
			return nil, fmt.Errorf("FromEdgeList %v→%v: %w", e.From, e.To, err)
		}
	}

	return b.Build()
}

// FromAdjacencyList builds a labeled graph from a label→successors map.
// Go map iteration is not deterministic, so source labels are visited
// in ascending label order (hence the cmp.Ordered bound); successor
// slices keep their given order. Every generated edge carries the
// WeightFunc value for its assigned indices. Duplicate successors
// propagate core.ErrDuplicateEdge.
// Complexity: O(V log V + E).
func FromAdjacencyList[N cmp.Ordered](adj map[N][]N, opts ...Option) (*core.Graph[N, int64], error) {
	cfg := newConfig(opts...)
	gopts := append([]core.GraphOption{core.WithNodeHint(len(adj))}, cfg.gopts...)
	b := core.NewBuilder[N, int64](gopts...)

	keys := make([]N, 0, len(adj))
	for from := range adj {
		keys = append(keys, from)
	}
	slices.Sort(keys)

	// Register sources first so index assignment follows sorted key
	// order; pure-target labels are appended as they appear.
	for _, from := range keys {
		if _, err := b.AddNode(from); err != nil {
			return nil, fmt.Errorf("FromAdjacencyList: %w", err)
		}
	}
	for _, from := range keys {
		u, err := b.AddNode(from)
		if err != nil {
			return nil, fmt.Errorf("FromAdjacencyList: %w", err)
		}
		for _, to := range adj[from] {
			v, verr := b.AddNode(to)
			if verr != nil {
				return nil, fmt.Errorf("FromAdjacencyList: %w", verr)
			}
			if err = b.AddEdge(from, to, cfg.weightFn(u, v)); err != nil {
				return nil, fmt.Errorf("FromAdjacencyList %v→%v: %w", from, to, err)
			}
		}
	}

	return b.Build()
}
