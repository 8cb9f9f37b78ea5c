package traverse

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// BFS runs breadth-first search over v from start, visiting nodes in
// increasing edge distance; neighbors expand in insertion order, so the
// discovery order is deterministic.
// Returns ErrNilView, ErrStartOutOfRange, a wrapped ErrNeighborFetch,
// the context error on cancellation, or a hook error.
// Complexity: O(V+E) time, O(V) space.
func BFS[E any](v core.IndexedView[E], start int, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := v.NumberOfNodes()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	res := newResult(n)
	queue := make([]queueItem, 0, n)
	res.Visited[start] = true
	res.Depth[start] = 0
	queue = append(queue, queueItem{node: start})

	for len(queue) > 0 {
		// Cancellation check once per dequeue.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.node)
		if o.OnVisit != nil {
			if err := o.OnVisit(item.node); err != nil {
				return nil, err
			}
		}
		if o.MaxDepth >= 0 && item.depth == o.MaxDepth {
			continue
		}

		nbs, err := v.Neighbors(item.node)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for nb := range nbs {
			if res.Visited[nb] {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(nb) {
				continue
			}
			res.Visited[nb] = true
			res.Depth[nb] = item.depth + 1
			res.Parent[nb] = item.node
			queue = append(queue, queueItem{node: nb, depth: item.depth + 1})
		}
	}

	return res, nil
}

// Reachable reports which nodes are reachable from start (including
// start itself), using an unfiltered BFS.
func Reachable[E any](v core.IndexedView[E], start int) ([]bool, error) {
	res, err := BFS(v, start)
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}
