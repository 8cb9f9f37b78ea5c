package traverse

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// dfsWalker encapsulates mutable DFS state for one walk.
type dfsWalker[E any] struct {
	view core.IndexedView[E]
	opts Options
	res  *Result
}

// DFS runs depth-first search over v from start, recording nodes in
// finish (post-) order; neighbors expand in insertion order, so the
// result is deterministic.
// Returns ErrNilView, ErrStartOutOfRange, a wrapped ErrNeighborFetch,
// the context error on cancellation, or a hook error.
// Complexity: O(V+E) time, O(V) space (recursion depth).
func DFS[E any](v core.IndexedView[E], start int, opts ...Option) (*Result, error) {
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

	w := &dfsWalker[E]{view: v, opts: o, res: newResult(n)}
	w.res.Visited[start] = true
	w.res.Depth[start] = 0
	if err := w.visit(start, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// visit explores node at the given depth, recursing into unvisited
// neighbors before recording the node itself (post-order).
func (w *dfsWalker[E]) visit(node, depth int) error {
	// Cancellation check at entry.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.view.Neighbors(node)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for nb := range nbs {
			if w.res.Visited[nb] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				continue
			}
			w.res.Visited[nb] = true
			w.res.Depth[nb] = depth + 1
			w.res.Parent[nb] = node
			if err = w.visit(nb, depth+1); err != nil {
				return err
			}
		}
	}

	w.res.Order = append(w.res.Order, node)
	if w.opts.OnVisit != nil {
		return w.opts.OnVisit(node)
	}

	return nil
}
