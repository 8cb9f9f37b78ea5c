// Topological sorter: a three-state machine (Unsorted → Sorting →
// Sorted) over Kahn's in-degree-zero algorithm. Ties between ready
// nodes are broken by ascending index via a binary min-heap, so the
// produced order is fully deterministic. A cycle fails with
// ErrGraphCycle and applies nothing (all-or-nothing).
package core

import "container/heap"

// sorter carries the one-shot sort lifecycle shared by the concrete
// graph kinds. order is nil until a sort succeeds.
type sorter struct {
	state SortState
	order []int // node indices in topological order; nil when Unsorted
}

// isSorted reports whether a successful sort has been applied.
func (so *sorter) isSorted() bool { return so.state == Sorted }

// indexHeap is a binary min-heap of node indices (ascending).
type indexHeap []int

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// kahnOrder computes a topological order of s, ties broken by ascending
// node index. Fails with ErrGraphCycle when the ready queue drains while
// nonzero in-degrees remain. Complexity: O((V+E) log V) time, O(V) space.
func kahnOrder[E any](s *store[E]) ([]int, error) {
	n := len(s.out)

	// 1. Count in-degrees from the out-rows (works with or without a
	//    mirrored in-row index).
	indeg := make([]int, n)
	for u := range s.out {
		for _, a := range s.out[u].arcs {
			indeg[a.head]++
		}
	}

	// 2. Seed the ready heap with all in-degree-zero nodes.
	ready := make(indexHeap, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}
	heap.Init(&ready)

	// 3. Drain: pop the smallest ready index, release its successors.
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		u := heap.Pop(&ready).(int)
		order = append(order, u)
		for _, a := range s.out[u].arcs {
			indeg[a.head]--
			if indeg[a.head] == 0 {
				heap.Push(&ready, a.head)
			}
		}
	}

	// 4. Residual nonzero in-degree ⇒ directed cycle.
	if len(order) != n {
		return nil, ErrGraphCycle
	}

	return order, nil
}

// runSort executes the state transition around kahnOrder. On failure the
// sorter returns to Unsorted and no ordering is observably applied.
func runSort[E any](so *sorter, s *store[E]) error {
	switch so.state {
	case Sorted:
		// Structural change after construction is impossible, so a prior
		// successful sort remains valid.
		return nil
	case Sorting:
		return ErrSortInProgress
	}
	so.state = Sorting
	order, err := kahnOrder(s)
	if err != nil {
		so.state = Unsorted

		return err
	}
	so.order = order
	so.state = Sorted

	return nil
}
