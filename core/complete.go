package core

import "iter"

// Complete is the implicit complete-graph kind K_n: every ordered pair
// (i,j) with i≠j is an edge and no adjacency is stored. ContainsEdge is
// a pure O(1) computation; Edges enumeration costs O(n²); callers must
// not assume it is cheap and should prefer OutEdges/Neighbors expansion.
//
// Complete supports inbound queries (the edge relation is symmetric in
// structure) but is deliberately not Sortable and carries no Transpose
// method: K_n contains cycles for n ≥ 2 and equals its own transpose.
// Capability probes for Sortable fail; use TransposeOf to materialize a
// stored reverse if one is needed.
type Complete[E any] struct {
	n     int
	value E // payload reported for every edge
}

// Compile-time capability checks: the implicit kind answers basic and
// inbound queries but is not Sortable.
var (
	_ IndexedView[int]         = (*Complete[int])(nil)
	_ IndexedPredecessors[int] = (*Complete[int])(nil)
)

// NewComplete returns the implicit K_n with the given per-edge value.
// Negative n fails with ErrIndexOutOfRange. Complexity: O(1); nothing
// is materialized.
func NewComplete[E any](n int, value E) (*Complete[E], error) {
	if n < 0 {
		return nil, ErrIndexOutOfRange
	}

	return &Complete[E]{n: n, value: value}, nil
}

// NumberOfNodes returns n. Complexity: O(1).
func (c *Complete[E]) NumberOfNodes() int { return c.n }

// NumberOfEdges returns n·(n-1), the count of ordered pairs i≠j.
// Complexity: O(1).
func (c *Complete[E]) NumberOfEdges() int { return c.n * (c.n - 1) }

// Nodes enumerates 0..n-1 ascending.
func (c *Complete[E]) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Edges enumerates all ordered pairs i≠j in row-major order.
// Complexity: O(n²) to drain, documented as expensive by contract.
func (c *Complete[E]) Edges() iter.Seq[Edge[E]] {
	return func(yield func(Edge[E]) bool) {
		for u := 0; u < c.n; u++ {
			for v := 0; v < c.n; v++ {
				if u == v {
					continue
				}
				if !yield(Edge[E]{From: u, To: v, Value: c.value}) {
					return
				}
			}
		}
	}
}

// Neighbors enumerates every index except i, ascending. Fails with
// ErrIndexOutOfRange. Complexity: O(n) to drain.
func (c *Complete[E]) Neighbors(i int) (iter.Seq[int], error) {
	if i < 0 || i >= c.n {
		return nil, ErrIndexOutOfRange
	}

	return func(yield func(int) bool) {
		for v := 0; v < c.n; v++ {
			if v == i {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// OutEdges enumerates out-edge records from i; same destinations, same
// order, as Neighbors(i). Fails with ErrIndexOutOfRange.
func (c *Complete[E]) OutEdges(i int) (iter.Seq[Edge[E]], error) {
	if i < 0 || i >= c.n {
		return nil, ErrIndexOutOfRange
	}

	return func(yield func(Edge[E]) bool) {
		for v := 0; v < c.n; v++ {
			if v == i {
				continue
			}
			if !yield(Edge[E]{From: i, To: v, Value: c.value}) {
				return
			}
		}
	}, nil
}

// ContainsEdge reports i≠j for in-range pairs. Complexity: O(1).
func (c *Complete[E]) ContainsEdge(u, v int) bool {
	return u != v && u >= 0 && u < c.n && v >= 0 && v < c.n
}

// EdgeValue returns the uniform edge value for any existing pair.
// Fails with ErrIndexOutOfRange or ErrEdgeNotFound (the diagonal).
func (c *Complete[E]) EdgeValue(u, v int) (E, error) {
	var zero E
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return zero, ErrIndexOutOfRange
	}
	if u == v {
		return zero, ErrEdgeNotFound
	}

	return c.value, nil
}

// TryEdgeValue is the safe variant of EdgeValue.
func (c *Complete[E]) TryEdgeValue(u, v int) (E, bool) {
	val, err := c.EdgeValue(u, v)

	return val, err == nil
}

// Parents enumerates every index except i, identical to Neighbors,
// since K_n is its own transpose. Fails with ErrIndexOutOfRange.
func (c *Complete[E]) Parents(i int) (iter.Seq[int], error) { return c.Neighbors(i) }

// InEdges enumerates in-edge records into i. Fails with ErrIndexOutOfRange.
func (c *Complete[E]) InEdges(i int) (iter.Seq[Edge[E]], error) {
	if i < 0 || i >= c.n {
		return nil, ErrIndexOutOfRange
	}

	return func(yield func(Edge[E]) bool) {
		for u := 0; u < c.n; u++ {
			if u == i {
				continue
			}
			if !yield(Edge[E]{From: u, To: i, Value: c.value}) {
				return
			}
		}
	}, nil
}
