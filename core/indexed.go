package core

import "iter"

// GraphOption configures a graph under construction.
type GraphOption func(*graphConfig)

// graphConfig holds construction-time settings resolved from options.
type graphConfig struct {
	inEdges  bool // mirror every insert into an inbound index
	nodeHint int  // registry/storage capacity hint (labeled builder)
}

// WithInEdges enables the inbound-edge index: every insert is mirrored,
// and Parents/InEdges become available on the built graph. Without it
// those queries fail with ErrNotSupported.
// Cost: doubles adjacency storage; insert stays O(1) amortized.
func WithInEdges() GraphOption {
	return func(c *graphConfig) { c.inEdges = true }
}

// WithNodeHint pre-sizes the registry and adjacency rows for the
// expected node count. Purely an allocation hint; negative values are
// ignored.
func WithNodeHint(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.nodeHint = n
		}
	}
}

// IndexedGraph is the dense-integer-indexed graph kind: queries go
// straight to the adjacency store with no label translation. Instances
// are produced by IndexedBuilder (or Graph.Indexed) and are immutable
// afterwards except for the one-shot SortTopologically transition.
//
// Safe for concurrent reads; exclusive access required for sorting.
type IndexedGraph[E any] struct {
	st  *store[E]
	srt sorter
}

// Compile-time capability checks.
var (
	_ IndexedView[int]         = (*IndexedGraph[int])(nil)
	_ IndexedPredecessors[int] = (*IndexedGraph[int])(nil)
	_ Sortable                 = (*IndexedGraph[int])(nil)
)

// NumberOfNodes returns the node count. Complexity: O(1).
func (g *IndexedGraph[E]) NumberOfNodes() int { return len(g.st.out) }

// NumberOfEdges returns the count of distinct (from,to) pairs.
// Complexity: O(1).
func (g *IndexedGraph[E]) NumberOfEdges() int { return g.st.edges }

// HasInEdges reports whether the inbound-edge index was built
// (the capability behind Parents/InEdges).
func (g *IndexedGraph[E]) HasInEdges() bool { return g.st.in != nil }

// Nodes enumerates node indices: ascending before a sort, topological
// order after a successful SortTopologically.
func (g *IndexedGraph[E]) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		if g.srt.isSorted() {
			for _, i := range g.srt.order {
				if !yield(i) {
					return
				}
			}

			return
		}
		for i := 0; i < len(g.st.out); i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Edges enumerates every edge record, grouped by source node in Nodes()
// order, insertion order within each node. Complexity: O(V+E) to drain.
func (g *IndexedGraph[E]) Edges() iter.Seq[Edge[E]] {
	return func(yield func(Edge[E]) bool) {
		for u := range g.Nodes() {
			for _, a := range g.st.out[u].arcs {
				if !yield(Edge[E]{From: u, To: a.head, Value: a.value}) {
					return
				}
			}
		}
	}
}

// Neighbors enumerates destinations of out-edges from i in insertion
// order. Fails with ErrIndexOutOfRange. Complexity: O(out-degree).
func (g *IndexedGraph[E]) Neighbors(i int) (iter.Seq[int], error) {
	if !g.st.inRange(i) {
		return nil, ErrIndexOutOfRange
	}
	arcs := g.st.out[i].arcs

	return func(yield func(int) bool) {
		for _, a := range arcs {
			if !yield(a.head) {
				return
			}
		}
	}, nil
}

// OutEdges enumerates out-edge records from i; exactly the same
// destinations, same order, as Neighbors(i). Fails with ErrIndexOutOfRange.
func (g *IndexedGraph[E]) OutEdges(i int) (iter.Seq[Edge[E]], error) {
	if !g.st.inRange(i) {
		return nil, ErrIndexOutOfRange
	}
	arcs := g.st.out[i].arcs

	return func(yield func(Edge[E]) bool) {
		for _, a := range arcs {
			if !yield(Edge[E]{From: i, To: a.head, Value: a.value}) {
				return
			}
		}
	}, nil
}

// ContainsEdge reports whether edge u→v exists; out-of-range endpoints
// report false. Complexity: O(1) average on promoted rows, O(d) otherwise.
func (g *IndexedGraph[E]) ContainsEdge(u, v int) bool { return g.st.contains(u, v) }

// EdgeValue returns the value on edge u→v. Fails with
// ErrIndexOutOfRange or ErrEdgeNotFound.
func (g *IndexedGraph[E]) EdgeValue(u, v int) (E, error) { return g.st.value(u, v) }

// TryEdgeValue is the safe variant of EdgeValue: success flag plus the
// zero value of E on absence, never an error.
func (g *IndexedGraph[E]) TryEdgeValue(u, v int) (E, bool) {
	val, err := g.st.value(u, v)

	return val, err == nil
}

// Parents enumerates sources of in-edges into i, in edge insertion
// order. Fails with ErrNotSupported unless built WithInEdges, or
// ErrIndexOutOfRange.
func (g *IndexedGraph[E]) Parents(i int) (iter.Seq[int], error) {
	if g.st.in == nil {
		return nil, ErrNotSupported
	}
	if !g.st.inRange(i) {
		return nil, ErrIndexOutOfRange
	}
	arcs := g.st.in[i].arcs

	return func(yield func(int) bool) {
		for _, a := range arcs {
			if !yield(a.head) {
				return
			}
		}
	}, nil
}

// InEdges enumerates in-edge records into i; the exact transpose
// relation of OutEdges across the whole graph. Fails with
// ErrNotSupported unless built WithInEdges, or ErrIndexOutOfRange.
func (g *IndexedGraph[E]) InEdges(i int) (iter.Seq[Edge[E]], error) {
	if g.st.in == nil {
		return nil, ErrNotSupported
	}
	if !g.st.inRange(i) {
		return nil, ErrIndexOutOfRange
	}
	arcs := g.st.in[i].arcs

	return func(yield func(Edge[E]) bool) {
		for _, a := range arcs {
			if !yield(Edge[E]{From: a.head, To: i, Value: a.value}) {
				return
			}
		}
	}, nil
}

// SortTopologically establishes a topological iteration order using
// Kahn's algorithm, ties broken by ascending node index. Fails with
// ErrGraphCycle, leaving the graph observably unchanged. A second call
// after success is a no-op. Requires exclusive access.
// Complexity: O((V+E) log V).
func (g *IndexedGraph[E]) SortTopologically() error { return runSort(&g.srt, g.st) }

// IsSorted reports whether a successful sort has been applied.
func (g *IndexedGraph[E]) IsSorted() bool { return g.srt.isSorted() }

// SortState returns the sorter lifecycle state.
func (g *IndexedGraph[E]) SortState() SortState { return g.srt.state }

// TopologicalOrder returns a copy of the applied topological order, or
// nil when the graph has not been sorted.
func (g *IndexedGraph[E]) TopologicalOrder() []int {
	if !g.srt.isSorted() {
		return nil
	}
	order := make([]int, len(g.srt.order))
	copy(order, g.srt.order)

	return order
}

// IndexedBuilder accumulates edges over a fixed node count [0, n) and
// produces an immutable IndexedGraph. Zero value is not usable; call
// NewIndexedBuilder.
type IndexedBuilder[E any] struct {
	st     *store[E]
	sealed bool
}

// NewIndexedBuilder returns a builder for a graph of exactly n nodes.
// Fails with ErrIndexOutOfRange when n is negative.
func NewIndexedBuilder[E any](n int, opts ...GraphOption) (*IndexedBuilder[E], error) {
	if n < 0 {
		return nil, ErrIndexOutOfRange
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &IndexedBuilder[E]{st: newStore[E](n, cfg.inEdges)}, nil
}

// AddEdge inserts edge u→v carrying value. Fails with
// ErrIndexOutOfRange, ErrDuplicateEdge, or ErrBuilderSealed.
func (b *IndexedBuilder[E]) AddEdge(u, v int, value E) error {
	if b.sealed {
		return ErrBuilderSealed
	}

	return b.st.insert(u, v, value)
}

// Build finalizes the builder and returns the immutable graph. The
// builder is sealed afterwards; further AddEdge calls fail with
// ErrBuilderSealed.
func (b *IndexedBuilder[E]) Build() (*IndexedGraph[E], error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	return &IndexedGraph[E]{st: b.st}, nil
}
