package core

import "iter"

// Graph is the label-keyed graph kind: a registry translating opaque
// labels to dense indices, layered over the same adjacency store the
// indexed façade queries. Translation is one registry lookup per call;
// hot paths can bypass it entirely via Indexed().
//
// Instances are produced by Builder and are immutable afterwards except
// for the one-shot SortTopologically transition. Safe for concurrent
// reads; exclusive access required for sorting.
type Graph[N comparable, E any] struct {
	reg *registry[N]
	idx *IndexedGraph[E]
}

// Compile-time capability checks.
var (
	_ View[string, int]         = (*Graph[string, int])(nil)
	_ Predecessors[string, int] = (*Graph[string, int])(nil)
	_ Sortable                  = (*Graph[string, int])(nil)
)

// NumberOfNodes returns the node count. Complexity: O(1).
func (g *Graph[N, E]) NumberOfNodes() int { return g.reg.len() }

// NumberOfEdges returns the count of distinct (from,to) pairs.
// Complexity: O(1).
func (g *Graph[N, E]) NumberOfEdges() int { return g.idx.NumberOfEdges() }

// HasInEdges reports whether Parents/InEdges are available.
func (g *Graph[N, E]) HasInEdges() bool { return g.idx.HasInEdges() }

// Indexed returns the index-keyed façade over the same registry-backed
// store. Indices are stable for the lifetime of this instance and
// resolve through LabelOf/IndexOf. Sorting through either façade is
// visible through both.
func (g *Graph[N, E]) Indexed() *IndexedGraph[E] { return g.idx }

// LabelOf returns the label registered at index i.
// Fails with ErrIndexOutOfRange. Complexity: O(1).
func (g *Graph[N, E]) LabelOf(i int) (N, error) { return g.reg.labelOf(i) }

// IndexOf returns the dense index assigned to label.
// Fails with ErrLabelNotFound. Complexity: O(1) amortized.
func (g *Graph[N, E]) IndexOf(label N) (int, error) { return g.reg.indexOf(label) }

// Nodes enumerates node labels in index order, or topological order
// after a successful sort.
func (g *Graph[N, E]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := range g.idx.Nodes() {
			if !yield(g.reg.labels[i]) {
				return
			}
		}
	}
}

// Edges enumerates every edge as a label-keyed record, grouped by
// source node in Nodes() order. Complexity: O(V+E) to drain.
func (g *Graph[N, E]) Edges() iter.Seq[LabelEdge[N, E]] {
	return func(yield func(LabelEdge[N, E]) bool) {
		for e := range g.idx.Edges() {
			if !yield(LabelEdge[N, E]{From: g.reg.labels[e.From], To: g.reg.labels[e.To], Value: e.Value}) {
				return
			}
		}
	}
}

// Neighbors enumerates destination labels of out-edges from the given
// node in insertion order. Fails with ErrLabelNotFound.
// Complexity: O(out-degree) to drain.
func (g *Graph[N, E]) Neighbors(label N) (iter.Seq[N], error) {
	i, err := g.reg.indexOf(label)
	if err != nil {
		return nil, err
	}
	seq, err := g.idx.Neighbors(i)
	if err != nil {
		return nil, err
	}

	return func(yield func(N) bool) {
		for j := range seq {
			if !yield(g.reg.labels[j]) {
				return
			}
		}
	}, nil
}

// OutEdges enumerates out-edge records from the given node; same
// destinations, same order, as Neighbors. Fails with ErrLabelNotFound.
func (g *Graph[N, E]) OutEdges(label N) (iter.Seq[LabelEdge[N, E]], error) {
	i, err := g.reg.indexOf(label)
	if err != nil {
		return nil, err
	}
	seq, err := g.idx.OutEdges(i)
	if err != nil {
		return nil, err
	}

	return func(yield func(LabelEdge[N, E]) bool) {
		for e := range seq {
			if !yield(LabelEdge[N, E]{From: label, To: g.reg.labels[e.To], Value: e.Value}) {
				return
			}
		}
	}, nil
}

// ContainsEdge reports whether an edge from→to exists; unknown labels
// report false.
func (g *Graph[N, E]) ContainsEdge(from, to N) bool {
	u, err := g.reg.indexOf(from)
	if err != nil {
		return false
	}
	v, err := g.reg.indexOf(to)
	if err != nil {
		return false
	}

	return g.idx.ContainsEdge(u, v)
}

// EdgeValue returns the value stored on the from→to edge.
// Fails with ErrLabelNotFound or ErrEdgeNotFound.
func (g *Graph[N, E]) EdgeValue(from, to N) (E, error) {
	var zero E
	u, err := g.reg.indexOf(from)
	if err != nil {
		return zero, err
	}
	v, err := g.reg.indexOf(to)
	if err != nil {
		return zero, err
	}

	return g.idx.EdgeValue(u, v)
}

// TryEdgeValue is the safe variant of EdgeValue: success flag plus the
// zero value of E on any absence (label or edge), never an error.
func (g *Graph[N, E]) TryEdgeValue(from, to N) (E, bool) {
	val, err := g.EdgeValue(from, to)

	return val, err == nil
}

// Parents enumerates source labels of in-edges into the given node.
// Fails with ErrNotSupported unless built WithInEdges, or ErrLabelNotFound.
func (g *Graph[N, E]) Parents(label N) (iter.Seq[N], error) {
	i, err := g.reg.indexOf(label)
	if err != nil {
		return nil, err
	}
	seq, err := g.idx.Parents(i)
	if err != nil {
		return nil, err
	}

	return func(yield func(N) bool) {
		for j := range seq {
			if !yield(g.reg.labels[j]) {
				return
			}
		}
	}, nil
}

// InEdges enumerates in-edge records into the given node; the exact
// transpose relation of OutEdges across the whole graph. Fails with
// ErrNotSupported unless built WithInEdges, or ErrLabelNotFound.
func (g *Graph[N, E]) InEdges(label N) (iter.Seq[LabelEdge[N, E]], error) {
	i, err := g.reg.indexOf(label)
	if err != nil {
		return nil, err
	}
	seq, err := g.idx.InEdges(i)
	if err != nil {
		return nil, err
	}

	return func(yield func(LabelEdge[N, E]) bool) {
		for e := range seq {
			if !yield(LabelEdge[N, E]{From: g.reg.labels[e.From], To: label, Value: e.Value}) {
				return
			}
		}
	}, nil
}

// SortTopologically establishes a topological iteration order; see
// IndexedGraph.SortTopologically. The order is visible through both
// façades.
func (g *Graph[N, E]) SortTopologically() error { return g.idx.SortTopologically() }

// IsSorted reports whether a successful sort has been applied.
func (g *Graph[N, E]) IsSorted() bool { return g.idx.IsSorted() }

// SortState returns the sorter lifecycle state.
func (g *Graph[N, E]) SortState() SortState { return g.idx.SortState() }

// TopologicalOrder returns the applied topological order as labels, or
// nil when the graph has not been sorted.
func (g *Graph[N, E]) TopologicalOrder() []N {
	idxOrder := g.idx.TopologicalOrder()
	if idxOrder == nil {
		return nil
	}
	order := make([]N, len(idxOrder))
	for p, i := range idxOrder {
		order[p] = g.reg.labels[i]
	}

	return order
}

// pendingEdge is one buffered builder insert, kept in call order so the
// built store preserves insertion-order enumeration.
type pendingEdge[E any] struct {
	u, v  int
	value E
}

// Builder accumulates labeled nodes and edges and produces an immutable
// Graph. Labels are registered in first-appearance order and assigned
// dense indices 0..N-1. Zero value is not usable; call NewBuilder.
type Builder[N comparable, E any] struct {
	reg     *registry[N]
	pending []pendingEdge[E]
	pairs   map[[2]int]struct{} // duplicate detection during buffering
	cfg     graphConfig
	sealed  bool
}

// NewBuilder returns an empty labeled-graph builder.
func NewBuilder[N comparable, E any](opts ...GraphOption) *Builder[N, E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder[N, E]{
		reg:   newRegistry[N](cfg.nodeHint),
		pairs: make(map[[2]int]struct{}),
		cfg:   cfg,
	}
}

// AddNode registers label and returns its index; re-adding an existing
// label is idempotent. Isolated nodes participate in all queries and in
// topological sorting. Fails with ErrBuilderSealed after Build.
func (b *Builder[N, E]) AddNode(label N) (int, error) {
	if b.sealed {
		return 0, ErrBuilderSealed
	}

	return b.reg.add(label), nil
}

// AddEdge inserts edge from→to carrying value, auto-registering both
// labels. Fails with ErrDuplicateEdge on a repeated (from,to) pair or
// ErrBuilderSealed after Build.
func (b *Builder[N, E]) AddEdge(from, to N, value E) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	u := b.reg.add(from)
	v := b.reg.add(to)
	key := [2]int{u, v}
	if _, dup := b.pairs[key]; dup {
		return ErrDuplicateEdge
	}
	b.pairs[key] = struct{}{}
	b.pending = append(b.pending, pendingEdge[E]{u: u, v: v, value: value})

	return nil
}

// Build finalizes the builder and returns the immutable graph. The
// builder is sealed afterwards.
func (b *Builder[N, E]) Build() (*Graph[N, E], error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	st := newStore[E](b.reg.len(), b.cfg.inEdges)
	for _, pe := range b.pending {
		// Range and duplicate violations were rejected at AddEdge time.
		if err := st.insert(pe.u, pe.v, pe.value); err != nil {
			return nil, err
		}
	}

	return &Graph[N, E]{reg: b.reg, idx: &IndexedGraph[E]{st: st}}, nil
}
