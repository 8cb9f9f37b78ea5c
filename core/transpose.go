// Transpose: pure edge reversal producing a new instance of the same
// concrete kind. The node set, the label set, and the label-to-index
// assignment are all preserved identically: the transposed graph
// answers LabelOf/IndexOf exactly like the original, only the edge
// directions differ. The new instance starts Unsorted.
package core

// Transpose returns a new IndexedGraph whose edge set is
// {(v,u,value) | (u,v,value) ∈ g}. The original is unmodified; the
// in-edge capability carries over. Complexity: O(V+E).
func (g *IndexedGraph[E]) Transpose() *IndexedGraph[E] {
	return &IndexedGraph[E]{st: g.st.transposed()}
}

// Transpose returns a new Graph with every edge reversed. Labels and
// index assignment are preserved identically; the registry is shared
// (read-only after construction). Complexity: O(V+E).
func (g *Graph[N, E]) Transpose() *Graph[N, E] {
	return &Graph[N, E]{reg: g.reg, idx: g.idx.Transpose()}
}

// TransposeOf materializes the reverse of any indexed view into a fresh
// IndexedGraph, including implicit kinds such as Complete that carry no
// Transpose method of their own. The result is built with an in-edge
// index when the source supports inbound queries. Fails with ErrNilView.
// Complexity: O(V+E) over the view's Edges enumeration, O(n²) for
// implicit complete kinds.
func TransposeOf[E any](v IndexedView[E]) (*IndexedGraph[E], error) {
	if v == nil {
		return nil, ErrNilView
	}
	// Concrete kinds may expose Parents/InEdges while the index itself is
	// disabled, so prefer the dedicated capability accessor when present.
	withIn := false
	type hasIn interface{ HasInEdges() bool }
	if h, ok := v.(hasIn); ok {
		withIn = h.HasInEdges()
	} else if _, ok := v.(IndexedPredecessors[E]); ok {
		withIn = true
	}
	st := newStore[E](v.NumberOfNodes(), withIn)
	for e := range v.Edges() {
		if err := st.insert(e.To, e.From, e.Value); err != nil {
			return nil, err
		}
	}

	return &IndexedGraph[E]{st: st}, nil
}
