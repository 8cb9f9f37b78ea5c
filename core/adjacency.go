package core

// This file holds the adjacency store: per-node arc rows keyed by dense
// integer indices, with insertion-order enumeration and hybrid
// linear-scan / hash-table existence checks.

// scanThreshold is the out-degree above which a row promotes its linear
// scan to a per-node position table. Small rows stay allocation-light;
// large rows get O(1) average lookups.
const scanThreshold = 8

// arc is one stored out- or in-edge endpoint within a row.
type arc[E any] struct {
	head  int // destination (out rows) or source (in rows)
	value E   // edge payload
}

// row is an ordered adjacency list for a single node. arcs preserves
// insertion order; pos (lazily promoted) maps head → position in arcs.
type row[E any] struct {
	arcs []arc[E]
	pos  map[int]int // nil until len(arcs) exceeds scanThreshold
}

// find returns the position of head in the row and whether it exists.
// Complexity: O(1) average once promoted, O(d) linear scan before.
func (r *row[E]) find(head int) (int, bool) {
	if r.pos != nil {
		p, ok := r.pos[head]
		return p, ok
	}
	for p, a := range r.arcs {
		if a.head == head {
			return p, true
		}
	}

	return 0, false
}

// append adds an arc, promoting the position table once the row grows
// past scanThreshold. Callers must have rejected duplicates already.
func (r *row[E]) append(head int, value E) {
	r.arcs = append(r.arcs, arc[E]{head: head, value: value})
	if r.pos != nil {
		r.pos[head] = len(r.arcs) - 1

		return
	}
	if len(r.arcs) > scanThreshold {
		// Promote: index every arc inserted so far.
		r.pos = make(map[int]int, len(r.arcs)*2)
		for p, a := range r.arcs {
			r.pos[a.head] = p
		}
	}
}

// store holds all directed edges of one graph instance, keyed by dense
// node indices. out is always populated; in mirrors every insert when
// inbound queries were requested at construction and is nil otherwise.
type store[E any] struct {
	out   []row[E]
	in    []row[E] // nil ⇒ Parents/InEdges unsupported
	edges int      // count of distinct (from,to) pairs
}

// newStore allocates a store for n nodes, with mirrored in-rows when
// withIn is set.
func newStore[E any](n int, withIn bool) *store[E] {
	s := &store[E]{out: make([]row[E], n)}
	if withIn {
		s.in = make([]row[E], n)
	}

	return s
}

// inRange reports whether i is a valid node index.
func (s *store[E]) inRange(i int) bool { return i >= 0 && i < len(s.out) }

// insert adds the directed edge u→v carrying value. Fails with
// ErrIndexOutOfRange for endpoints outside [0, n) and ErrDuplicateEdge
// when the ordered pair is already present. Mirrors into the in-rows
// when inbound indexing is enabled. Complexity: O(1) amortized.
func (s *store[E]) insert(u, v int, value E) error {
	if !s.inRange(u) || !s.inRange(v) {
		return ErrIndexOutOfRange
	}
	if _, dup := s.out[u].find(v); dup {
		return ErrDuplicateEdge
	}
	s.out[u].append(v, value)
	if s.in != nil {
		s.in[v].append(u, value)
	}
	s.edges++

	return nil
}

// contains reports whether the edge u→v exists. Out-of-range endpoints
// report false rather than failing; use value for a checked lookup.
func (s *store[E]) contains(u, v int) bool {
	if !s.inRange(u) {
		return false
	}
	_, ok := s.out[u].find(v)

	return ok
}

// value returns the payload stored on edge u→v.
func (s *store[E]) value(u, v int) (E, error) {
	var zero E
	if !s.inRange(u) || !s.inRange(v) {
		return zero, ErrIndexOutOfRange
	}
	p, ok := s.out[u].find(v)
	if !ok {
		return zero, ErrEdgeNotFound
	}

	return s.out[u].arcs[p].value, nil
}

// transposed returns a fresh store with every edge reversed and the
// same node count and in-row policy. Insertion order of the new out-rows
// follows the enumeration order of the original edges, so the result is
// deterministic. Complexity: O(V+E).
func (s *store[E]) transposed() *store[E] {
	t := newStore[E](len(s.out), s.in != nil)
	for u := range s.out {
		for _, a := range s.out[u].arcs {
			// Duplicates cannot occur: (u,v) unique ⇒ (v,u) unique.
			_ = t.insert(a.head, u, a.value)
		}
	}

	return t
}
