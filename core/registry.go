package core

// registry maintains the total bijection between opaque node labels and
// dense indices 0..N-1. It is append-only during construction and
// read-only once the owning graph is built.
//
// Backing: a dense slice for index→label plus a map for label→index,
// giving O(1) amortized lookups in both directions.
type registry[N comparable] struct {
	labels []N       // index → label, dense
	index  map[N]int // label → index
}

// newRegistry returns an empty registry with capacity hints applied.
func newRegistry[N comparable](hint int) *registry[N] {
	return &registry[N]{
		labels: make([]N, 0, hint),
		index:  make(map[N]int, hint),
	}
}

// add registers label and returns its index. Re-adding an existing
// label is idempotent and returns the original index, preserving the
// uniqueness invariant (no two indices map to equal labels).
// Complexity: O(1) amortized.
func (r *registry[N]) add(label N) int {
	if i, ok := r.index[label]; ok {
		return i
	}
	i := len(r.labels)
	r.labels = append(r.labels, label)
	r.index[label] = i

	return i
}

// labelOf returns the label registered at index i.
// Fails with ErrIndexOutOfRange if i is not in [0, len).
func (r *registry[N]) labelOf(i int) (N, error) {
	if i < 0 || i >= len(r.labels) {
		var zero N
		return zero, ErrIndexOutOfRange
	}

	return r.labels[i], nil
}

// indexOf returns the index registered for label.
// Fails with ErrLabelNotFound if the label is absent.
func (r *registry[N]) indexOf(label N) (int, error) {
	i, ok := r.index[label]
	if !ok {
		return 0, ErrLabelNotFound
	}

	return i, nil
}

// len returns the number of registered labels.
func (r *registry[N]) len() int { return len(r.labels) }
