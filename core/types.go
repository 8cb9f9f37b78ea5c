// Package core types: edge records, sort states, and the capability
// interfaces a graph variant may implement selectively.
//
// This file declares Edge, LabelEdge, SortState, and the View /
// IndexedView interface family. Concrete kinds live in graph.go,
// indexed.go, and complete.go; sentinel errors live in errors.go.
package core

import "iter"

// Edge is an immutable index-keyed directed edge record (from, to, value).
type Edge[E any] struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Value is the payload carried by the edge; any type, zero-value when
	// the graph variant stores no per-edge data.
	Value E
}

// LabelEdge is an immutable label-keyed directed edge record.
type LabelEdge[N comparable, E any] struct {
	// From is the source node label.
	From N

	// To is the destination node label.
	To N

	// Value is the payload carried by the edge.
	Value E
}

// SortState is the lifecycle state of the topological sorter.
type SortState int

const (
	// Unsorted: no successful SortTopologically call has happened yet.
	Unsorted SortState = iota
	// Sorting: a SortTopologically call is in flight (exclusive access).
	Sorting
	// Sorted: a SortTopologically call succeeded; order is applied.
	Sorted
)

// String returns the state name for diagnostics.
func (s SortState) String() string {
	switch s {
	case Unsorted:
		return "Unsorted"
	case Sorting:
		return "Sorting"
	case Sorted:
		return "Sorted"
	default:
		return "Unknown"
	}
}

// IndexedView is the minimal index-keyed read capability every graph
// variant provides. All sequences are lazy, finite, restartable, and
// enumerate in insertion order. Edges may cost O(n²) on implicit kinds
// such as Complete; prefer Neighbors/OutEdges expansion in algorithms.
type IndexedView[E any] interface {
	// NumberOfNodes returns the node count; indices are dense [0, n).
	// Complexity: O(1).
	NumberOfNodes() int

	// NumberOfEdges returns the count of distinct addressable (from,to)
	// pairs. Complexity: O(1) for stored kinds.
	NumberOfEdges() int

	// Nodes enumerates node indices. Ascending order, except after a
	// successful topological sort where it follows the sorted order.
	Nodes() iter.Seq[int]

	// Edges enumerates every edge record. Cost is O(V+E) for stored
	// kinds and documented O(n²) for implicit complete kinds.
	Edges() iter.Seq[Edge[E]]

	// Neighbors enumerates destination indices of out-edges from i in
	// insertion order. Fails with ErrIndexOutOfRange.
	// Complexity: O(out-degree) to drain.
	Neighbors(i int) (iter.Seq[int], error)

	// OutEdges enumerates out-edge records from i; same destinations,
	// same order, as Neighbors(i). Fails with ErrIndexOutOfRange.
	OutEdges(i int) (iter.Seq[Edge[E]], error)

	// ContainsEdge reports whether some out-edge from u ends at v.
	// Out-of-range indices report false.
	ContainsEdge(u, v int) bool

	// EdgeValue returns the value stored on edge u→v. Fails with
	// ErrIndexOutOfRange or ErrEdgeNotFound.
	EdgeValue(u, v int) (E, error)

	// TryEdgeValue is the safe variant of EdgeValue: a success flag and
	// the zero value of E instead of an error.
	TryEdgeValue(u, v int) (E, bool)
}

// IndexedPredecessors is the optional inbound-edge capability over
// indices. Probe with a type assertion; concrete kinds that carry the
// methods but were built without an in-edge index fail with
// ErrNotSupported instead.
type IndexedPredecessors[E any] interface {
	// Parents enumerates source indices of in-edges into i, in the order
	// the edges were inserted. Fails with ErrIndexOutOfRange or
	// ErrNotSupported.
	Parents(i int) (iter.Seq[int], error)

	// InEdges enumerates in-edge records into i; the exact transpose
	// relation of OutEdges across the whole graph.
	InEdges(i int) (iter.Seq[Edge[E]], error)
}

// View is the minimal label-keyed read capability.
type View[N comparable, E any] interface {
	// NumberOfNodes returns the node count. Complexity: O(1).
	NumberOfNodes() int

	// NumberOfEdges returns the addressable edge count. Complexity: O(1).
	NumberOfEdges() int

	// Nodes enumerates node labels in index order (or topological order
	// after a successful sort).
	Nodes() iter.Seq[N]

	// Edges enumerates every label-keyed edge record.
	Edges() iter.Seq[LabelEdge[N, E]]

	// Neighbors enumerates destination labels of out-edges from the
	// given node in insertion order. Fails with ErrLabelNotFound.
	Neighbors(label N) (iter.Seq[N], error)

	// OutEdges enumerates out-edge records from the given node; same
	// destinations, same order, as Neighbors. Fails with ErrLabelNotFound.
	OutEdges(label N) (iter.Seq[LabelEdge[N, E]], error)

	// ContainsEdge reports whether an edge from→to exists. Unknown
	// labels report false.
	ContainsEdge(from, to N) bool

	// EdgeValue returns the value stored on the from→to edge. Fails with
	// ErrLabelNotFound or ErrEdgeNotFound.
	EdgeValue(from, to N) (E, error)

	// TryEdgeValue is the safe variant of EdgeValue.
	TryEdgeValue(from, to N) (E, bool)
}

// Predecessors is the optional label-keyed inbound-edge capability.
type Predecessors[N comparable, E any] interface {
	// Parents enumerates source labels of in-edges into the given node.
	Parents(label N) (iter.Seq[N], error)

	// InEdges enumerates in-edge records into the given node.
	InEdges(label N) (iter.Seq[LabelEdge[N, E]], error)
}

// Sortable is the optional topological-sort capability. The sort is the
// sole mutation a constructed graph admits; it requires exclusive
// access (no concurrent queries).
type Sortable interface {
	// SortTopologically establishes a topological iteration order, or
	// fails with ErrGraphCycle leaving the graph observably unchanged.
	// A second call after success is a no-op.
	SortTopologically() error

	// IsSorted reports whether a successful sort has been applied.
	IsSorted() bool

	// SortState returns the sorter lifecycle state.
	SortState() SortState
}
