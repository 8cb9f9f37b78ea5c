// Package core provides the central directed-graph types of digraph:
// edge records, the label↔index registry, the adjacency store, and the
// two query façades, label-keyed Graph[N,E] and index-keyed
// IndexedGraph[E], together with transpose and topological sorting.
//
// # Construction model
//
// Graphs are built once through a builder and are immutable afterwards:
//
//	b := core.NewBuilder[string, int](core.WithInEdges())
//	_ = b.AddEdge("A", "B", 1)
//	_ = b.AddEdge("B", "C", 2)
//	g, err := b.Build()
//
// The builder auto-registers labels in first-appearance order, assigns
// dense indices 0..N-1, and rejects duplicate (from,to) pairs with
// ErrDuplicateEdge. After Build the builder is sealed; the produced graph
// exclusively owns its registry and adjacency store.
//
// # Query model
//
// All enumerations (Nodes, Edges, Neighbors, OutEdges, Parents, InEdges)
// return lazy, restartable iter.Seq sequences in insertion order.
// Neighbor iteration costs O(out-degree); edge-existence lookups cost
// O(d) for small out-degrees and O(1) once a per-node lookup table has
// been promoted. "Unsafe" lookups (EdgeValue, LabelOf, IndexOf) surface
// sentinel errors; Try variants return a success flag and a zero value.
//
// # Capabilities
//
// Optional operation sets are separate interfaces (View, Predecessors,
// IndexedView, IndexedPredecessors, Sortable). Callers probe with a type
// assertion and must not assume universal availability: in-edge queries
// on a graph built without WithInEdges fail with ErrNotSupported, and
// the implicit Complete kind is not Sortable at all.
//
// # Sorting
//
// SortTopologically is the sole mutator. It runs Kahn's algorithm with
// ties broken by ascending node index, transitions Unsorted → Sorting →
// Sorted, and on ErrGraphCycle leaves the graph observably unchanged.
// After success Nodes() enumerates in topological order.
//
// # Concurrency
//
// A constructed graph is safe for concurrent reads. SortTopologically
// mutates iteration state and requires exclusive access; no query may
// run concurrently with it. No operation blocks or performs I/O.
//
// Errors:
//
//	ErrLabelNotFound   - label absent from the registry.
//	ErrIndexOutOfRange - index outside [0, NumberOfNodes).
//	ErrEdgeNotFound    - no edge between the given pair.
//	ErrDuplicateEdge   - (from,to) pair inserted twice at construction.
//	ErrGraphCycle      - topological sort found a directed cycle.
//	ErrNotSupported    - optional capability absent on this variant.
//	ErrSortInProgress  - SortTopologically re-entered while running.
//	ErrBuilderSealed   - builder used after Build.
//	ErrNilView         - nil view passed to a free function.
package core
