package core

import "errors"

// Sentinel errors for core graph operations. All failures are local to
// the failed call and leave the graph instance unchanged; callers branch
// with errors.Is.
var (
	// ErrLabelNotFound indicates a label absent from the registry.
	ErrLabelNotFound = errors.New("core: label not found")

	// ErrIndexOutOfRange indicates a node index outside [0, NumberOfNodes).
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrEdgeNotFound indicates no edge exists between the given pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates a (from,to) pair was inserted twice
	// during construction.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrGraphCycle indicates a directed cycle was found by
	// SortTopologically; no partial ordering is applied.
	ErrGraphCycle = errors.New("core: graph contains a cycle")

	// ErrNotSupported indicates an optional capability is absent on this
	// graph variant (e.g. in-edge queries without WithInEdges).
	ErrNotSupported = errors.New("core: operation not supported by this graph")

	// ErrSortInProgress indicates SortTopologically was re-entered while
	// a sort was already running. Sorting requires exclusive access.
	ErrSortInProgress = errors.New("core: topological sort already in progress")

	// ErrBuilderSealed indicates a builder was used after Build.
	ErrBuilderSealed = errors.New("core: builder sealed after Build")

	// ErrNilView indicates a nil view was passed to a free function.
	ErrNilView = errors.New("core: view is nil")
)
