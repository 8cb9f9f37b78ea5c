// Package traverse provides breadth-first and depth-first walks over
// any core.IndexedView, with cancellation, visit hooks, depth limiting,
// and neighbor filtering.
//
// Both walks rely only on documented view guarantees: insertion-order
// Neighbors enumeration and O(out-degree) expansion. They never call
// Edges, so implicit kinds with O(n²) edge enumeration traverse cheaply.
package traverse

import (
	"context"
	"errors"
)

var (
	// ErrNilView is returned when a nil view is passed to BFS or DFS.
	ErrNilView = errors.New("traverse: view is nil")

	// ErrStartOutOfRange indicates the start index is outside
	// [0, NumberOfNodes).
	ErrStartOutOfRange = errors.New("traverse: start index out of range")

	// ErrNeighborFetch wraps a failure to enumerate neighbors mid-walk.
	ErrNeighborFetch = errors.New("traverse: failed to fetch neighbors")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable traversal parameters. Complexity stays
// O(V+E) when hooks and filters are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on every visited node (pre-order
	// for BFS, post-order for DFS). Returning an error aborts the walk.
	OnVisit func(i int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// Depth 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor before
	// expansion; return false to skip it.
	FilterNeighbor func(i int) bool
}

// DefaultOptions returns the traversal defaults: Background context, no
// hooks, no depth limit, no filtering.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(i int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs fn as the neighbor filter.
func WithFilterNeighbor(fn func(i int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a traversal over n nodes.
type Result struct {
	// Order records visited nodes: discovery order for BFS, finish
	// (post-) order for DFS.
	Order []int

	// Depth[i] is the edge distance from the start, -1 if unreached.
	Depth []int

	// Parent[i] is the node that discovered i, -1 for the start and for
	// unreached nodes.
	Parent []int

	// Visited[i] reports whether i was reached.
	Visited []bool
}

// newResult allocates a Result for n nodes with Depth/Parent sentinels.
func newResult(n int) *Result {
	r := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := range r.Depth {
		r.Depth[i] = -1
		r.Parent[i] = -1
	}

	return r
}
