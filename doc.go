// Package digraph is an in-memory toolkit for building and querying
// immutable directed graphs under two interchangeable keyings: opaque
// node labels and dense integer indices.
//
// 🚀 What is digraph?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core primitives: label↔index registry, adjacency store, edge records
//		• Two façades: label-keyed Graph[N,E] and index-keyed IndexedGraph[E]
//		• Transpose: pure edge reversal preserving labels and indices
//		• Topological sort: Kahn's algorithm with deterministic tie-breaking
//		• Capability probing: optional in-edge queries, sortability, transpose
//		• Generators & loaders: paths, cycles, stars, complete graphs, grids
//		• Traversals: BFS and DFS visit orders over any indexed view
//
// ✨ Why choose digraph?
//
//   - Build once, query forever – graphs are immutable after construction
//   - Deterministic – insertion-order enumeration, reproducible sort orders
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – sentinel errors, documented complexity on every call
//
// Everything is organized under three subpackages:
//
//	core/     : registry, adjacency store, graph façades, transpose, toposort
//	builder/  : deterministic topology generators and edge-list loaders
//	traverse/ : BFS/DFS visit orders and reachability over indexed views
//
// Quick ASCII example:
//
//	    A──▶B──▶C
//
//	a three-node chain: Neighbors(A) = [B], topological order = [A B C].
//
// Runnable examples live in each subpackage's example_test.go.
//
//	go get github.com/katalvlaran/digraph
package digraph
