// Package builder provides deterministic construction collaborators for
// digraph/core: topology generators (Path, Cycle, Star, Complete, Grid)
// and loaders (FromEdgeList, FromAdjacencyList).
//
// Design contract:
//   - Determinism: the same inputs and options always produce identical
//     graphs: same index assignment, same edge insertion order.
//   - Safety: generators never panic; invalid parameters return sentinel
//     errors (ErrTooFewNodes, ErrInvalidDimensions).
//   - Generators emit edges in a stable, documented order, so tests can
//     rely on insertion-order enumeration downstream.
//
// Generated graphs are index-keyed except Grid, which labels its nodes
// "r,c" in row-major order, and the loaders, which carry caller labels.
// Pass core options (core.WithInEdges) through WithGraphOptions to
// enable inbound queries on the result.
//
// Errors:
//
//	ErrTooFewNodes       - node count below the topology's minimum.
//	ErrInvalidDimensions - non-positive grid dimensions.
package builder
