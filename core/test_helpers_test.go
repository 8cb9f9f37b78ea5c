// Package core_test verifies the digraph core contracts: registry
// bijection, insertion-order enumeration, capability probing, transpose
// purity, and the topological-sort state machine.
package core_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// collect drains a restartable sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// chainABC builds the three-node chain A→B (1), B→C (2) used across the
// façade tests, with the inbound index enabled when withIn is set.
func chainABC(t *testing.T, withIn bool) *core.Graph[string, int] {
	t.Helper()
	var opts []core.GraphOption
	if withIn {
		opts = append(opts, core.WithInEdges())
	}
	b := core.NewBuilder[string, int](opts...)
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("B", "C", 2))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// diamond builds the indexed DAG 0→1, 0→2, 1→3, 2→3.
func diamond(t *testing.T) *core.IndexedGraph[int] {
	t.Helper()
	b, err := core.NewIndexedBuilder[int](4)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 0))
	require.NoError(t, b.AddEdge(0, 2, 0))
	require.NoError(t, b.AddEdge(1, 3, 0))
	require.NoError(t, b.AddEdge(2, 3, 0))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}
