// Package builder_test verifies generator determinism, emission order,
// and parameter validation.
package builder_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
)

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// TestPath covers P_n shape, weights, and sortability.
func TestPath(t *testing.T) {
	_, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Path(4, builder.WithWeightFunc(func(u, v int) int64 { return int64(u + v) }))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumberOfNodes())
	assert.Equal(t, 3, g.NumberOfEdges())
	for i := 0; i < 3; i++ {
		require.True(t, g.ContainsEdge(i, i+1))
		w, werr := g.EdgeValue(i, i+1)
		require.NoError(t, werr)
		assert.Equal(t, int64(2*i+1), w)
	}

	require.NoError(t, g.SortTopologically())
	assert.Equal(t, []int{0, 1, 2, 3}, g.TopologicalOrder())
}

// TestCycle covers C_n shape and the guaranteed sort failure.
func TestCycle(t *testing.T) {
	_, err := builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Cycle(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumberOfEdges())
	assert.True(t, g.ContainsEdge(2, 0))

	assert.ErrorIs(t, g.SortTopologically(), core.ErrGraphCycle)
	assert.False(t, g.IsSorted())
}

// TestStar covers S_n shape and the inbound index pass-through.
func TestStar(t *testing.T) {
	_, err := builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Star(5, builder.WithGraphOptions(core.WithInEdges()))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumberOfEdges())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(nbs))

	parents, err := g.Parents(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, collect(parents))
}

// TestComplete covers the materialized K_n, including the canonical
// n=4 edge count.
func TestComplete(t *testing.T) {
	_, err := builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Complete(4, builder.WithUniformWeight(7))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NumberOfEdges())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, i != j, g.ContainsEdge(i, j))
		}
	}
	w, err := g.EdgeValue(3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
}

// TestGrid covers label assignment, edge directions, and acyclicity.
func TestGrid(t *testing.T) {
	_, err := builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrInvalidDimensions)

	g, err := builder.Grid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumberOfNodes())
	// East edges: 2 per row; south edges: 3 per column pair.
	assert.Equal(t, 2*2+3, g.NumberOfEdges())

	// Row-major index assignment.
	i, err := g.IndexOf("1,2")
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	assert.True(t, g.ContainsEdge("0,0", "0,1"))
	assert.True(t, g.ContainsEdge("0,0", "1,0"))
	assert.False(t, g.ContainsEdge("0,1", "0,0"))

	// East is emitted before south.
	nbs, err := g.Neighbors("0,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,0"}, collect(nbs))

	require.NoError(t, g.SortTopologically())
	assert.True(t, g.IsSorted())
}

// TestFromEdgeList covers loader ordering and duplicate propagation.
func TestFromEdgeList(t *testing.T) {
	g, err := builder.FromEdgeList([]core.LabelEdge[string, int]{
		{From: "A", To: "B", Value: 1},
		{From: "B", To: "C", Value: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumberOfNodes())
	val, err := g.EdgeValue("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 2, val)

	_, err = builder.FromEdgeList([]core.LabelEdge[string, int]{
		{From: "A", To: "B"},
		{From: "A", To: "B"},
	})
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

// TestFromAdjacencyList covers deterministic key ordering and edge
// insertion order.
func TestFromAdjacencyList(t *testing.T) {
	g, err := builder.FromAdjacencyList(map[string][]string{
		"b": {"c"},
		"a": {"c", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumberOfNodes())

	// Sources registered in sorted order: a=0, b=1; target c appended.
	i, err := g.IndexOf("a")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = g.IndexOf("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	nbs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, collect(nbs))

	_, err = builder.FromAdjacencyList(map[string][]string{"x": {"y", "y"}})
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

// TestDeterminism verifies two runs with equal inputs produce
// identical edge enumerations.
func TestDeterminism(t *testing.T) {
	first, err := builder.Grid(3, 3)
	require.NoError(t, err)
	second, err := builder.Grid(3, 3)
	require.NoError(t, err)

	assert.Equal(t, collect(first.Edges()), collect(second.Edges()))
}
