package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// TestGraph_Scenario covers the canonical A/B/C chain: neighbor
// enumeration, edge existence, and safe lookups on absent pairs.
func TestGraph_Scenario(t *testing.T) {
	g := chainABC(t, false)

	assert.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 2, g.NumberOfEdges())

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, collect(nbs))

	assert.False(t, g.ContainsEdge("A", "C"))
	val, ok := g.TryEdgeValue("A", "C")
	assert.False(t, ok)
	assert.Zero(t, val)

	val, err = g.EdgeValue("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1, val)

	_, err = g.EdgeValue("A", "C")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_RegistryRoundTrip verifies indexOf(labelOf(i)) == i and
// labelOf(indexOf(n)) == n across the whole domain, plus the sentinel
// failures outside it.
func TestGraph_RegistryRoundTrip(t *testing.T) {
	g := chainABC(t, false)

	for i := 0; i < g.NumberOfNodes(); i++ {
		label, err := g.LabelOf(i)
		require.NoError(t, err)
		back, err := g.IndexOf(label)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}
	for _, label := range []string{"A", "B", "C"} {
		i, err := g.IndexOf(label)
		require.NoError(t, err)
		back, err := g.LabelOf(i)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}

	_, err := g.LabelOf(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.LabelOf(3)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.IndexOf("Z")
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
}

// TestGraph_UnknownLabel verifies lookups through an unregistered label.
func TestGraph_UnknownLabel(t *testing.T) {
	g := chainABC(t, false)

	_, err := g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
	_, err = g.OutEdges("Z")
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
	_, err = g.EdgeValue("Z", "A")
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
	assert.False(t, g.ContainsEdge("Z", "A"))
	_, ok := g.TryEdgeValue("Z", "A")
	assert.False(t, ok)
}

// TestGraph_NeighborsOutEdgesConsistent verifies the To sequence of
// OutEdges equals the Neighbors sequence for every node.
func TestGraph_NeighborsOutEdgesConsistent(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("A", "D", 2))
	require.NoError(t, b.AddEdge("A", "C", 3))
	require.NoError(t, b.AddEdge("B", "C", 4))
	g, err := b.Build()
	require.NoError(t, err)

	for label := range g.Nodes() {
		nbs, nerr := g.Neighbors(label)
		require.NoError(t, nerr)
		outs, oerr := g.OutEdges(label)
		require.NoError(t, oerr)

		var tos []string
		for e := range outs {
			assert.Equal(t, label, e.From)
			tos = append(tos, e.To)
		}
		assert.Equal(t, collect(nbs), tos)
	}

	// Insertion order must hold: A's edges were added B, D, C.
	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "C"}, collect(nbs))
}

// TestGraph_CountsMatchEnumeration verifies count(Nodes)==NumberOfNodes
// and count(Edges)==NumberOfEdges.
func TestGraph_CountsMatchEnumeration(t *testing.T) {
	g := chainABC(t, true)

	assert.Len(t, collect(g.Nodes()), g.NumberOfNodes())
	assert.Len(t, collect(g.Edges()), g.NumberOfEdges())
}

// TestGraph_InEdgesCapability verifies Parents/InEdges succeed only when
// the graph was built WithInEdges, and fail with ErrNotSupported otherwise.
func TestGraph_InEdgesCapability(t *testing.T) {
	bare := chainABC(t, false)
	assert.False(t, bare.HasInEdges())
	_, err := bare.Parents("B")
	assert.ErrorIs(t, err, core.ErrNotSupported)
	_, err = bare.InEdges("B")
	assert.ErrorIs(t, err, core.ErrNotSupported)

	rich := chainABC(t, true)
	assert.True(t, rich.HasInEdges())
	parents, err := rich.Parents("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, collect(parents))

	ins, err := rich.InEdges("C")
	require.NoError(t, err)
	got := collect(ins)
	require.Len(t, got, 1)
	assert.Equal(t, core.LabelEdge[string, int]{From: "B", To: "C", Value: 2}, got[0])

	// Unknown label still reports the label failure, not the capability.
	_, err = rich.Parents("Z")
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
}

// TestGraph_InEdgesTransposeRelation verifies Parents/InEdges form the
// exact transpose relation of Neighbors/OutEdges across the whole graph.
func TestGraph_InEdgesTransposeRelation(t *testing.T) {
	b := core.NewBuilder[string, int](core.WithInEdges())
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("A", "C", 2))
	require.NoError(t, b.AddEdge("B", "C", 3))
	require.NoError(t, b.AddEdge("C", "D", 4))
	g, err := b.Build()
	require.NoError(t, err)

	type pair struct{ from, to string }
	forward := make(map[pair]int)
	for e := range g.Edges() {
		forward[pair{e.From, e.To}] = e.Value
	}
	backward := make(map[pair]int)
	for label := range g.Nodes() {
		ins, ierr := g.InEdges(label)
		require.NoError(t, ierr)
		for e := range ins {
			backward[pair{e.From, e.To}] = e.Value
		}
	}
	assert.Equal(t, forward, backward)
}

// TestBuilder_DuplicateEdge verifies duplicate (from,to) pairs are
// rejected at construction time.
func TestBuilder_DuplicateEdge(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 1))
	assert.ErrorIs(t, b.AddEdge("A", "B", 9), core.ErrDuplicateEdge)
	// Reverse direction is a distinct ordered pair.
	assert.NoError(t, b.AddEdge("B", "A", 9))
}

// TestBuilder_Sealed verifies every builder entry point fails after Build.
func TestBuilder_Sealed(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 1))
	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.AddNode("X")
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
	assert.ErrorIs(t, b.AddEdge("X", "Y", 0), core.ErrBuilderSealed)
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
}

// TestBuilder_IsolatedNodes verifies AddNode idempotence and that
// isolated nodes take part in every query.
func TestBuilder_IsolatedNodes(t *testing.T) {
	b := core.NewBuilder[string, int](core.WithNodeHint(4))
	i, err := b.AddNode("solo")
	require.NoError(t, err)
	again, err := b.AddNode("solo")
	require.NoError(t, err)
	assert.Equal(t, i, again)
	require.NoError(t, b.AddEdge("A", "B", 1))

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumberOfNodes())
	nbs, err := g.Neighbors("solo")
	require.NoError(t, err)
	assert.Empty(t, collect(nbs))
}

// TestGraph_IndexedFacade verifies the index façade shares the store:
// same counts, label-translated answers match, indices line up with the
// registry.
func TestGraph_IndexedFacade(t *testing.T) {
	g := chainABC(t, false)
	idx := g.Indexed()

	assert.Equal(t, g.NumberOfNodes(), idx.NumberOfNodes())
	assert.Equal(t, g.NumberOfEdges(), idx.NumberOfEdges())

	a, err := g.IndexOf("A")
	require.NoError(t, err)
	bIdx, err := g.IndexOf("B")
	require.NoError(t, err)
	assert.True(t, idx.ContainsEdge(a, bIdx))

	val, err := idx.EdgeValue(a, bIdx)
	require.NoError(t, err)
	assert.Equal(t, 1, val)
}

// TestGraph_CapabilityInterfaces verifies concrete kinds satisfy the
// capability interfaces callers probe for.
func TestGraph_CapabilityInterfaces(t *testing.T) {
	g := chainABC(t, true)

	var view core.View[string, int] = g
	assert.Equal(t, 3, view.NumberOfNodes())

	_, ok := view.(core.Predecessors[string, int])
	assert.True(t, ok)
	_, ok = view.(core.Sortable)
	assert.True(t, ok)
}
