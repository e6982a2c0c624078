package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

// mustGraph builds an undirected Graph from a generator result, halting
// the test on any error.
func mustGraph(t *testing.T, matrix [][]int, err error) *core.Graph {
	t.Helper()
	require.NoError(t, err)
	g, err := core.NewGraph(matrix)
	require.NoError(t, err)

	return g
}

// completeGraph builds K_n.
func completeGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	matrix, err := builder.Complete(n)

	return mustGraph(t, matrix, err)
}

// cycleGraph builds the n-ring C_n.
func cycleGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	matrix, err := builder.Cycle(n)

	return mustGraph(t, matrix, err)
}

// pathGraph builds the n-chain P_n.
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	matrix, err := builder.Path(n)

	return mustGraph(t, matrix, err)
}

// starGraph builds a hub with the given number of leaves.
func starGraph(t *testing.T, leaves int) *core.Graph {
	t.Helper()
	matrix, err := builder.Star(leaves)

	return mustGraph(t, matrix, err)
}

// randomGraph builds a seeded random simple graph.
func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	matrix, err := builder.RandomSimple(n, p, seed)

	return mustGraph(t, matrix, err)
}

func TestVertices_NilGraph(t *testing.T) {
	_, err := coloring.Vertices(nil, 3)
	assert.ErrorIs(t, err, coloring.ErrGraphNil)
}

func TestEdges_NilGraph(t *testing.T) {
	_, err := coloring.Edges(nil, 3)
	assert.ErrorIs(t, err, coloring.ErrGraphNil)
}

func TestVertices_K4(t *testing.T) {
	g := completeGraph(t, 4)

	// K4 is not 3-colorable; the assignment must come back fully reset.
	res, err := coloring.Vertices(g, 3)
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, 3, res.NumColors)
	assert.Equal(t, []int{coloring.Unassigned, coloring.Unassigned, coloring.Unassigned, coloring.Unassigned}, res.Assignment)

	// Four colors suffice and every vertex gets a distinct one.
	res, err = coloring.Vertices(g, 4)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Assignment)
	assert.NoError(t, coloring.Verify(g, coloring.VertexMode, res.Assignment, 4))
}

func TestVertices_FourCycle_Alternates(t *testing.T) {
	g := cycleGraph(t, 4)

	res, err := coloring.Vertices(g, 2)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 1, 0, 1}, res.Assignment)
}

func TestVertices_OddCycle(t *testing.T) {
	g := cycleGraph(t, 5)

	// An odd cycle is not bipartite: two colors fail.
	res, err := coloring.Vertices(g, 2)
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, 2, res.NumColors)

	res, err = coloring.Vertices(g, 3)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.NoError(t, coloring.Verify(g, coloring.VertexMode, res.Assignment, 3))
}

func TestEdges_StarAtStructuralMinimum(t *testing.T) {
	// Three edges meet at the hub, so they must be pairwise distinct:
	// the structural minimum is 3, the Vizing bound offers 4.
	g := starGraph(t, 3)

	bound, err := coloring.EdgeBound(g)
	require.NoError(t, err)
	assert.Equal(t, 4, bound)

	res, err := coloring.Edges(g, bound)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.NoError(t, coloring.Verify(g, coloring.EdgeMode, res.Assignment, bound))

	res, err = coloring.Edges(g, 3)
	require.NoError(t, err)
	assert.True(t, res.Feasible, "the structural minimum itself must succeed")

	res, err = coloring.Edges(g, 2)
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, 2, res.NumColors)
}

func TestVertices_ZeroColors(t *testing.T) {
	g := pathGraph(t, 1)

	res, err := coloring.Vertices(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Feasible, "zero colors cannot cover one vertex")

	res, err = coloring.Vertices(g, -2)
	require.NoError(t, err)
	assert.False(t, res.Feasible)
}

func TestVertices_EdgelessGraphNeedsOneColor(t *testing.T) {
	g, err := core.NewGraph([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	res, err := coloring.Vertices(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 0, 0}, res.Assignment)
}

func TestEdges_EmptyGraphTriviallyFeasible(t *testing.T) {
	g, err := core.NewGraph(nil)
	require.NoError(t, err)

	// No items to color: feasible even with a zero budget.
	res, err := coloring.Edges(g, 0)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Empty(t, res.Assignment)
}

func TestVertices_SelfLoopIgnored(t *testing.T) {
	// A self-loop never conflicts with its own endpoint.
	g, err := core.NewGraph([][]int{{1}})
	require.NoError(t, err)

	res, err := coloring.Vertices(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0}, res.Assignment)
}

func TestEdges_SelfLoopNotCheckedAgainstItself(t *testing.T) {
	g, err := core.NewGraph([][]int{{1}})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	res, err := coloring.Edges(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0}, res.Assignment)
}

func TestVertices_Deterministic(t *testing.T) {
	g := randomGraph(t, 10, 0.4, 3)

	first, err := coloring.Vertices(g, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := coloring.Vertices(g, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical inputs must yield the identical result")
	}
}

func TestEdges_Deterministic(t *testing.T) {
	g := randomGraph(t, 8, 0.5, 9)
	bound, err := coloring.EdgeBound(g)
	require.NoError(t, err)

	first, err := coloring.Edges(g, bound)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := coloring.Edges(g, bound)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestVertices_ColorBudgetRespected(t *testing.T) {
	g := randomGraph(t, 9, 0.35, 11)

	res, err := coloring.Vertices(g, 5)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	for _, c := range res.Assignment {
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 5)
	}
}

func TestVertices_DirectedGraphConstrainsBothDirections(t *testing.T) {
	// A single arc 0→1 still forbids equal colors at both endpoints.
	g, err := core.NewGraph([][]int{
		{0, 1},
		{0, 0},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := coloring.Vertices(g, 1)
	require.NoError(t, err)
	assert.False(t, res.Feasible)

	res, err = coloring.Vertices(g, 2)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, []int{0, 1}, res.Assignment)
}

func TestEdges_DirectedArcPairIsIncident(t *testing.T) {
	// 0→1 and 1→0 share both endpoints, so they must differ.
	g, err := core.NewGraph([][]int{
		{0, 1},
		{1, 0},
	}, core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	res, err := coloring.Edges(g, 1)
	require.NoError(t, err)
	assert.False(t, res.Feasible)

	res, err = coloring.Edges(g, 2)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.NotEqual(t, res.Assignment[0], res.Assignment[1])
}
