package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/adapter"
	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/palette"
)

// sixMatrix is the interactive default: six vertices, nine edges.
func sixMatrix() [][]int {
	return [][]int{
		{0, 1, 1, 0, 0, 1},
		{1, 0, 1, 1, 0, 0},
		{1, 1, 0, 1, 0, 0},
		{0, 1, 1, 0, 1, 1},
		{0, 0, 0, 1, 0, 1},
		{1, 0, 0, 1, 1, 0},
	}
}

func TestColorVertices_FeasibleWithLabels(t *testing.T) {
	out, err := adapter.ColorVertices(adapter.ColorRequest{
		Matrix:  sixMatrix(),
		Palette: palette.DefaultVertex,
	})
	require.NoError(t, err)

	assert.Equal(t, coloring.VertexMode, out.Mode)
	assert.True(t, out.Feasible)
	assert.Equal(t, 4, out.NumColors, "budget defaults to the palette size")
	require.Len(t, out.Labels, 6)
	for _, label := range out.Labels {
		assert.Contains(t, palette.DefaultVertex, label)
	}

	g, err := core.NewGraph(sixMatrix())
	require.NoError(t, err)
	assert.NoError(t, coloring.Verify(g, coloring.VertexMode, out.Assignment, out.NumColors))
}

func TestColorVertices_InfeasibleCarriesBudget(t *testing.T) {
	matrix, err := builder.Complete(4)
	require.NoError(t, err)

	out, err := adapter.ColorVertices(adapter.ColorRequest{
		Matrix:    matrix,
		Palette:   palette.DefaultVertex,
		NumColors: 3,
	})
	require.NoError(t, err, "infeasibility is an outcome, not an error")

	assert.False(t, out.Feasible)
	assert.Equal(t, 3, out.NumColors)
	assert.Empty(t, out.Labels)
	for _, c := range out.Assignment {
		assert.Equal(t, coloring.Unassigned, c)
	}
}

func TestColorVertices_InvalidMatrixSurfacesSentinel(t *testing.T) {
	_, err := adapter.ColorVertices(adapter.ColorRequest{
		Matrix: [][]int{
			{0, 2},
			{1, 0},
		},
		Palette: palette.DefaultVertex,
	})
	require.ErrorIs(t, err, core.ErrMatrixValue)
	assert.Contains(t, err.Error(), "(0,1)=2")
}

func TestColorEdges_BudgetIsBoundFlooredByPalette(t *testing.T) {
	// Star hub degree 3 → Vizing bound 4; the ten-label palette widens
	// the budget to 10, per Budget(bound, paletteSize).
	matrix, err := builder.Star(3)
	require.NoError(t, err)

	out, err := adapter.ColorEdges(adapter.ColorRequest{
		Matrix:  matrix,
		Palette: palette.DefaultEdge,
	})
	require.NoError(t, err)

	assert.Equal(t, coloring.EdgeMode, out.Mode)
	assert.True(t, out.Feasible)
	assert.Equal(t, 10, out.NumColors)
	require.Len(t, out.Labels, 3)

	g, err := core.NewGraph(matrix)
	require.NoError(t, err)
	assert.NoError(t, coloring.Verify(g, coloring.EdgeMode, out.Assignment, out.NumColors))
}

func TestColorEdges_SmallPaletteKeepsStructuralBound(t *testing.T) {
	matrix, err := builder.Star(3)
	require.NoError(t, err)

	out, err := adapter.ColorEdges(adapter.ColorRequest{
		Matrix:  matrix,
		Palette: palette.Palette{"red", "green"},
	})
	require.NoError(t, err)

	// Bound 4 beats a two-label palette; labels wrap modulo 2.
	assert.Equal(t, 4, out.NumColors)
	assert.True(t, out.Feasible)
	require.Len(t, out.Labels, 3)
}

func TestColorVertices_WithTiming(t *testing.T) {
	matrix, err := builder.Cycle(4)
	require.NoError(t, err)

	out, err := adapter.ColorVertices(adapter.ColorRequest{
		Matrix:    matrix,
		Palette:   palette.DefaultVertex,
		NumColors: 2,
		Trials:    10,
	})
	require.NoError(t, err)
	assert.True(t, out.Feasible)
	assert.GreaterOrEqual(t, out.AvgSeconds, 0.0)
}

func TestColorVertices_DirectedFlag(t *testing.T) {
	// One arc, directed: two colors needed at its endpoints either way.
	out, err := adapter.ColorVertices(adapter.ColorRequest{
		Matrix: [][]int{
			{0, 1},
			{0, 0},
		},
		Directed:  true,
		NumColors: 2,
		Palette:   palette.DefaultVertex,
	})
	require.NoError(t, err)
	assert.True(t, out.Feasible)
	assert.NotEqual(t, out.Assignment[0], out.Assignment[1])
}

func TestDiscardRenderer(t *testing.T) {
	assert.NoError(t, adapter.Discard.Render(adapter.Outcome{}))
}
