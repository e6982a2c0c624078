package core_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// ExampleNewGraph builds the 4-cycle 0-1-2-3-0 from its adjacency matrix
// and queries its basic structure.
//
//	0───1
//	│   │
//	3───2
func ExampleNewGraph() {
	g, err := core.NewGraph([][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	nbs, _ := g.Neighbors(0)
	fmt.Println("neighbors of 0:", nbs)

	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of 0: [1 3]
}

// ExampleGraph_ToUndirected collapses a directed arc pair into one edge.
func ExampleGraph_ToUndirected() {
	g, _ := core.NewGraph([][]int{
		{0, 1},
		{1, 0},
	}, core.WithDirected(true))

	fmt.Println("directed edges:", g.EdgeCount())
	fmt.Println("undirected edges:", g.ToUndirected().EdgeCount())

	// Output:
	// directed edges: 2
	// undirected edges: 1
}
