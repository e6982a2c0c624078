// SPDX-License-Identifier: MIT
// Package: chroma/coloring
//
// order.go — visitation-order providers for the coloring search.
//
// Contract:
//   - Every provider returns a permutation of the item indexes of its kind
//     (vertices or edges) and never mutates the Graph.
//   - Orders are recomputed per invocation; nothing is cached or persisted.
//   - A provider changes which coloring the search finds and how much
//     backtracking occurs — never feasibility (the search is complete).
//
// Determinism:
//   - DegreeSumOrder breaks degree-sum ties by ascending edge index, so a
//     fixed Graph always yields the identical order.

package coloring

import (
	"sort"

	"github.com/katalvlaran/chroma/core"
)

// IndexOrder returns the identity permutation 0..n-1.
func IndexOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// VertexIndexOrder visits vertices in plain index order 0..N-1,
// the default for Vertices.
func VertexIndexOrder(g *core.Graph) []int {
	return IndexOrder(g.VertexCount())
}

// EdgeIndexOrder visits edges in plain index order 0..E-1.
func EdgeIndexOrder(g *core.Graph) []int {
	return IndexOrder(g.EdgeCount())
}

// DegreeSumOrder visits edges by descending sum of endpoint degrees,
// ties broken by ascending edge index. Busy regions of the graph are
// colored first, which tends to fail fast and trim backtracking.
// The default for Edges.
//
// Complexity: O(E log E).
func DegreeSumOrder(g *core.Graph) []int {
	edges := g.Edges()
	sums := make([]int, len(edges))
	order := make([]int, len(edges))
	for i, e := range edges {
		// Degree never fails for an endpoint of an existing edge.
		du, _ := g.Degree(e.U)
		dv, _ := g.Degree(e.V)
		sums[i] = du + dv
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool {
		if sums[order[a]] != sums[order[b]] {
			return sums[order[a]] > sums[order[b]]
		}

		return order[a] < order[b]
	})

	return order
}

// validOrder reports whether order is a permutation of 0..itemCount-1.
func validOrder(order []int, itemCount int) bool {
	if len(order) != itemCount {
		return false
	}
	seen := make([]bool, itemCount)
	for _, idx := range order {
		if idx < 0 || idx >= itemCount || seen[idx] {
			return false
		}
		seen[idx] = true
	}

	return true
}
