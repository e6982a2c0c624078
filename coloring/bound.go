// SPDX-License-Identifier: MIT
// Package: chroma/coloring
//
// bound.go — color-budget estimation.
//
// Contract:
//   - EdgeBound is the Vizing upper bound Δ+1: a proper edge coloring of a
//     simple graph never needs more colors, so a complete search given
//     EdgeBound(g) colors must succeed.
//   - Vertex mode carries no structural bound by design: the caller picks a
//     fixed budget and the search reports infeasibility rather than
//     auto-growing it.

package coloring

import "github.com/katalvlaran/chroma/core"

// EdgeBound returns Δ+1, where Δ is the maximum total degree of g —
// Vizing's upper bound on the colors a proper edge coloring requires.
//
// Complexity: O(1) (the degree table is precomputed at graph build).
func EdgeBound(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return g.MaxDegree() + 1, nil
}

// Budget returns the color budget the edge-coloring flow runs with:
// the larger of the structural bound and the palette size. The extra
// colors beyond the bound are never needed by a correct search, but a
// palette larger than the bound widens the budget it is offered.
func Budget(bound, paletteSize int) int {
	if paletteSize > bound {
		return paletteSize
	}

	return bound
}
