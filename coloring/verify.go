// SPDX-License-Identifier: MIT
// Package: chroma/coloring
//
// verify.go — independent re-validation of finished assignments.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Verify checks that assignment is a complete, proper coloring of g's
// items under mode with every color id in [0, numColors). It is pure:
// neither the graph nor the assignment is touched.
//
// Verifying a Result returned feasible by Vertices or Edges always
// passes; Verify exists so callers (and tests) can prove that without
// trusting the search.
//
// Complexity: O(V+E) vertex mode, O(Σ deg) edge mode.
func Verify(g *core.Graph, mode Mode, assignment []int, numColors int) error {
	if g == nil {
		return ErrGraphNil
	}

	// 1. Length must match the item count of the mode.
	itemCount := g.VertexCount()
	if mode == EdgeMode {
		itemCount = g.EdgeCount()
	}
	if len(assignment) != itemCount {
		return fmt.Errorf("%s: got %d entries, want %d: %w", mode, len(assignment), itemCount, ErrAssignment)
	}

	// 2. Every entry inside the color budget — no Unassigned leftovers.
	for item, c := range assignment {
		if c < 0 || c >= numColors {
			return fmt.Errorf("%s: item %d has color %d outside [0,%d): %w", mode, item, c, numColors, ErrAssignment)
		}
	}

	// 3. The constraint relation itself.
	if mode == VertexMode {
		for _, e := range g.Edges() {
			if e.U != e.V && assignment[e.U] == assignment[e.V] {
				return fmt.Errorf("vertices %d and %d share edge %d and color %d: %w",
					e.U, e.V, e.Index, assignment[e.U], ErrAssignment)
			}
		}

		return nil
	}

	// Edge mode: at every vertex, incident edges must be pairwise distinct.
	for v := 0; v < g.VertexCount(); v++ {
		inc, _ := g.IncidentEdges(v) // v is in range by construction
		seen := make(map[int]int, len(inc))
		for _, e := range inc {
			if prev, dup := seen[assignment[e]]; dup {
				return fmt.Errorf("edges %d and %d meet at vertex %d with color %d: %w",
					prev, e, v, assignment[e], ErrAssignment)
			}
			seen[assignment[e]] = e
		}
	}

	return nil
}
