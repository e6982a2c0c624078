// SPDX-License-Identifier: MIT
// Package: chroma/coloring
//
// coloring.go — the backtracking engine and its two instantiations.
//
// One algorithm, two constraint shapes. Both Vertices and Edges reduce
// their constraint relation to a per-item conflict list (vertex → adjacent
// vertices, edge → incident edges) and hand it to the same depth-first
// backtracking loop. The loop keeps an explicit stack of
// (position, next-color-to-try) frames, so memory is O(items) and no
// recursion-depth limit applies on large graphs.
//
// Contract:
//   - Colors are tried ascending 0..numColors-1; an id is safe when no
//     already-assigned conflicting item holds it.
//   - numColors ≤ 0 is infeasible for any graph with ≥ 1 item; zero items
//     are trivially feasible with any budget.
//   - A self-loop never conflicts with itself: conflict lists exclude the
//     item they belong to.
//   - On infeasibility the returned assignment is entirely Unassigned.
//
// Determinism:
//   - Fixed (graph, numColors, order) always yields the identical Result.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Vertices searches for a proper vertex coloring of g with color ids in
// [0, numColors): vertices sharing an edge receive distinct ids.
// The default visitation order is plain vertex-index order 0..N-1.
//
// Infeasibility is reported in the Result, not as an error; errors are
// reserved for a nil graph and malformed visitation orders.
func Vertices(g *core.Graph, numColors int, opts ...Option) (Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return Result{}, ErrGraphNil
	}

	// 2. Resolve the visitation order (explicit > provider > default).
	order, err := resolveOrder(g, VertexIndexOrder, g.VertexCount(), opts)
	if err != nil {
		return Result{}, err
	}

	// 3. Conflict lists: adjacent vertices, the vertex itself excluded so
	//    a self-loop never constrains its own endpoint.
	n := g.VertexCount()
	conflicts := make([][]int, n)
	var nbs []int
	for v := 0; v < n; v++ {
		nbs, _ = g.Neighbors(v) // v is always in range here
		list := make([]int, 0, len(nbs))
		for _, nb := range nbs {
			if nb != v {
				list = append(list, nb)
			}
		}
		conflicts[v] = list
	}

	// 4. Run the shared backtracking loop.
	return backtrack(conflicts, order, numColors), nil
}

// Edges searches for a proper edge coloring of g with color ids in
// [0, numColors): edges sharing an endpoint receive distinct ids.
// The default visitation order is DegreeSumOrder.
//
// The incidence check runs in O(deg(u)+deg(v)) per candidate via the
// Graph's precomputed incidence table — observably equivalent to scanning
// every edge, only faster.
func Edges(g *core.Graph, numColors int, opts ...Option) (Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return Result{}, ErrGraphNil
	}

	// 2. Resolve the visitation order (explicit > provider > default).
	order, err := resolveOrder(g, DegreeSumOrder, g.EdgeCount(), opts)
	if err != nil {
		return Result{}, err
	}

	// 3. Conflict lists: every edge incident to either endpoint, the edge
	//    itself excluded.
	edges := g.Edges()
	conflicts := make([][]int, len(edges))
	var incU, incV []int
	for _, e := range edges {
		incU, _ = g.IncidentEdges(e.U) // endpoints of an existing edge are in range
		incV, _ = g.IncidentEdges(e.V)
		list := make([]int, 0, len(incU)+len(incV))
		for _, other := range incU {
			if other != e.Index {
				list = append(list, other)
			}
		}
		if e.V != e.U {
			for _, other := range incV {
				if other != e.Index {
					list = append(list, other)
				}
			}
		}
		conflicts[e.Index] = list
	}

	// 4. Run the shared backtracking loop.
	return backtrack(conflicts, order, numColors), nil
}

// resolveOrder applies opts and returns the visitation order to walk:
// an explicit Order wins, then a custom OrderFn, then the mode default.
// Explicit orders are checked to be permutations of 0..itemCount-1.
func resolveOrder(g *core.Graph, fallback OrderFunc, itemCount int, opts []Option) ([]int, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch {
	case o.Order != nil:
		if !validOrder(o.Order, itemCount) {
			return nil, fmt.Errorf("order %v over %d items: %w", o.Order, itemCount, ErrOrderMismatch)
		}
		order := make([]int, len(o.Order))
		copy(order, o.Order)

		return order, nil
	case o.OrderFn != nil:
		order := o.OrderFn(g)
		if !validOrder(order, itemCount) {
			return nil, fmt.Errorf("provider order over %d items: %w", itemCount, ErrOrderMismatch)
		}

		return order, nil
	default:
		return fallback(g), nil
	}
}

// backtrack is the complete depth-first search over color assignments.
// conflicts[item] lists the items that must not share item's color;
// order is a permutation of the item indexes.
//
// Frames are explicit: next[pos] remembers the next color id frame pos
// will try, so unwinding is a pointer move instead of a recursive return.
func backtrack(conflicts [][]int, order []int, numColors int) Result {
	// 1. Fresh assignment, all entries unassigned, owned by this call.
	assignment := make([]int, len(conflicts))
	for i := range assignment {
		assignment[i] = Unassigned
	}

	next := make([]int, len(order))
	pos := 0
	var item, c int
	for pos < len(order) {
		item = order[pos]

		// 2. Try color ids ascending from where this frame left off.
		c = next[pos]
		for c < numColors && !safe(conflicts[item], assignment, c) {
			c++
		}

		// 3. Safe id found: assign, remember the resume point, advance.
		if c < numColors {
			assignment[item] = c
			next[pos] = c + 1
			pos++
			continue
		}

		// 4. Exhausted: reset this frame and backtrack to the previous
		//    item, unassigning it so its next candidate is tried cleanly.
		next[pos] = 0
		pos--
		if pos < 0 {
			// Every frame was unwound, so the assignment is already
			// entirely Unassigned — the no-partial-result guarantee.
			return Result{Feasible: false, NumColors: numColors, Assignment: assignment}
		}
		assignment[order[pos]] = Unassigned
	}

	// 5. All items assigned and globally consistent.
	return Result{Feasible: true, NumColors: numColors, Assignment: assignment}
}

// safe reports whether color c collides with any already-assigned item
// in the conflict list.
func safe(conflicting []int, assignment []int, c int) bool {
	for _, other := range conflicting {
		if assignment[other] == c {
			return false
		}
	}

	return true
}
