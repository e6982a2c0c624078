// Package coloring implements complete backtracking search for proper
// vertex and edge colorings of a core.Graph, together with the Vizing
// bound and the visitation-order heuristics that accelerate the search.
//
// What:
//
//   - Vertices(g, numColors, opts...): assigns a color id in
//     [0, numColors) to every vertex so that no two vertices sharing an
//     edge receive the same id.
//   - Edges(g, numColors, opts...): assigns a color id to every edge so
//     that no two edges sharing an endpoint (incident edges) receive the
//     same id.
//   - EdgeBound(g): Δ+1, Vizing's upper bound on the colors an edge
//     coloring of a simple graph can require.
//   - Budget(bound, paletteSize): the color budget the edge flow runs
//     with — the larger of the structural bound and the palette size.
//   - OrderFunc providers: IndexOrder (plain 0..n-1) and DegreeSumOrder
//     (edges by descending endpoint-degree sum). The order changes which
//     coloring is found and how much backtracking occurs, never whether a
//     coloring exists: the search is complete.
//   - Verify(g, mode, assignment, numColors): re-validates a finished
//     assignment against the constraint relation and color budget.
//
// Why:
//   - Proper colorings drive scheduling, register allocation, frequency
//     assignment — anywhere "adjacent things must differ".
//   - A complete backtracking search is the simplest engine that reports
//     infeasibility exactly: if it fails with k colors, no k-coloring exists.
//
// The search walks items (vertices or edges) in a supplied visitation
// order, trying color ids ascending and backtracking on exhaustion. The
// backtrack stack is explicit — frames of (position, next color to try) —
// so search depth is bounded by item count, not by goroutine stack limits.
//
// Infeasibility is a value, not an error: Result.Feasible == false with
// the failing NumColors, and the assignment fully reset to Unassigned.
// No partially colored state ever escapes.
//
// Determinism: identical (graph, numColors, order) inputs yield the
// identical Result on every call. There is no randomness anywhere.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrOrderMismatch  supplied order is not a permutation of the item indexes
//   - ErrAssignment     (Verify only) assignment violates length, budget,
//     or the constraint relation
//
// Complexity:
//
//   - Safety check: O(deg(v)) per vertex candidate, O(deg(u)+deg(v)) per
//     edge candidate via the precomputed incidence table.
//   - Full search: exponential in the worst case (the problem is NP-hard);
//     the degree-sum heuristic only trims backtracking on typical inputs.
//   - Memory: O(n) for the assignment and the frame stack.
package coloring
