// Package adapter is the boundary contract between the coloring engine
// and a presentation layer (GUI, plotter, CLI).
//
// What:
//
//   - ColorRequest: everything the presentation side supplies — the
//     adjacency matrix, the directed flag, the palette, the vertex-mode
//     color budget, and an optional trial count for timing.
//   - ColorVertices / ColorEdges: the full engine flow for one request:
//     validate and build the Graph, derive the color budget (edge mode
//     computes Budget(EdgeBound, palette size)), optionally time the
//     search, run it, and map the assignment to display labels.
//   - Outcome: what flows back — the assignment with labels on success,
//     or the infeasibility report carrying the budget that failed.
//   - Renderer: the stub interface the excluded plotting layer implements;
//     Discard is the no-op implementation.
//
// Why:
//   - Strict separation: the engine returns data, the adapter side draws.
//     Nothing in core, coloring, or timing knows presentation exists.
//
// Infeasibility surfaces in the Outcome, never as an error: errors are
// reserved for malformed input (the core matrix sentinels pass through
// verbatim, offending cell included).
//
// Each request builds a fresh Graph — the engine holds no graph state
// between requests; the matrix is owned by the presentation side.
package adapter
