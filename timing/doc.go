// Package timing measures the average wall-clock latency of the coloring
// search on one fixed input.
//
// What:
//
//   - MeasureVertices / MeasureEdges: run the corresponding search from
//     chroma/coloring a configurable number of trials (default 1000)
//     against the identical (graph, numColors) input and report the
//     arithmetic-mean duration.
//
// Why:
//   - The backtracking search is deterministic, so repeated trials on one
//     input characterize its best/average cost there — a quick regression
//     signal when matrices or heuristics change. This is not a statistical
//     sampler over random inputs.
//
// Every trial runs with a freshly zeroed assignment owned by that trial;
// no state leaks between trials, and the Graph is never mutated — the
// harness has no side effect beyond its Report.
//
// The measurement runs to completion on the calling goroutine with no
// suspension points and no cancellation; callers wanting responsiveness
// on pathological budgets must impose their own timeout boundary.
//
// Errors:
//
//   - coloring.ErrGraphNil  forwarded from the search
//   - ErrInvalidTrials      trial count below 1
package timing
