// Package builder generates adjacency matrices for well-known graph
// families, ready to feed core.NewGraph.
//
// What:
//
//   - Complete(n): K_n, every pair adjacent.
//   - Cycle(n): C_n, the n-ring.
//   - Path(n): P_n, the n-chain.
//   - Star(leaves): one hub adjacent to every leaf.
//   - RandomSimple(n, p, seed): Erdős–Rényi-style simple graph — each
//     unordered pair included independently with probability p, symmetric,
//     loop-free, deterministic for a fixed seed.
//
// Why:
//   - Coloring tests and benchmarks need reproducible topologies: the
//     complete graphs pin chromatic numbers, odd cycles pin the 3-color
//     boundary, stars pin edge-coloring incidence, and seeded random
//     graphs drive the Vizing-bound property test.
//
// All constructors return plain [][]int matrices with entries in {0,1}
// and a zero diagonal, and only sentinel errors — never panics.
//
// Errors:
//
//   - ErrTooFewVertices     size parameter below the family's minimum
//   - ErrInvalidProbability p outside [0,1]
//
// Determinism:
//   - Fixed parameters (and seed, where applicable) always produce the
//     identical matrix; pair-trial order is row-major with i<j.
package builder
