// Package chroma is an in-memory toolkit for proper graph coloring —
// vertex colorings, edge colorings, and the timing harness to measure them.
//
// 🚀 What is chroma?
//
//	A small, deterministic library that brings together:
//		• Core primitives: immutable adjacency-matrix graphs, directed & undirected
//		• Coloring search: complete backtracking for vertex and edge colorings
//		• Bounds: Vizing's Δ+1 upper bound for edge colorings
//		• Ordering heuristics: degree-sum edge ordering, swappable providers
//		• Timing: repeated-trial wall-clock measurement of the search
//		• Palettes: integer color ids mapped to display labels
//
// ✨ Why choose chroma?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical colorings
//   - Pure Go core – no cgo, no hidden deps in the library packages
//   - Extensible – swap the visitation-order heuristic without touching the search
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/     — adjacency-matrix Graph: construction, validation, queries
//	coloring/ — backtracking vertex/edge coloring, bounds, order heuristics
//	timing/   — repeated-trial average-latency measurement
//	builder/  — adjacency-matrix generators (complete, cycle, star, random)
//	palette/  — color-id → display-label mapping
//	adapter/  — the boundary contract with presentation layers
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle: two colors suffice, alternating around the ring.
//
// Rendering, window layout and plotting are deliberately out of scope: the
// engine returns data (an assignment or an infeasibility report) and leaves
// presentation to the adapter side.
//
//	go get github.com/katalvlaran/chroma
package chroma
