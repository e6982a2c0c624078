// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// builder.go — adjacency-matrix constructors for standard graph families.

package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for the builder package. Branch with errors.Is;
// constructors wrap them with the offending parameter.
var (
	// ErrTooFewVertices indicates a size parameter below the minimum the
	// requested family is defined for.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)

// Family minima and the probability domain (no magic numbers).
const (
	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 1
	minStarLeaves    = 1
	probMin          = 0.0
	probMax          = 1.0

	// defaultSeed is the fixed seed used when callers pass seed == 0,
	// keeping the zero value reproducible.
	defaultSeed int64 = 1
)

// zeros allocates an n×n all-zero matrix.
func zeros(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	return m
}

// setPair sets the symmetric pair (i,j) and (j,i).
func setPair(m [][]int, i, j int) {
	m[i][j] = 1
	m[j][i] = 1
}

// Complete returns the adjacency matrix of the complete graph K_n.
func Complete(n int) ([][]int, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	m := zeros(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			setPair(m, i, j)
		}
	}

	return m, nil
}

// Cycle returns the adjacency matrix of the n-vertex cycle C_n.
func Cycle(n int) ([][]int, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	m := zeros(n)
	for i := 0; i < n; i++ {
		setPair(m, i, (i+1)%n)
	}

	return m, nil
}

// Path returns the adjacency matrix of the n-vertex path P_n.
// P_1 is a single isolated vertex.
func Path(n int) ([][]int, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	m := zeros(n)
	for i := 0; i+1 < n; i++ {
		setPair(m, i, i+1)
	}

	return m, nil
}

// Star returns the adjacency matrix of a star: vertex 0 is the hub,
// vertices 1..leaves are its leaves. The hub's degree equals leaves.
func Star(leaves int) ([][]int, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("Star: leaves=%d < min=%d: %w", leaves, minStarLeaves, ErrTooFewVertices)
	}

	m := zeros(leaves + 1)
	for leaf := 1; leaf <= leaves; leaf++ {
		setPair(m, 0, leaf)
	}

	return m, nil
}

// RandomSimple samples an Erdős–Rényi-style simple graph over n vertices:
// each unordered pair {i,j} with i<j is included independently with
// probability p. The result is symmetric with a zero diagonal.
//
// Determinism: a fixed (n, p, seed) triple always yields the identical
// matrix; seed == 0 maps to a fixed default seed so the zero value stays
// reproducible. Trial order is row-major with j > i.
func RandomSimple(n int, p float64, seed int64) ([][]int, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("RandomSimple: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSimple: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}

	s := seed
	if s == 0 {
		s = defaultSeed
	}
	rng := rand.New(rand.NewSource(s))

	m := zeros(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				setPair(m, i, j)
			}
		}
	}

	return m, nil
}
