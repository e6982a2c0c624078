// Package core defines the Graph type, its construction options,
// and the sentinel errors shared by all chroma packages.
package core

import "errors"

// Sentinel errors for Graph construction and queries.
// Callers must branch with errors.Is; construction wraps these with the
// offending coordinates via fmt.Errorf("...: %w", ...).
var (
	// ErrNonSquareMatrix indicates the adjacency matrix is not N×N:
	// either the row count differs from the column count of some row,
	// or the rows are ragged.
	ErrNonSquareMatrix = errors.New("core: adjacency matrix is not square")

	// ErrMatrixValue indicates an adjacency entry outside {0,1}.
	// The wrapping error identifies the offending row and column.
	ErrMatrixValue = errors.New("core: adjacency entry must be 0 or 1")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, EdgeCount).
	ErrEdgeOutOfRange = errors.New("core: edge index out of range")
)

// Edge is one edge of a Graph. Index is stable for the lifetime of the
// Graph: directed edges are numbered in row-major matrix-scan order, and
// undirected edges in (i≤j) scan order of the symmetric closure.
// For undirected edges U ≤ V always holds.
type Edge struct {
	Index int // stable edge index within the owning Graph
	U, V  int // endpoint vertex indices (U == V for a self-loop)
}

// Option configures Graph construction. Use with NewGraph(matrix, opts...).
type Option func(*options)

// options holds the resolved construction parameters.
type options struct {
	directed bool
}

// WithDirected returns an Option that selects directed (true) or
// undirected (false) interpretation of the adjacency matrix.
// Graphs are undirected by default.
func WithDirected(directed bool) Option {
	return func(o *options) {
		o.directed = directed
	}
}

// defaultOptions returns the construction defaults: undirected.
func defaultOptions() options {
	return options{directed: false}
}
