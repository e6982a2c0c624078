// Package coloring defines result types, options, and sentinel errors
// for the vertex- and edge-coloring searches.
package coloring

import (
	"errors"

	"github.com/katalvlaran/chroma/core"
)

// Unassigned is the sentinel color id of an item the search has not
// (or could not) color. A successful Result contains no Unassigned entry.
const Unassigned = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// Vertices, Edges, EdgeBound, or Verify.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrOrderMismatch indicates that a caller-supplied visitation order
	// is not a permutation of the item indexes (wrong length, duplicate,
	// or out-of-range entry).
	ErrOrderMismatch = errors.New("coloring: order is not a permutation of item indexes")

	// ErrAssignment is returned by Verify when an assignment violates the
	// expected length, the color budget, or the constraint relation.
	ErrAssignment = errors.New("coloring: invalid assignment")
)

// Mode selects the constraint relation of a coloring.
type Mode int

const (
	// VertexMode colors vertices; vertices sharing an edge must differ.
	VertexMode Mode = iota
	// EdgeMode colors edges; edges sharing an endpoint must differ.
	EdgeMode
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == EdgeMode {
		return "edges"
	}

	return "vertices"
}

// Result is the outcome of a coloring search.
//
// On success Feasible is true and Assignment maps every item index
// (vertex or edge, by Mode of the call) to a color id in [0, NumColors).
// On infeasibility Feasible is false, NumColors carries the budget that
// failed, and Assignment is all Unassigned — the backtracking guarantee
// that no partial coloring escapes.
type Result struct {
	Feasible   bool
	NumColors  int
	Assignment []int
}

// OrderFunc produces a visitation order for the items of g: a permutation
// of the item indexes. It is a pure function of the Graph, recomputed per
// search invocation and never persisted, so heuristics can be compared by
// swapping providers.
type OrderFunc func(g *core.Graph) []int

// Option configures a coloring search. Use with Vertices / Edges.
type Option func(*Options)

// Options holds configurable search parameters.
type Options struct {
	// Order, if non-nil, is the exact visitation order to use. It must be
	// a permutation of the item indexes or the search fails with
	// ErrOrderMismatch. Takes precedence over OrderFn.
	Order []int

	// OrderFn, if non-nil, computes the visitation order from the graph.
	// Defaults: IndexOrder for Vertices, DegreeSumOrder for Edges.
	OrderFn OrderFunc
}

// DefaultOptions returns the search defaults: no explicit order and the
// per-mode default OrderFunc.
func DefaultOptions() Options {
	return Options{Order: nil, OrderFn: nil}
}

// WithOrder returns an Option fixing the exact visitation order.
func WithOrder(order []int) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithOrderFunc returns an Option installing fn as the order provider.
func WithOrderFunc(fn OrderFunc) Option {
	return func(o *Options) {
		o.OrderFn = fn
	}
}
