// Package timing implements the repeated-trial measurement harness for
// the coloring search.
package timing

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

// DefaultTrials is the trial count used when none is configured.
const DefaultTrials = 1000

// ErrInvalidTrials indicates a configured trial count below 1.
var ErrInvalidTrials = errors.New("timing: trial count must be at least 1")

// Report summarizes one measurement run.
type Report struct {
	// Trials is the number of searches that were timed.
	Trials int

	// Total is the summed wall-clock duration of all trials.
	Total time.Duration

	// Average is Total divided by Trials.
	Average time.Duration
}

// Seconds returns the arithmetic-mean trial duration in seconds — the
// value the presentation boundary reports.
func (r Report) Seconds() float64 {
	return r.Average.Seconds()
}

// Option configures a measurement. Use with MeasureVertices / MeasureEdges.
type Option func(*Options)

// Options holds configurable measurement parameters.
type Options struct {
	// Trials is the number of timed searches; must be ≥ 1.
	Trials int

	// Search options forwarded to every trial (e.g. coloring.WithOrderFunc).
	Search []coloring.Option
}

// DefaultOptions returns the measurement defaults: DefaultTrials trials,
// default search behavior.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Search: nil}
}

// WithTrials returns an Option setting the trial count.
func WithTrials(trials int) Option {
	return func(o *Options) {
		o.Trials = trials
	}
}

// WithSearchOptions returns an Option forwarding search options to every
// trial, so alternative visitation orders can be timed.
func WithSearchOptions(search ...coloring.Option) Option {
	return func(o *Options) {
		o.Search = search
	}
}

// MeasureVertices times the vertex-coloring search on (g, numColors).
func MeasureVertices(g *core.Graph, numColors int, opts ...Option) (Report, error) {
	return measure(g, numColors, coloring.Vertices, opts)
}

// MeasureEdges times the edge-coloring search on (g, numColors).
func MeasureEdges(g *core.Graph, numColors int, opts ...Option) (Report, error) {
	return measure(g, numColors, coloring.Edges, opts)
}

// searchFunc is the shape shared by coloring.Vertices and coloring.Edges.
type searchFunc func(*core.Graph, int, ...coloring.Option) (coloring.Result, error)

// measure runs search opts.Trials times and averages the wall clock.
// Each trial allocates its own assignment inside the search, so trials
// are fully independent; the deterministic search makes their results
// identical by construction.
func measure(g *core.Graph, numColors int, search searchFunc, opts []Option) (Report, error) {
	// 1. Resolve options and validate the trial count.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Trials < 1 {
		return Report{}, fmt.Errorf("trials=%d: %w", o.Trials, ErrInvalidTrials)
	}

	// 2. One untimed probe surfaces input errors (nil graph, bad order)
	//    before the clock starts.
	if _, err := search(g, numColors, o.Search...); err != nil {
		return Report{}, err
	}

	// 3. Timed trials.
	var total time.Duration
	for trial := 0; trial < o.Trials; trial++ {
		start := time.Now()
		_, _ = search(g, numColors, o.Search...)
		total += time.Since(start)
	}

	return Report{
		Trials:  o.Trials,
		Total:   total,
		Average: total / time.Duration(o.Trials),
	}, nil
}
