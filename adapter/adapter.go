// Package adapter wires matrix input, budget derivation, timing, search,
// and label mapping into the two request flows of the engine boundary.
package adapter

import (
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/palette"
	"github.com/katalvlaran/chroma/timing"
)

// ColorRequest carries one coloring request across the boundary.
type ColorRequest struct {
	// Matrix is the N×N {0,1} adjacency matrix. Validated on entry;
	// malformed input fails with the core sentinels.
	Matrix [][]int

	// Directed selects directed interpretation of the matrix.
	Directed bool

	// Palette supplies the display labels. Edge mode also feeds its size
	// into the color budget; vertex mode uses it as the default budget
	// when NumColors is unset.
	Palette palette.Palette

	// NumColors is the vertex-mode color budget. When ≤ 0 the palette
	// size is used. Ignored by edge mode, whose budget is structural.
	NumColors int

	// Trials, when > 0, times the search with that many repetitions
	// before producing the result.
	Trials int
}

// Outcome is the engine's answer to one request.
type Outcome struct {
	// Mode records which items were colored.
	Mode coloring.Mode

	// Feasible reports whether a proper coloring exists within NumColors.
	Feasible bool

	// NumColors is the budget the search ran with — on infeasibility,
	// the budget that failed, for "cannot color with N colors" reporting.
	NumColors int

	// Assignment maps item index → color id. All Unassigned when
	// infeasible.
	Assignment []int

	// Labels is Assignment mapped through the palette (modulo wrap);
	// empty when infeasible or when no palette was supplied.
	Labels []string

	// AvgSeconds is the mean search latency over Trials repetitions;
	// zero when timing was not requested.
	AvgSeconds float64
}

// Renderer is the contract of the excluded presentation layer: it
// receives Outcomes and draws them however it likes.
type Renderer interface {
	Render(o Outcome) error
}

// Discard is the no-op Renderer.
var Discard Renderer = discard{}

type discard struct{}

func (discard) Render(Outcome) error { return nil }

// ColorVertices runs the vertex-mode flow for req.
//
// The budget is req.NumColors, defaulting to the palette size — the
// caller picks a fixed budget and gets infeasibility back rather than
// silent auto-escalation.
func ColorVertices(req ColorRequest) (Outcome, error) {
	// 1. Build a fresh Graph; matrix sentinels pass through verbatim.
	g, err := core.NewGraph(req.Matrix, core.WithDirected(req.Directed))
	if err != nil {
		return Outcome{}, err
	}

	// 2. Resolve the fixed vertex budget.
	numColors := req.NumColors
	if numColors <= 0 {
		numColors = len(req.Palette)
	}

	return finish(g, coloring.VertexMode, numColors, req, coloring.Vertices)
}

// ColorEdges runs the edge-mode flow for req.
//
// The budget is Budget(EdgeBound(g), len(palette)): the Vizing bound as
// the floor, widened by a larger palette. Edges are visited in degree-sum
// order.
func ColorEdges(req ColorRequest) (Outcome, error) {
	// 1. Build a fresh Graph; matrix sentinels pass through verbatim.
	g, err := core.NewGraph(req.Matrix, core.WithDirected(req.Directed))
	if err != nil {
		return Outcome{}, err
	}

	// 2. Structural budget: Vizing bound floored against the palette.
	bound, err := coloring.EdgeBound(g)
	if err != nil {
		return Outcome{}, err
	}
	numColors := coloring.Budget(bound, len(req.Palette))

	return finish(g, coloring.EdgeMode, numColors, req, coloring.Edges)
}

// finish times the search when requested, runs it, and maps labels.
func finish(
	g *core.Graph,
	mode coloring.Mode,
	numColors int,
	req ColorRequest,
	search func(*core.Graph, int, ...coloring.Option) (coloring.Result, error),
) (Outcome, error) {
	out := Outcome{Mode: mode, NumColors: numColors}

	// 1. Optional timing pass over the identical input.
	if req.Trials > 0 {
		var rep timing.Report
		var err error
		switch mode {
		case coloring.EdgeMode:
			rep, err = timing.MeasureEdges(g, numColors, timing.WithTrials(req.Trials))
		default:
			rep, err = timing.MeasureVertices(g, numColors, timing.WithTrials(req.Trials))
		}
		if err != nil {
			return Outcome{}, err
		}
		out.AvgSeconds = rep.Seconds()
	}

	// 2. The "real" search whose result the presentation side renders.
	res, err := search(g, numColors)
	if err != nil {
		return Outcome{}, err
	}
	out.Feasible = res.Feasible
	out.Assignment = res.Assignment

	// 3. Labels only for a feasible result with a palette to map into.
	if res.Feasible && len(req.Palette) > 0 {
		labels, err := req.Palette.Labels(res.Assignment)
		if err != nil {
			return Outcome{}, err
		}
		out.Labels = labels
	}

	return out, nil
}
