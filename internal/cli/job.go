package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/chroma/adapter"
	"github.com/katalvlaran/chroma/palette"
)

// Job modes accepted in job files.
const (
	modeVertices = "vertices"
	modeEdges    = "edges"
)

// ErrUnknownMode indicates a job mode other than "vertices" or "edges".
var ErrUnknownMode = errors.New("cli: unknown coloring mode")

// Job is the TOML description of one coloring request.
//
// Example:
//
//	mode = "vertices"
//	directed = false
//	colors = 4
//	trials = 1000
//	palette = ["red", "green", "blue", "yellow"]
//	matrix = [
//	  [0, 1, 1],
//	  [1, 0, 1],
//	  [1, 1, 0],
//	]
type Job struct {
	Mode     string   `toml:"mode"`
	Directed bool     `toml:"directed"`
	Colors   int      `toml:"colors"`
	Trials   int      `toml:"trials"`
	Palette  []string `toml:"palette"`
	Matrix   [][]int  `toml:"matrix"`
}

// LoadJob decodes and validates a job file. Matrix content itself is
// validated by the engine, not here — the CLI only checks CLI-level
// fields.
func LoadJob(path string) (Job, error) {
	var job Job
	if _, err := toml.DecodeFile(path, &job); err != nil {
		return Job{}, fmt.Errorf("cli: decode %s: %w", path, err)
	}

	if job.Mode == "" {
		job.Mode = modeVertices
	}
	if job.Mode != modeVertices && job.Mode != modeEdges {
		return Job{}, fmt.Errorf("mode %q: %w", job.Mode, ErrUnknownMode)
	}

	return job, nil
}

// pal resolves the job palette, defaulting per mode like the engine's
// interactive ancestors did.
func (j Job) pal() palette.Palette {
	if len(j.Palette) > 0 {
		return palette.Palette(j.Palette)
	}
	if j.Mode == modeEdges {
		return palette.DefaultEdge
	}

	return palette.DefaultVertex
}

// request converts the job into the engine's boundary type.
func (j Job) request() adapter.ColorRequest {
	return adapter.ColorRequest{
		Matrix:    j.Matrix,
		Directed:  j.Directed,
		Palette:   j.pal(),
		NumColors: j.Colors,
		Trials:    j.Trials,
	}
}

// run dispatches the job to the engine flow matching its mode.
func (j Job) run(req adapter.ColorRequest) (adapter.Outcome, error) {
	if j.Mode == modeEdges {
		return adapter.ColorEdges(req)
	}

	return adapter.ColorVertices(req)
}
