// Package palette maps integer color ids to display labels.
//
// A Palette is an ordered sequence of labels. Ids beyond the palette
// length wrap around modulo its size — a presentation convention, never a
// constraint on the search, which works purely with integer ids.
package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for palette lookups.
var (
	// ErrEmptyPalette indicates a lookup against a palette with no labels.
	ErrEmptyPalette = errors.New("palette: palette has no labels")

	// ErrNegativeColor indicates a lookup with a negative color id
	// (typically an Unassigned sentinel that leaked into presentation).
	ErrNegativeColor = errors.New("palette: negative color id")
)

// Palette is an ordered sequence of display labels.
type Palette []string

// DefaultVertex is the four-label palette the vertex flow ships with.
var DefaultVertex = Palette{"red", "green", "blue", "yellow"}

// DefaultEdge is the wider ten-label palette the edge flow ships with.
var DefaultEdge = Palette{
	"red", "green", "blue", "yellow", "purple",
	"orange", "cyan", "magenta", "brown", "gray",
}

// Label returns the display label for color id, wrapping modulo the
// palette length when id exceeds it.
func (p Palette) Label(id int) (string, error) {
	if len(p) == 0 {
		return "", ErrEmptyPalette
	}
	if id < 0 {
		return "", fmt.Errorf("color %d: %w", id, ErrNegativeColor)
	}

	return p[id%len(p)], nil
}

// Labels maps a whole assignment to display labels, index for index.
func (p Palette) Labels(assignment []int) ([]string, error) {
	out := make([]string, len(assignment))
	for i, id := range assignment {
		label, err := p.Label(id)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = label
	}

	return out, nil
}
