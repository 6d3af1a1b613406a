// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package figure

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is a named sequence of colors from low to high.
type Palette struct {
	Name   string
	Colors []string
}

// RdYlGn is the ColorBrewer red-yellow-green diverging palette. Low values
// are red and high values green, which suits metrics where more is better.
var RdYlGn = Palette{
	Name: "RdYlGn",
	Colors: []string{
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
	},
}

// Reversed returns the palette with its direction flipped, named with an
// "_r" suffix. Reversing twice restores the original name.
func (p Palette) Reversed() Palette {
	colors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		colors[len(p.Colors)-1-i] = c
	}
	name := p.Name + "_r"
	if base, ok := strings.CutSuffix(p.Name, "_r"); ok {
		name = base
	}
	return Palette{Name: name, Colors: colors}
}

// Stop is one entry of a Plotly colorscale.
type Stop struct {
	Pos   float64
	Color string
}

// MarshalJSON encodes a stop as Plotly's [position, color] pair.
func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Pos, s.Color})
}

// UnmarshalJSON decodes a [position, color] pair.
func (s *Stop) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode colorscale stop: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decode colorscale stop: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &s.Pos); err != nil {
		return fmt.Errorf("decode colorscale stop position: %w", err)
	}
	if err := json.Unmarshal(pair[1], &s.Color); err != nil {
		return fmt.Errorf("decode colorscale stop color: %w", err)
	}
	return nil
}

// Scale spreads the palette evenly over [0, 1].
func (p Palette) Scale() []Stop {
	n := len(p.Colors)
	stops := make([]Stop, n)
	for i, c := range p.Colors {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		stops[i] = Stop{Pos: pos, Color: c}
	}
	return stops
}
