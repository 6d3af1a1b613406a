// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/dataset"
)

// ErrNoRanking is returned for panels with no values to rank.
var ErrNoRanking = errors.New("no values to rank")

// rankingDir is the directory, relative to the page, holding ranking charts.
const rankingDir = "rankings"

func rankingPath(id dataset.ID) string {
	return path.Join(rankingDir, string(id)+".png")
}

// RenderRanking draws the panel's top locations as a PNG bar chart.
func RenderRanking(p dashboard.PanelResult, w io.Writer) error {
	if len(p.Top) == 0 {
		return fmt.Errorf("ranking %s: %w", p.ID, ErrNoRanking)
	}

	bars := make([]chart.Value, len(p.Top))
	for i, r := range p.Top {
		bars[i] = chart.Value{Label: r.Location, Value: r.Value}
	}

	top := p.Top[0].Value * 1.1
	if top <= 0 {
		top = 1
	}

	graph := chart.BarChart{
		Title:      p.Title,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      1200,
		Height:     480,
		BarWidth:   56,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top}},
		Bars:       bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render ranking %s: %w", p.ID, err)
	}
	return nil
}
