// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/pipeline"
)

func init() {
	Register(&topSection{})
}

// topLimit is how many locations each panel lists.
const topLimit = 5

type rankedPanel struct {
	title string
	top   []pipeline.Ranked
}

// topSection lists the highest values per panel.
type topSection struct {
	panels []rankedPanel
}

func (s *topSection) Name() string        { return "top" }
func (s *topSection) Description() string { return "Highest values on each map" }

func (s *topSection) Analyze(res *dashboard.RenderResult) error {
	s.panels = nil
	for _, p := range res.Panels {
		if len(p.Top) == 0 {
			continue
		}
		top := p.Top
		if len(top) > topLimit {
			top = top[:topLimit]
		}
		s.panels = append(s.panels, rankedPanel{title: p.Title, top: top})
	}
	if len(s.panels) == 0 {
		return fmt.Errorf("top: %w", ErrNoData)
	}
	return nil
}

func (s *topSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Highest Values"))
	_, _ = fmt.Fprintf(w, "--------------\n")

	for _, p := range s.panels {
		_, _ = fmt.Fprintf(w, "  %s\n", p.title)
		tbl := NewTable(
			Column{Header: "#", Align: AlignRight},
			Column{Header: "Location"},
			Column{Header: "Value", Align: AlignRight},
		)
		for i, r := range p.top {
			tbl.AddRow(fmt.Sprintf("%d", i+1), r.Location, formatValue(r.Value))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "\n")
	}
	return nil
}
