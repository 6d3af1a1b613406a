// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/watermap/internal/dashboard"
)

func init() {
	Register(&panelsSection{})
}

// panelsSection reports per-panel row counts and value statistics.
type panelsSection struct {
	panels []dashboard.PanelResult
}

func (s *panelsSection) Name() string        { return "panels" }
func (s *panelsSection) Description() string { return "Rows, missing values, and statistics per map" }

func (s *panelsSection) Analyze(res *dashboard.RenderResult) error {
	s.panels = res.Panels
	return nil
}

func (s *panelsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Panels"))
	_, _ = fmt.Fprintf(w, "------\n")

	tbl := NewTable(
		Column{Header: "Panel"},
		Column{Header: "Year", Align: AlignRight},
		Column{Header: "Rows", Align: AlignRight},
		Column{Header: "Missing", Align: AlignRight, Color: colorCountCell},
		Column{Header: "Excluded", Align: AlignRight, Color: colorCountCell},
		Column{Header: "Min", Align: AlignRight},
		Column{Header: "Max", Align: AlignRight},
		Column{Header: "Mean", Align: AlignRight},
		Column{Header: "Median", Align: AlignRight},
	)
	for _, p := range s.panels {
		stats := formatStats(p.Stats)
		tbl.AddRow(
			string(p.ID),
			fmt.Sprintf("%d", p.Year),
			formatInt(p.Stats.Rows),
			formatInt(p.Stats.Missing),
			formatInt(p.Excluded),
			stats[0], stats[1], stats[2], stats[3],
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	for _, p := range s.panels {
		if !p.HasFigure() {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", p.ID, ColorNotice(p.Notice))
		}
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
