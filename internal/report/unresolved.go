// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/watermap/internal/dashboard"
)

func init() {
	Register(&unresolvedSection{})
}

type unresolvedRow struct {
	id       string
	drawn    int
	rows     int
	unknowns []string
}

// unresolvedSection reports location names the map cannot place.
type unresolvedSection struct {
	rows []unresolvedRow
}

func (s *unresolvedSection) Name() string { return "unresolved" }
func (s *unresolvedSection) Description() string {
	return "Location names that do not match a known country"
}

func (s *unresolvedSection) Analyze(res *dashboard.RenderResult) error {
	s.rows = nil
	for _, p := range res.Panels {
		if !p.HasFigure() {
			continue
		}
		locations := len(p.Figure.Data[0].Locations)
		s.rows = append(s.rows, unresolvedRow{
			id:       string(p.ID),
			drawn:    locations - len(p.Unresolved),
			rows:     locations,
			unknowns: p.Unresolved,
		})
	}
	if len(s.rows) == 0 {
		return fmt.Errorf("unresolved: %w", ErrNoData)
	}
	return nil
}

func (s *unresolvedSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Location Names"))
	_, _ = fmt.Fprintf(w, "--------------\n")

	tbl := NewTable(
		Column{Header: "Panel"},
		Column{Header: "Matched", Color: colorShareCell},
		Column{Header: "Unknown"},
	)
	total := 0
	for _, r := range s.rows {
		total += len(r.unknowns)
		tbl.AddRow(r.id, fmt.Sprintf("%d/%d", r.drawn, r.rows), strings.Join(r.unknowns, ", "))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "  Unknown names: %s\n\n", colorCount(total))
	return nil
}
