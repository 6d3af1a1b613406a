// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/watermap/internal/dashboard"
)

// Section statuses.
const (
	statusOK     = "ok"
	statusNoData = "no data"
)

// SummaryJSON is the top-level JSON structure for summary --json output.
type SummaryJSON struct {
	Title    string        `json:"title"`
	Year     int           `json:"year"`
	Area     string        `json:"area"`
	Panels   []PanelJSON   `json:"panels"`
	Sections []SectionJSON `json:"sections,omitempty"`
}

// PanelJSON summarizes one panel.
type PanelJSON struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	HasData    bool     `json:"has_data"`
	Rows       int      `json:"rows"`
	Missing    int      `json:"missing"`
	Excluded   int      `json:"excluded"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "no data"
	Content     string `json:"content,omitempty"` // rendered text
}

// RenderText writes a terminal-friendly summary of res.
func RenderText(res *dashboard.RenderResult, sections []string, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(res.Title))
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(res.Title)))
	_, _ = fmt.Fprintf(w, "Year: %d\n", res.Selection.Year)
	_, _ = fmt.Fprintf(w, "Area: %s\n\n", res.AreaLabel)

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		if err := sec.Analyze(res); err != nil {
			if errors.Is(err, ErrNoData) {
				_, _ = fmt.Fprintf(w, "%s: %s\n\n", SectionTitle(sec.Description()), ColorStatus(statusNoData))
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}
		if err := sec.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
	}
	return nil
}

// RenderJSON writes the summary as machine-readable JSON.
func RenderJSON(res *dashboard.RenderResult, sections []string, w io.Writer) error {
	out := SummaryJSON{
		Title: res.Title,
		Year:  res.Selection.Year,
		Area:  string(res.Selection.Area),
	}
	for _, p := range res.Panels {
		out.Panels = append(out.Panels, PanelJSON{
			ID:         string(p.ID),
			Title:      p.Title,
			Year:       p.Year,
			HasData:    p.HasFigure(),
			Rows:       p.Stats.Rows,
			Missing:    p.Stats.Missing,
			Excluded:   p.Excluded,
			Unresolved: p.Unresolved,
		})
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}
		if err := sec.Analyze(res); err != nil {
			if errors.Is(err, ErrNoData) {
				sj.Status = statusNoData
				out.Sections = append(out.Sections, sj)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}

		sj.Status = statusOK
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ResolveSections determines which sections to run.
// If filter is empty, all registered sections are used; unknown names are dropped.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}
