// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/watermap/internal/dashboard"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// markdownTopN is how many ranked locations each panel section lists.
const markdownTopN = 5

// MarkdownFormatter writes the dashboard as a Markdown summary: one section
// per panel with its statistics and leading locations. Maps are not drawn.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes res as Markdown to w.
func (m *MarkdownFormatter) Format(res *dashboard.RenderResult, w io.Writer) error {
	if res == nil {
		return nil
	}
	if err := writeHeader(w, res); err != nil {
		return err
	}
	for _, p := range res.Panels {
		if err := writePanelSection(w, p); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes the Markdown title and selection line.
func writeHeader(w io.Writer, res *dashboard.RenderResult) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n", res.Title, res.Byline); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "**Year:** %d | **Area:** %s\n\n", res.Selection.Year, res.AreaLabel); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// writePanelSection writes a single panel's section.
func writePanelSection(w io.Writer, p dashboard.PanelResult) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", p.Title); err != nil {
		return fmt.Errorf("write panel heading: %w", err)
	}

	if !p.HasFigure() {
		if _, err := fmt.Fprintf(w, "_%s_\n\n", p.Notice); err != nil {
			return fmt.Errorf("write notice: %w", err)
		}
	} else {
		s := p.Stats
		if _, err := fmt.Fprintf(w, "| Rows | Missing | Min | Max | Mean | Median |\n"+
			"|------|---------|-----|-----|------|--------|\n"+
			"| %d | %d | %.1f | %.1f | %.1f | %.1f |\n\n",
			s.Rows, s.Missing, s.Min, s.Max, s.Mean, s.Median); err != nil {
			return fmt.Errorf("write stats table: %w", err)
		}

		top := p.Top
		if len(top) > markdownTopN {
			top = top[:markdownTopN]
		}
		for i, r := range top {
			if _, err := fmt.Fprintf(w, "%d. **%s**: %.1f\n", i+1, r.Location, r.Value); err != nil {
				return fmt.Errorf("write ranking: %w", err)
			}
		}
		if len(top) > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("write ranking: %w", err)
			}
		}

		if len(p.Unresolved) > 0 {
			if _, err := fmt.Fprintf(w, "Not drawn (unknown country name): %s\n\n", strings.Join(p.Unresolved, ", ")); err != nil {
				return fmt.Errorf("write unresolved: %w", err)
			}
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", p.Prose); err != nil {
		return fmt.Errorf("write prose: %w", err)
	}
	return nil
}
