// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/davetashner/watermap/internal/dashboard"
)

func init() {
	RegisterFormatter(NewHTMLDirFormatter())
}

// HTMLDirFormatter writes the dashboard to a directory: index.html plus a
// rankings/<panel>.png bar chart for every panel that has data.
type HTMLDirFormatter struct{}

// Compile-time interface checks.
var (
	_ Formatter          = (*HTMLDirFormatter)(nil)
	_ DirectoryFormatter = (*HTMLDirFormatter)(nil)
)

// NewHTMLDirFormatter returns a new HTMLDirFormatter.
func NewHTMLDirFormatter() *HTMLDirFormatter {
	return &HTMLDirFormatter{}
}

// Name returns the format name.
func (h *HTMLDirFormatter) Name() string {
	return "html-dir"
}

// Format returns an error directing users to use --output (-o) with html-dir.
func (h *HTMLDirFormatter) Format(_ *dashboard.RenderResult, _ io.Writer) error {
	return fmt.Errorf("html-dir format requires --output (-o) flag to specify output directory")
}

// FormatDir writes the dashboard to dir. Panels showing the no-data notice
// get no ranking chart.
func (h *HTMLDirFormatter) FormatDir(res *dashboard.RenderResult, dir string) error {
	if res == nil {
		return fmt.Errorf("write html-dir: no dashboard")
	}
	if err := FS.MkdirAll(filepath.Join(dir, rankingDir), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, p := range res.Panels {
		if !p.HasFigure() || len(p.Top) == 0 {
			continue
		}
		var buf bytes.Buffer
		if err := RenderRanking(p, &buf); err != nil {
			return err
		}
		name := filepath.Join(dir, filepath.FromSlash(rankingPath(p.ID)))
		if err := FS.WriteFile(name, buf.Bytes(), 0o644); err != nil { //nolint:gosec // exported charts are meant to be readable
			return fmt.Errorf("write %s: %w", rankingPath(p.ID), err)
		}
	}

	var page bytes.Buffer
	if err := WritePage(&page, res, PageOptions{Rankings: true}); err != nil {
		return err
	}
	if err := FS.WriteFile(filepath.Join(dir, "index.html"), page.Bytes(), 0o644); err != nil { //nolint:gosec // exported page is meant to be readable
		return fmt.Errorf("write index.html: %w", err)
	}
	return nil
}
