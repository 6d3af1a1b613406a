package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/watermap/internal/config"
	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/output"
)

// defaultRenderFormat is used when neither --format nor output_format is set.
const defaultRenderFormat = "html"

// Render-specific flag values.
var (
	renderFormat string
	renderOutput string
	renderFlags  selectionFlags
)

// renderCmd exports the dashboard for one selection.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the dashboard for a year and area",
	Long: `Recompute the dashboard for one year and area category and write it out.

Formats:
  html      single self-contained page (Plotly loaded from its CDN)
  html-dir  index.html plus rankings/<panel>.png bar charts; requires -o
  json      the figure specs and panel statistics
  markdown  per-panel statistics and top countries

Examples:
  watermap render --year 2015 --area rural -o dashboard.html
  watermap render -f html-dir -o site/
  watermap render -f json --year 2020`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: html, html-dir, json, markdown (default: html)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file or directory (default: stdout)")
	renderFlags.register(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	settings, cfg, err := resolveSettings(config.Config{
		DataDir:      renderFlags.DataDir,
		OutputFormat: renderFormat,
	})
	if err != nil {
		return err
	}
	sel, err := resolveSelection(settings.Defaults, renderFlags)
	if err != nil {
		return err
	}

	format := cfg.OutputFormat
	if format == "" {
		format = defaultRenderFormat
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "watermap: %v", err)
	}
	df, isDir := formatter.(output.DirectoryFormatter)
	if isDir && renderOutput == "" {
		return exitError(ExitInvalidArgs, "watermap: %s format requires --output (-o) flag to specify output directory", format)
	}

	res, err := dashboard.New(settings, nil).Recompute(cmd.Context(), sel)
	if err != nil {
		return exitError(ExitLoadFailure, "watermap: %v", err)
	}

	if isDir {
		if err := df.FormatDir(res, renderOutput); err != nil {
			return fmt.Errorf("watermap: formatting failed (%v)", err)
		}
		slog.Info("render complete", "format", format, "dir", renderOutput, "year", sel.Year, "area", sel.Area)
		return nil
	}

	if renderOutput == "" {
		if err := formatter.Format(res, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("watermap: formatting failed (%v)", err)
		}
		slog.Info("render complete", "format", format, "year", sel.Year, "area", sel.Area)
		return nil
	}

	f, err := cmdFS.Create(renderOutput)
	if err != nil {
		return exitError(ExitInvalidArgs, "watermap: cannot create output file %q (%v)", renderOutput, err)
	}
	if err := formatter.Format(res, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("watermap: formatting failed (%v)", err)
	}
	if err := closeOutput(f); err != nil {
		return fmt.Errorf("watermap: cannot write output file %q (%v)", renderOutput, err)
	}
	slog.Info("render complete", "format", format, "year", sel.Year, "area", sel.Area)
	return nil
}

// closeOutput closes a written output file. Swapped out in tests to
// simulate a failed flush.
var closeOutput = func(f io.Closer) error { return f.Close() }
