// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package dashboard recomputes the SDG 6 page for a selection: it loads the
// four datasets, runs each through the pipeline, and assembles the panels
// in page order. Build is a pure function of its inputs; Recompute adds the
// loading and is what the HTTP server, CLI, and MCP tools call.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/figure"
	"github.com/davetashner/watermap/internal/geo"
	"github.com/davetashner/watermap/internal/pipeline"
	"github.com/davetashner/watermap/internal/selection"
	"github.com/davetashner/watermap/internal/session"
)

// DefaultDataDir holds the dataset files when no directory is configured.
const DefaultDataDir = "data"

// Settings configures a Dashboard.
type Settings struct {
	DataDir     string
	Sources     map[dataset.ID]dataset.Source
	Mortality   pipeline.YearPolicy
	Defaults    selection.Selection
	AutoAdvance session.Options
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DataDir:     DefaultDataDir,
		Sources:     dataset.DefaultSources(),
		Mortality:   pipeline.YearPolicy{Mode: pipeline.YearSelected, FixedYear: pipeline.DefaultFixedYear},
		Defaults:    selection.Default(),
		AutoAdvance: session.DefaultOptions(),
	}
}

// RenderResult is one recomputed page.
type RenderResult struct {
	Title     string              `json:"title"`
	Byline    string              `json:"byline"`
	Intro     string              `json:"intro"`
	Selection selection.Selection `json:"selection"`
	AreaLabel string              `json:"area_label"`
	Panels    []PanelResult       `json:"panels"`
}

// PanelResult is one rendered panel. Exactly one of Figure and Notice is
// set.
type PanelResult struct {
	ID     dataset.ID       `json:"id"`
	Title  string           `json:"title"`
	Year   int              `json:"year"`
	Figure *figure.Figure   `json:"figure,omitempty"`
	Notice string           `json:"notice,omitempty"`
	Prose  string           `json:"prose"`
	Stats  pipeline.Summary `json:"stats"`
	// Excluded counts rows kept in the table but left out of the color
	// encoding, such as non-positive mortality rates.
	Excluded   int      `json:"excluded"`
	Unresolved []string `json:"unresolved,omitempty"`
	// Top lists the highest values, used for ranking charts.
	Top []pipeline.Ranked `json:"-"`
}

// HasFigure reports whether the panel renders a map.
func (p PanelResult) HasFigure() bool { return p.Figure != nil }

// topN is how many ranked rows each panel keeps.
const topN = 15

// Dashboard recomputes pages from the configured datasets.
type Dashboard struct {
	settings Settings
	loader   dataset.Loader
}

// New creates a Dashboard reading datasets through loader. A nil loader
// reads from settings.DataDir.
func New(settings Settings, loader dataset.Loader) *Dashboard {
	if loader == nil {
		loader = dataset.DirLoader{Dir: settings.DataDir}
	}
	if settings.Sources == nil {
		settings.Sources = dataset.DefaultSources()
	}
	return &Dashboard{settings: settings, loader: loader}
}

// Settings returns the dashboard settings.
func (d *Dashboard) Settings() Settings { return d.settings }

// Recompute loads every dataset and builds the page for sel. The loads run
// concurrently; any load failure fails the whole recompute.
func (d *Dashboard) Recompute(ctx context.Context, sel selection.Selection) (*RenderResult, error) {
	start := time.Now()
	tables, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := Build(tables, sel, d.settings)
	if err != nil {
		return nil, err
	}
	slog.Debug("recomputed dashboard", "year", sel.Year, "area", sel.Area, "duration", time.Since(start))
	return res, nil
}

func (d *Dashboard) load(ctx context.Context) (map[dataset.ID]dataframe.DataFrame, error) {
	ids := dataset.IDs()
	frames := make([]dataframe.DataFrame, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		src, ok := d.settings.Sources[id]
		if !ok {
			return nil, fmt.Errorf("no source configured for dataset %s", id)
		}
		g.Go(func() error {
			df, err := d.loader.Load(gctx, src)
			if err != nil {
				return err
			}
			frames[i] = df
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := make(map[dataset.ID]dataframe.DataFrame, len(ids))
	for i, id := range ids {
		tables[id] = frames[i]
	}
	return tables, nil
}

// Build assembles the page from already-loaded tables. The same tables and
// selection always produce the same result.
func Build(tables map[dataset.ID]dataframe.DataFrame, sel selection.Selection, settings Settings) (*RenderResult, error) {
	res := &RenderResult{
		Title:     Title,
		Byline:    Byline,
		Intro:     Intro,
		Selection: sel,
		AreaLabel: sel.Area.Label(),
	}

	for _, spec := range Panels() {
		src, ok := settings.Sources[spec.ID]
		if !ok {
			return nil, fmt.Errorf("no source configured for dataset %s", spec.ID)
		}
		df, ok := tables[spec.ID]
		if !ok {
			return nil, fmt.Errorf("dataset %s not loaded", spec.ID)
		}

		effective := sel
		if spec.ID == dataset.Mortality {
			effective = settings.Mortality.Resolve(sel)
		}

		table, err := pipeline.Run(df, src.Schema, effective)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", spec.ID, err)
		}
		panel, err := buildPanel(spec, src.Schema, table, effective.Year)
		if err != nil {
			return nil, err
		}
		res.Panels = append(res.Panels, panel)
	}
	return res, nil
}

func buildPanel(spec PanelSpec, schema dataset.Schema, table pipeline.Table, year int) (PanelResult, error) {
	p := PanelResult{
		ID:    spec.ID,
		Title: spec.TitleFor(year),
		Year:  year,
		Prose: spec.Prose,
		Stats: pipeline.Summarize(table.Values),
	}
	if table.Empty() {
		p.Notice = NoDataNotice
		return p, nil
	}

	p.Excluded = pipeline.Summarize(table.Color).Missing - p.Stats.Missing
	p.Unresolved = geo.Unresolved(table.Locations)
	p.Top = pipeline.Top(table, topN)

	fig, err := figure.Choropleth(spec.Encoding(year, schema.LogScale), table.Locations, table.Values, table.Color)
	if err != nil {
		return PanelResult{}, fmt.Errorf("panel %s: %w", spec.ID, err)
	}
	p.Figure = fig
	return p, nil
}
