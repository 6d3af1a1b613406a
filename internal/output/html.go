// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/figure"
	"github.com/davetashner/watermap/internal/selection"
)

// PlotlyURL is the plotly.js bundle the page loads.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// PageOptions controls the parts of the page that only make sense when it
// is served live.
type PageOptions struct {
	// Interactive renders the year slider, area selector, and auto-advance
	// toggle wired to the server's session API.
	Interactive bool
	// AutoAdvance sets the initial state of the auto-advance toggle.
	AutoAdvance bool
	// TickInterval is how often the page asks the server to advance.
	TickInterval time.Duration
	// Rankings links each panel to rankings/<id>.png.
	Rankings bool
}

// HTMLFormatter writes the dashboard as a standalone HTML page.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

// Format writes a static page to w.
func (h *HTMLFormatter) Format(res *dashboard.RenderResult, w io.Writer) error {
	return WritePage(w, res, PageOptions{})
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

func pageTemplate() *template.Template {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})
	return htmlTmpl
}

// WritePage renders res as an HTML page.
func WritePage(w io.Writer, res *dashboard.RenderResult, opts PageOptions) error {
	if res == nil {
		return fmt.Errorf("write page: no dashboard")
	}
	if err := pageTemplate().Execute(w, buildHTMLData(res, opts)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the page.
type htmlData struct {
	PlotlyURL      string
	Title          string
	Byline         string
	Intro          string
	Year           int
	AreaLabel      string
	MinYear        int
	MaxYear        int
	Areas          []areaOption
	Panels         []panelView
	Figures        map[string]*figure.Figure
	Interactive    bool
	AutoAdvance    bool
	TickIntervalMS int64
}

type areaOption struct {
	Value    string
	Label    string
	Selected bool
}

type panelView struct {
	ID        string
	Title     string
	HasFigure bool
	Notice    string
	Prose     string
	Ranking   string
}

func buildHTMLData(res *dashboard.RenderResult, opts PageOptions) htmlData {
	data := htmlData{
		PlotlyURL:   PlotlyURL,
		Title:       res.Title,
		Byline:      res.Byline,
		Intro:       res.Intro,
		Year:        res.Selection.Year,
		AreaLabel:   res.AreaLabel,
		MinYear:     selection.MinYear,
		MaxYear:     selection.MaxYear,
		Figures:     make(map[string]*figure.Figure),
		Interactive: opts.Interactive,
		AutoAdvance: opts.AutoAdvance,
	}
	if opts.TickInterval > 0 {
		data.TickIntervalMS = opts.TickInterval.Milliseconds()
	}

	for _, a := range selection.Areas() {
		data.Areas = append(data.Areas, areaOption{
			Value:    string(a),
			Label:    a.Label(),
			Selected: a == res.Selection.Area,
		})
	}

	for _, p := range res.Panels {
		v := panelView{
			ID:        string(p.ID),
			Title:     p.Title,
			HasFigure: p.HasFigure(),
			Notice:    p.Notice,
			Prose:     p.Prose,
		}
		if p.HasFigure() {
			data.Figures[v.ID] = p.Figure
			if opts.Rankings && len(p.Top) > 0 {
				v.Ranking = rankingPath(p.ID)
			}
		}
		data.Panels = append(data.Panels, v)
	}
	return data
}
