package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/output"
	"github.com/davetashner/watermap/internal/report"
	"github.com/davetashner/watermap/internal/selection"
)

// RenderInput is the input schema for the render_dashboard MCP tool.
type RenderInput struct {
	Year    int    `json:"year,omitempty" jsonschema:"Year to map, 2000-2022 (default: configured default year)"`
	Area    string `json:"area,omitempty" jsonschema:"Area category: URBAN, RURAL, or ALLAREA (default: configured default area)"`
	Format  string `json:"format,omitempty" jsonschema:"Output format: json, markdown, or html (default: json)"`
	DataDir string `json:"data_dir,omitempty" jsonschema:"Directory holding the dataset files (default: configured data directory)"`
}

// SummaryInput is the input schema for the summarize_dashboard MCP tool.
type SummaryInput struct {
	Year     int    `json:"year,omitempty" jsonschema:"Year to summarize, 2000-2022 (default: configured default year)"`
	Area     string `json:"area,omitempty" jsonschema:"Area category: URBAN, RURAL, or ALLAREA (default: configured default area)"`
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of summary sections to include"`
	DataDir  string `json:"data_dir,omitempty" jsonschema:"Directory holding the dataset files (default: configured data directory)"`
}

// ListAreasInput is the input schema for the list_areas MCP tool.
type ListAreasInput struct{}

// AreaInfo describes one selectable area category.
type AreaInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AreasResult is the list_areas response.
type AreasResult struct {
	Areas       []AreaInfo `json:"areas"`
	DefaultArea string     `json:"default_area"`
	MinYear     int        `json:"min_year"`
	MaxYear     int        `json:"max_year"`
	DefaultYear int        `json:"default_year"`
}

// tools holds the settings every tool call recomputes from.
type tools struct {
	settings dashboard.Settings
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all watermap tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_dashboard",
		Description: "Recompute the water, sanitation and health dashboard for a year and area category. Returns the four choropleth panels with their Plotly figure specs and summary statistics.",
		Annotations: readOnly,
	}, t.handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_dashboard",
		Description: "Summarize the dashboard for a year and area category: per-panel row counts, missing values, top countries, and unmatched country names.",
		Annotations: readOnly,
	}, t.handleSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_areas",
		Description: "List the selectable area categories and the year range the dashboard covers.",
		Annotations: readOnly,
	}, t.handleListAreas)
}

func (t *tools) handleRender(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}
	if _, ok := formatter.(output.DirectoryFormatter); ok {
		return nil, nil, fmt.Errorf("format %q writes a directory and is not available over MCP", format)
	}

	res, err := t.recompute(ctx, input.Year, input.Area, input.DataDir)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(res, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (t *tools) handleSummary(ctx context.Context, _ *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, any, error) {
	res, err := t.recompute(ctx, input.Year, input.Area, input.DataDir)
	if err != nil {
		return nil, nil, err
	}

	var sections []string
	if input.Sections != "" {
		sections = splitAndTrim(input.Sections)
	}

	var buf bytes.Buffer
	if err := report.RenderJSON(res, sections, &buf); err != nil {
		return nil, nil, fmt.Errorf("rendering failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (t *tools) handleListAreas(_ context.Context, _ *mcp.CallToolRequest, _ ListAreasInput) (*mcp.CallToolResult, any, error) {
	defaults := t.settings.Defaults
	out := AreasResult{
		DefaultArea: string(defaults.Area),
		MinYear:     selection.MinYear,
		MaxYear:     selection.MaxYear,
		DefaultYear: defaults.Year,
	}
	for _, a := range selection.Areas() {
		out.Areas = append(out.Areas, AreaInfo{ID: string(a), Label: a.Label()})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("JSON marshal: %w", err)
	}
	return textResult(string(data)), nil, nil
}

// recompute validates the requested selection and runs the dashboard.
// Zero values fall back to the configured defaults.
func (t *tools) recompute(ctx context.Context, year int, area, dataDir string) (*dashboard.RenderResult, error) {
	sel := t.settings.Defaults
	if year != 0 {
		sel.Year = year
	}
	if area != "" {
		a, err := selection.ParseArea(area)
		if err != nil {
			return nil, err
		}
		sel.Area = a
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	settings := t.settings
	dir, err := ResolveDataDir(dataDir, settings.DataDir)
	if err != nil {
		return nil, err
	}
	settings.DataDir = dir

	res, err := dashboard.New(settings, nil).Recompute(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("recompute failed: %w", err)
	}
	return res, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
