// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package figure builds Plotly choropleth figure specs. Go only describes
// the figure; projection and drawing happen in plotly.js in the browser.
package figure

import (
	"fmt"
	"math"
	"strconv"
)

// Figure is a Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a choropleth trace keyed by country name.
type Trace struct {
	Type          string     `json:"type"`
	LocationMode  string     `json:"locationmode"`
	Locations     []string   `json:"locations"`
	Z             []*float64 `json:"z"`
	CustomData    []*float64 `json:"customdata"`
	ZMin          float64    `json:"zmin"`
	ZMax          float64    `json:"zmax"`
	ColorScale    []Stop     `json:"colorscale"`
	HoverTemplate string     `json:"hovertemplate"`
	ColorBar      ColorBar   `json:"colorbar"`
}

// ColorBar is the legend attached to a trace.
type ColorBar struct {
	Title    Text      `json:"title"`
	TickVals []float64 `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`
}

// Text is a Plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Layout holds the figure title, map framing, and margins.
type Layout struct {
	Title  Text   `json:"title"`
	Geo    Geo    `json:"geo"`
	Margin Margin `json:"margin"`
}

// Geo is the map framing.
type Geo struct {
	ShowCoastlines bool       `json:"showcoastlines"`
	CoastlineColor string     `json:"coastlinecolor"`
	ShowLand       bool       `json:"showland"`
	LandColor      string     `json:"landcolor"`
	Center         LatLon     `json:"center"`
	Projection     Projection `json:"projection"`
}

// LatLon is a geographic point.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Projection sets the map zoom.
type Projection struct {
	Scale float64 `json:"scale"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}

// Framing returns the map framing every panel shares: visible coastlines
// and land, centered on lat 2 lon 53, at projection scale 2.3.
func Framing() Geo {
	return Geo{
		ShowCoastlines: true,
		CoastlineColor: "Black",
		ShowLand:       true,
		LandColor:      "lightgray",
		Center:         LatLon{Lat: 2, Lon: 53},
		Projection:     Projection{Scale: 2.3},
	}
}

// DefaultMargin leaves room for the title only.
func DefaultMargin() Margin {
	return Margin{R: 0, T: 30, L: 0, B: 0}
}

// Encoding is the visual encoding of one dataset.
type Encoding struct {
	Title         string
	ColorBarTitle string
	// HoverLabel names the displayed value in hover text.
	HoverLabel string
	// ValueFormat is a d3 format applied to the displayed value.
	ValueFormat string
	Min, Max    float64
	Palette     Palette
	TickVals    []float64
	TickText    []string
}

// Choropleth builds a single-trace figure. display holds the values shown
// in hover text; color drives the color scale. Missing values (NaN) are
// encoded as null so the location is left uncolored.
func Choropleth(enc Encoding, locations []string, display, color []float64) (*Figure, error) {
	if len(display) != len(locations) || len(color) != len(locations) {
		return nil, fmt.Errorf("choropleth %q: %d locations, %d display values, %d color values",
			enc.Title, len(locations), len(display), len(color))
	}

	trace := Trace{
		Type:          "choropleth",
		LocationMode:  "country names",
		Locations:     locations,
		Z:             nullable(color),
		CustomData:    nullable(display),
		ZMin:          enc.Min,
		ZMax:          enc.Max,
		ColorScale:    enc.Palette.Scale(),
		HoverTemplate: hoverTemplate(enc),
		ColorBar: ColorBar{
			Title:    Text{Text: enc.ColorBarTitle},
			TickVals: enc.TickVals,
			TickText: enc.TickText,
		},
	}

	return &Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:  Text{Text: enc.Title},
			Geo:    Framing(),
			Margin: DefaultMargin(),
		},
	}, nil
}

// hoverTemplate shows the location and the un-transformed value.
func hoverTemplate(enc Encoding) string {
	value := "%{customdata}"
	if enc.ValueFormat != "" {
		value = "%{customdata:" + enc.ValueFormat + "}"
	}
	return "<b>%{location}</b><br>" + enc.HoverLabel + ": " + value + "<extra></extra>"
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = &v
	}
	return out
}

// LogTicks returns colorbar ticks for a log10 color axis spanning
// 10^0..10^decades. Positions are the exact integers 0..decades and labels
// read in the original units: "1", "10", "100", "1k", "10k".
func LogTicks(decades int) ([]float64, []string) {
	vals := make([]float64, 0, decades+1)
	text := make([]string, 0, decades+1)
	unit := 1
	for p := 0; p <= decades; p++ {
		vals = append(vals, float64(p))
		text = append(text, tickLabel(unit))
		unit *= 10
	}
	return vals, text
}

func tickLabel(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return strconv.Itoa(n/1_000_000) + "M"
	case n >= 1000 && n%1000 == 0:
		return strconv.Itoa(n/1000) + "k"
	default:
		return strconv.Itoa(n)
	}
}
