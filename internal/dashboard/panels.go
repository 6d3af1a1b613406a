// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/figure"
)

// Page text.
const (
	Title  = "Sustainable Development Goal (SDG) 6: Clean Water and Sanitation"
	Byline = "Access to safe water and sanitation, and what it means for health, country by country."
	Intro  = "SDG 6 aims to ensure availability and sustainable management of water and " +
		"sanitation for all. The maps below show how access to drinking water differs " +
		"between urban and rural areas, how many deaths are attributed to unsafe water, " +
		"sanitation and hygiene (WASH), and how long people can expect to live. Pick a " +
		"year and an area category, or let the year advance on its own."
)

// NoDataNotice replaces the figure of a panel whose filter matched nothing.
const NoDataNotice = "No data available for the selected year."

// mortalityDecades is the span of the mortality color axis, 10^0..10^4.
const mortalityDecades = 4

// PanelSpec is the fixed presentation of one dataset.
type PanelSpec struct {
	ID            dataset.ID
	Title         string
	ColorBarTitle string
	HoverLabel    string
	ValueFormat   string
	Min, Max      float64
	Reversed      bool
	Prose         string
	// YearInTitle appends the effective filter year to the title.
	YearInTitle bool
}

// Panels returns the panel specs in page order.
func Panels() []PanelSpec {
	return []PanelSpec{
		{
			ID:            dataset.Water,
			Title:         "Proportion of population using safely managed drinking-water services",
			ColorBarTitle: "Access to Clean Drinking Water (%)",
			HoverLabel:    "Safely managed (%)",
			ValueFormat:   ".1f",
			Min:           0,
			Max:           100,
			Prose: "Safely managed drinking water comes from an improved source located on " +
				"premises, available when needed and free from contamination. Gaps between " +
				"urban and rural areas are often wider than gaps between countries.",
		},
		{
			ID:            dataset.WBWater,
			Title:         "People using at least basic drinking water services",
			ColorBarTitle: "Proportion of access (%)",
			HoverLabel:    "Basic access (%)",
			ValueFormat:   ".1f",
			Min:           0,
			Max:           100,
			Prose: "Basic service means an improved source reachable within a 30 minute round " +
				"trip. The World Bank series covers more countries than the safely managed " +
				"indicator, so it fills in much of the map left blank above.",
		},
		{
			ID:            dataset.Mortality,
			Title:         "Mortality rate attributed to exposure to unsafe WASH services",
			ColorBarTitle: "Mortality rate per 100 000",
			HoverLabel:    "Deaths per 100 000",
			ValueFormat:   ".1f",
			Min:           0,
			Max:           mortalityDecades,
			Reversed:      true,
			YearInTitle:   true,
			Prose: "Deaths from diarrhoea, intestinal worms, malnutrition and other conditions " +
				"attributable to unsafe water, sanitation and hygiene. Rates span several " +
				"orders of magnitude, so the colors follow a logarithmic scale.",
		},
		{
			ID:            dataset.LifeExpectancy,
			Title:         "Life expectancy",
			ColorBarTitle: "Life expectancy",
			HoverLabel:    "Life expectancy (years)",
			ValueFormat:   ".1f",
			Min:           40,
			Max:           85,
			Prose: "Life expectancy at birth summarizes the health of a population. Countries " +
				"with poor access to water and sanitation tend to sit at the bottom of this " +
				"scale as well.",
		},
	}
}

// PanelFor returns the spec for id.
func PanelFor(id dataset.ID) (PanelSpec, bool) {
	for _, p := range Panels() {
		if p.ID == id {
			return p, true
		}
	}
	return PanelSpec{}, false
}

// TitleFor returns the panel title as shown for the given filter year.
func (p PanelSpec) TitleFor(year int) string {
	if p.YearInTitle {
		return fmt.Sprintf("%s, %d", p.Title, year)
	}
	return p.Title
}

// Encoding returns the figure encoding for the panel. Log-scaled panels
// get fixed decade ticks labeled in the original units.
func (p PanelSpec) Encoding(year int, logScale bool) figure.Encoding {
	palette := figure.RdYlGn
	if p.Reversed {
		palette = palette.Reversed()
	}
	enc := figure.Encoding{
		Title:         p.TitleFor(year),
		ColorBarTitle: p.ColorBarTitle,
		HoverLabel:    p.HoverLabel,
		ValueFormat:   p.ValueFormat,
		Min:           p.Min,
		Max:           p.Max,
		Palette:       palette,
	}
	if logScale {
		enc.TickVals, enc.TickText = figure.LogTicks(mortalityDecades)
	}
	return enc
}
