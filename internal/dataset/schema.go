// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package dataset describes and loads the four tabular datasets behind the
// dashboard. Every table is read whole, on every recompute, into a gota
// DataFrame whose columns are all strings; typing happens in the pipeline.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ID names one of the four datasets.
type ID string

// Dataset identifiers, also used as config keys and panel IDs.
const (
	Water          ID = "water"
	WBWater        ID = "wb_water"
	Mortality      ID = "mortality"
	LifeExpectancy ID = "life_expectancy"
)

// IDs returns every dataset in page order.
func IDs() []ID {
	return []ID{Water, WBWater, Mortality, LifeExpectancy}
}

// Known reports whether id names one of the four datasets.
func Known(id ID) bool {
	for _, k := range IDs() {
		if k == id {
			return true
		}
	}
	return false
}

// ErrMissingColumn is returned when a loaded table lacks a column its
// schema requires.
var ErrMissingColumn = errors.New("missing column")

// Schema maps a dataset's roles onto its column names. AreaCol and SexCol
// are empty for datasets without those dimensions.
type Schema struct {
	ID          ID
	AreaCol     string
	YearCol     string
	LocationCol string
	ValueCol    string
	SexCol      string
	SexValue    string

	// LogScale marks the value column for a base-10 color encoding.
	LogScale bool
}

// Columns returns the column names the schema requires, in a fixed order.
func (s Schema) Columns() []string {
	cols := []string{s.LocationCol, s.YearCol, s.ValueCol}
	if s.AreaCol != "" {
		cols = append(cols, s.AreaCol)
	}
	if s.SexCol != "" {
		cols = append(cols, s.SexCol)
	}
	return cols
}

// Check verifies that names contains every required column.
func (s Schema) Check(names []string) error {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	var missing []string
	for _, c := range s.Columns() {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", s.ID, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// DefaultSchemas returns the column layout of the published datasets.
func DefaultSchemas() map[ID]Schema {
	return map[ID]Schema{
		Water: {
			ID:          Water,
			AreaCol:     "Location",
			YearCol:     "TimePeriod",
			LocationCol: "GeoAreaName",
			ValueCol:    "Value",
		},
		WBWater: {
			ID:          WBWater,
			AreaCol:     "Area",
			YearCol:     "Year",
			LocationCol: "Country Name",
			ValueCol:    "Value",
		},
		Mortality: {
			ID:          Mortality,
			YearCol:     "DIM_TIME",
			LocationCol: "GEO_NAME_SHORT",
			ValueCol:    "RATE_PER_100000_N",
			SexCol:      "DIM_SEX",
			SexValue:    "TOTAL",
			LogScale:    true,
		},
		LifeExpectancy: {
			ID:          LifeExpectancy,
			YearCol:     "Year",
			LocationCol: "Country Name",
			ValueCol:    "Value",
		},
	}
}

// Source pairs a schema with the file holding the table.
type Source struct {
	Schema Schema
	Path   string
}

// DefaultSources returns the default file name for each dataset.
func DefaultSources() map[ID]Source {
	schemas := DefaultSchemas()
	paths := map[ID]string{
		Water:          "water_access.csv",
		WBWater:        "wb_water_access.csv",
		Mortality:      "mortality.csv",
		LifeExpectancy: "life_expectancy.csv",
	}
	out := make(map[ID]Source, len(paths))
	for id, p := range paths {
		out[id] = Source{Schema: schemas[id], Path: p}
	}
	return out
}
