// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/selection"
)

// Table is a filtered, cleaned dataset ready for rendering. Values holds
// what the viewer sees; Color holds what drives the color scale. They are
// the same slice unless the schema is log-scaled.
type Table struct {
	Dataset   dataset.ID
	Locations []string
	Values    []float64
	Color     []float64
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Locations) }

// Empty reports whether the filter matched no rows.
func (t Table) Empty() bool { return len(t.Locations) == 0 }

// Extract pulls the render columns out of a cleaned, filtered frame.
func Extract(df dataframe.DataFrame, schema dataset.Schema) (Table, error) {
	if df.Err != nil {
		return Table{}, fmt.Errorf("extract %s: %w", schema.ID, df.Err)
	}
	t := Table{
		Dataset:   schema.ID,
		Locations: df.Col(schema.LocationCol).Records(),
		Values:    df.Col(schema.ValueCol).Float(),
	}
	t.Color = t.Values
	if schema.LogScale {
		t.Color = df.Col(LogColumn).Float()
	}
	return t, nil
}

// Run applies the clean, filter, and extract stages to a freshly loaded
// table. It is a pure function of its inputs.
func Run(df dataframe.DataFrame, schema dataset.Schema, sel selection.Selection) (Table, error) {
	cleaned, err := Clean(df, schema)
	if err != nil {
		return Table{}, err
	}
	return Extract(Filter(cleaned, schema, sel), schema)
}
