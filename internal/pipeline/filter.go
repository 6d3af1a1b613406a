// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/selection"
)

// Filter returns the rows of a cleaned table matching sel exactly: year
// equality, area equality when the schema has an area column, and the
// schema's total-population sex value when it has a sex column.
//
// An area outside the three allowed categories matches nothing for every
// dataset, including those without an area column. Years outside the
// slider bounds are not rejected; they simply match no rows.
func Filter(df dataframe.DataFrame, schema dataset.Schema, sel selection.Selection) dataframe.DataFrame {
	if !sel.Area.Valid() {
		return df.Subset([]int{})
	}

	filters := []dataframe.F{
		{Colname: schema.YearCol, Comparator: series.Eq, Comparando: sel.Year},
	}
	if schema.AreaCol != "" {
		filters = append(filters, dataframe.F{Colname: schema.AreaCol, Comparator: series.Eq, Comparando: string(sel.Area)})
	}
	if schema.SexCol != "" {
		filters = append(filters, dataframe.F{Colname: schema.SexCol, Comparator: series.Eq, Comparando: schema.SexValue})
	}
	return df.FilterAggregation(dataframe.And, filters...)
}
