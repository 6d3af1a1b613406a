// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/davetashner/watermap/internal/dataset"
)

// Sentinel is the source marker for a missing observation.
const Sentinel = ".."

// LogColumn holds log10 of the value column for log-scaled datasets. It is
// used only for color encoding and never displayed.
const LogColumn = "log_value"

// missing is the cell text gota reads as NaN.
const missing = "NaN"

// Clean coerces the year column to integers and the value column to
// floats. The sentinel and any unparseable value become missing. For
// log-scaled schemas it adds LogColumn. Clean never fails on bad cells; it
// returns an error only when the table itself is unusable.
func Clean(df dataframe.DataFrame, schema dataset.Schema) (dataframe.DataFrame, error) {
	if err := schema.Check(df.Names()); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("clean: %w", err)
	}

	years := CoerceYears(df.Col(schema.YearCol).Records())
	values := CoerceValues(df.Col(schema.ValueCol).Records())

	out := df.Mutate(series.New(formatInts(years), series.Int, schema.YearCol))
	out = out.Mutate(series.New(formatFloats(values), series.Float, schema.ValueCol))
	if schema.LogScale {
		out = out.Mutate(series.New(formatFloats(Log10(values)), series.Float, LogColumn))
	}
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("clean %s: %w", schema.ID, out.Err)
	}
	return out, nil
}

// CoerceYears parses year cells. Integral floats such as "2010.0" are
// accepted; anything else is reported as missing (ok=false).
func CoerceYears(cells []string) []Year {
	out := make([]Year, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if n, err := strconv.Atoi(c); err == nil {
			out[i] = Year{Value: n, OK: true}
			continue
		}
		if f, err := strconv.ParseFloat(c, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
			out[i] = Year{Value: int(f), OK: true}
		}
	}
	return out
}

// Year is a coerced year cell.
type Year struct {
	Value int
	OK    bool
}

// CoerceValues parses value cells into floats. The sentinel, blanks, and
// unparseable text become NaN.
func CoerceValues(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = parseValue(c)
	}
	return out
}

func parseValue(c string) float64 {
	c = strings.TrimSpace(c)
	if c == "" || c == Sentinel {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(c, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// Log10 returns log10 of each value. Non-positive and missing values have
// no logarithm and map to NaN, which excludes them from color encoding.
func Log10(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || v <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log10(v)
	}
	return out
}

func formatInts(years []Year) []string {
	out := make([]string, len(years))
	for i, y := range years {
		if !y.OK {
			out[i] = missing
			continue
		}
		out[i] = strconv.Itoa(y.Value)
	}
	return out
}

func formatFloats(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = missing
			continue
		}
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}
