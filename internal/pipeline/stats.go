// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the displayed values of one panel.
type Summary struct {
	Rows    int     `json:"rows"`
	Missing int     `json:"missing"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
}

// Count returns the number of non-missing values.
func (s Summary) Count() int { return s.Rows - s.Missing }

// Summarize computes statistics over the non-missing values. With no
// values every statistic is zero.
func Summarize(values []float64) Summary {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	s := Summary{Rows: len(values), Missing: len(values) - len(present)}
	if len(present) == 0 {
		return s
	}

	sort.Float64s(present)
	s.Min = floats.Min(present)
	s.Max = floats.Max(present)
	s.Mean = stat.Mean(present, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, present, nil)
	return s
}

// Ranked is one location and its displayed value.
type Ranked struct {
	Location string
	Value    float64
}

// Top returns up to n rows with the highest non-missing values, ties
// broken by location name.
func Top(t Table, n int) []Ranked {
	out := make([]Ranked, 0, t.Len())
	for i, loc := range t.Locations {
		if math.IsNaN(t.Values[i]) {
			continue
		}
		out = append(out, Ranked{Location: loc, Value: t.Values[i]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Location < out[j].Location
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
