// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package pipeline implements the per-dataset stages run on every
// recompute: clean (type coercion and sentinel handling), filter (equality
// on year, area, and sex), and extract (columns handed to the renderer).
// Every stage is a pure function of its inputs; nothing is cached between
// recomputes.
package pipeline

import (
	"fmt"

	"github.com/davetashner/watermap/internal/selection"
)

// YearMode selects how a dataset's year filter relates to the slider.
type YearMode string

// Year modes.
const (
	// YearSelected filters by the slider year.
	YearSelected YearMode = "selected"
	// YearFixed pins the filter to a configured year.
	YearFixed YearMode = "fixed"
)

// DefaultFixedYear is the mortality year used by the pinned policy.
const DefaultFixedYear = 2019

// YearPolicy decides which year a dataset is filtered by.
type YearPolicy struct {
	Mode      YearMode
	FixedYear int
}

// ParseYearMode accepts "", "selected", or "fixed".
func ParseYearMode(s string) (YearMode, error) {
	switch YearMode(s) {
	case "", YearSelected:
		return YearSelected, nil
	case YearFixed:
		return YearFixed, nil
	default:
		return "", fmt.Errorf("unknown year policy %q (must be selected or fixed)", s)
	}
}

// Resolve returns the selection a policy-governed dataset is filtered by.
func (p YearPolicy) Resolve(sel selection.Selection) selection.Selection {
	if p.Mode == YearFixed {
		sel.Year = p.FixedYear
	}
	return sel
}
