// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package selection defines the user-controlled inputs to the dashboard:
// the year slider and the area category selector.
package selection

import (
	"fmt"
	"strings"
)

// Year slider bounds and default.
const (
	MinYear     = 2000
	MaxYear     = 2022
	DefaultYear = 2010
)

// Area is a location category used by the water access datasets.
type Area string

// Allowed area categories.
const (
	Urban    Area = "URBAN"
	Rural    Area = "RURAL"
	AllAreas Area = "ALLAREA"
)

// DefaultArea is the selector's initial value.
const DefaultArea = Urban

var areaLabels = map[Area]string{
	Urban:    "Urban Areas",
	Rural:    "Rural Areas",
	AllAreas: "All Areas",
}

// Areas returns the allowed categories in selector order.
func Areas() []Area {
	return []Area{Urban, Rural, AllAreas}
}

// Valid reports whether a is one of the three allowed categories.
func (a Area) Valid() bool {
	_, ok := areaLabels[a]
	return ok
}

// Label returns the human-readable selector label, or the raw value for
// unknown categories.
func (a Area) Label() string {
	if l, ok := areaLabels[a]; ok {
		return l
	}
	return string(a)
}

// ParseArea accepts a category name in any case.
func ParseArea(s string) (Area, error) {
	a := Area(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown area %q (must be URBAN, RURAL, or ALLAREA)", s)
	}
	return a, nil
}

// ValidYear reports whether y is inside the slider bounds.
func ValidYear(y int) bool {
	return y >= MinYear && y <= MaxYear
}

// NextYear advances y by one, wrapping from MaxYear back to MinYear.
func NextYear(y int) int {
	if y >= MaxYear || y < MinYear {
		return MinYear
	}
	return y + 1
}

// Selection is the (year, area) pair every panel is filtered by.
type Selection struct {
	Year int  `json:"year"`
	Area Area `json:"area"`
}

// Default returns the initial selection.
func Default() Selection {
	return Selection{Year: DefaultYear, Area: DefaultArea}
}

// Validate checks the selection against the control bounds. Filtering does
// not require a valid selection; this is for inputs arriving from users.
func (s Selection) Validate() error {
	var errs []string
	if !ValidYear(s.Year) {
		errs = append(errs, fmt.Sprintf("year %d outside [%d, %d]", s.Year, MinYear, MaxYear))
	}
	if !s.Area.Valid() {
		errs = append(errs, fmt.Sprintf("unknown area %q", s.Area))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid selection: %s", strings.Join(errs, "; "))
	}
	return nil
}
