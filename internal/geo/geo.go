// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package geo checks location names against a country registry. The map
// renderer matches locations by country name, so names it cannot resolve
// are left uncolored; geo reports them so the gap is visible.
package geo

import (
	"sort"
	"strings"

	"github.com/biter777/countries"
)

// Resolve returns the ISO 3166-1 alpha-3 code for a country name.
func Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	code := countries.ByName(name)
	if code == countries.Unknown {
		return "", false
	}
	return code.Alpha3(), true
}

// Unresolved returns the distinct names that Resolve rejects, sorted.
func Unresolved(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		if _, ok := Resolve(n); !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
