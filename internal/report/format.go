// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/davetashner/watermap/internal/pipeline"
)

// printer groups digits in report numbers ("12,345.6").
var printer = message.NewPrinter(language.English)

func formatInt(n int) string {
	return printer.Sprintf("%d", n)
}

func formatValue(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// formatStats returns min, max, mean, and median cells, or dashes when no
// value was present.
func formatStats(s pipeline.Summary) [4]string {
	if s.Count() == 0 {
		return [4]string{"-", "-", "-", "-"}
	}
	return [4]string{formatValue(s.Min), formatValue(s.Max), formatValue(s.Mean), formatValue(s.Median)}
}
