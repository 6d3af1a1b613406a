// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)
)

// ColorStatus colors section status labels.
func ColorStatus(val string) string {
	switch val {
	case statusOK:
		return colorGreen.Sprint(val)
	case statusNoData:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorNotice dims notice text such as the no-data message.
func ColorNotice(val string) string {
	return colorFaint.Sprint(val)
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorCount colors a count: 0 is green, >0 is yellow.
func colorCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorYellow.Sprint(s)
}

// colorCountCell is colorCount for table cells holding a formatted count.
func colorCountCell(val string) string {
	if val == "0" {
		return colorGreen.Sprint(val)
	}
	if val == "" || val == "-" {
		return val
	}
	return colorYellow.Sprint(val)
}

// colorShareCell colors a "part/whole" cell: below half red, below 90%
// yellow, otherwise green.
func colorShareCell(val string) string {
	var part, whole int
	if _, err := fmt.Sscanf(val, "%d/%d", &part, &whole); err != nil || whole == 0 {
		return val
	}
	switch {
	case part*2 < whole:
		return colorRed.Sprint(val)
	case part*10 < whole*9:
		return colorYellow.Sprint(val)
	default:
		return colorGreen.Sprint(val)
	}
}
