// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package datasettest writes small, hand-checked dataset fixtures for tests
// in other packages.
package datasettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WaterCSV is a UN water access table. For 2010/URBAN it holds Kenya,
// India, Germany (non-numeric value) and Atlantis (not a country).
const WaterCSV = `GeoAreaName,Location,TimePeriod,Value
Kenya,URBAN,2010,52.1
Kenya,RURAL,2010,31.4
Kenya,ALLAREA,2010,36.2
India,URBAN,2010,61
India,URBAN,2015,70.5
Germany,URBAN,2010,>99
Atlantis,URBAN,2010,10
`

// WBWaterCSV is a World Bank water access table using the ".." sentinel.
const WBWaterCSV = `Country Name,Area,Year,Value
Kenya,URBAN,2010,80.5
Kenya,RURAL,2010,..
India,URBAN,2010,92
Brazil,ALLAREA,2010,97.1
Brazil,ALLAREA,2015,98
`

// MortalityCSV is a WASH mortality table. Germany has a zero rate.
const MortalityCSV = `GEO_NAME_SHORT,DIM_TIME,DIM_SEX,RATE_PER_100000_N
Kenya,2019,TOTAL,51.2
Kenya,2019,MALE,55
India,2019,TOTAL,18.6
Germany,2019,TOTAL,0
Chad,2019,TOTAL,101.5
India,2010,TOTAL,30.2
`

// LifeExpectancyCSV is a life expectancy table with a year stored as float.
const LifeExpectancyCSV = `Country Name,Year,Value
Kenya,2010,59.5
India,2010.0,66.7
Chad,2010,..
Kenya,2015,62.1
`

// Files maps the default dataset file names to fixture contents.
var Files = map[string]string{
	"water_access.csv":    WaterCSV,
	"wb_water_access.csv": WBWaterCSV,
	"mortality.csv":       MortalityCSV,
	"life_expectancy.csv": LifeExpectancyCSV,
}

// WriteAll writes every fixture into a fresh temp directory and returns it.
func WriteAll(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range Files {
		Write(t, dir, name, content)
	}
	return dir
}

// Write writes a single file under dir.
func Write(t testing.TB, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
