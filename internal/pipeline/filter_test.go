// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/dataset/datasettest"
	"github.com/davetashner/watermap/internal/selection"
)

func loadFixtures(t *testing.T) map[dataset.ID]dataframe.DataFrame {
	t.Helper()
	dir := datasettest.WriteAll(t)
	out := make(map[dataset.ID]dataframe.DataFrame)
	for id, src := range dataset.DefaultSources() {
		df, err := dataset.LoadFile(filepath.Join(dir, src.Path), src.Schema)
		require.NoError(t, err)
		out[id] = df
	}
	return out
}

func TestRun_WaterUrban2010(t *testing.T) {
	tables := loadFixtures(t)
	schema := dataset.DefaultSchemas()[dataset.Water]

	got, err := Run(tables[dataset.Water], schema, selection.Selection{Year: 2010, Area: selection.Urban})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kenya", "India", "Germany", "Atlantis"}, got.Locations)
	assert.Equal(t, 52.1, got.Values[0])
	assert.Equal(t, 61.0, got.Values[1])
	assert.True(t, math.IsNaN(got.Values[2]), "non-numeric value is missing")
	assert.Equal(t, 10.0, got.Values[3])
}

func TestRun_MortalityUsesTotalSex(t *testing.T) {
	tables := loadFixtures(t)
	schema := dataset.DefaultSchemas()[dataset.Mortality]

	got, err := Run(tables[dataset.Mortality], schema, selection.Selection{Year: 2019, Area: selection.Rural})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kenya", "India", "Germany", "Chad"}, got.Locations)
	assert.Equal(t, []float64{51.2, 18.6, 0, 101.5}, got.Values)
	assert.InDelta(t, math.Log10(51.2), got.Color[0], 1e-12)
	assert.True(t, math.IsNaN(got.Color[2]), "zero rate excluded from color")
}

func TestRun_LifeExpectancyFloatYear(t *testing.T) {
	tables := loadFixtures(t)
	schema := dataset.DefaultSchemas()[dataset.LifeExpectancy]

	got, err := Run(tables[dataset.LifeExpectancy], schema, selection.Selection{Year: 2010, Area: selection.AllAreas})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kenya", "India", "Chad"}, got.Locations)
	assert.True(t, math.IsNaN(got.Values[2]))
}

func TestRun_OutOfRangeSelectionsAreEmpty(t *testing.T) {
	tables := loadFixtures(t)
	schemas := dataset.DefaultSchemas()

	sels := []selection.Selection{
		{Year: 1999, Area: selection.Urban},
		{Year: 2023, Area: selection.Urban},
		{Year: 2010, Area: "SUBURBAN"},
		{Year: 2019, Area: ""},
	}
	for _, id := range dataset.IDs() {
		for _, sel := range sels {
			got, err := Run(tables[id], schemas[id], sel)
			require.NoError(t, err, "%s %+v", id, sel)
			assert.True(t, got.Empty(), "%s %+v should be empty", id, sel)
		}
	}
}

func TestRun_NoMatchingYearIsNotAnError(t *testing.T) {
	tables := loadFixtures(t)
	schema := dataset.DefaultSchemas()[dataset.LifeExpectancy]

	got, err := Run(tables[dataset.LifeExpectancy], schema, selection.Selection{Year: 2022, Area: selection.Urban})
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Zero(t, got.Len())
}

func TestRun_SentinelNeverNumeric(t *testing.T) {
	tables := loadFixtures(t)
	schema := dataset.DefaultSchemas()[dataset.WBWater]

	got, err := Run(tables[dataset.WBWater], schema, selection.Selection{Year: 2010, Area: selection.Rural})
	require.NoError(t, err)
	require.Equal(t, []string{"Kenya"}, got.Locations)
	assert.True(t, math.IsNaN(got.Values[0]))
}

func TestRun_Reproducible(t *testing.T) {
	tables := loadFixtures(t)
	sel := selection.Selection{Year: 2010, Area: selection.Urban}

	for _, id := range dataset.IDs() {
		schema := dataset.DefaultSchemas()[id]
		a, err := Run(tables[id], schema, sel)
		require.NoError(t, err)
		b, err := Run(tables[id], schema, sel)
		require.NoError(t, err)

		ja, err := json.Marshal(nanSafe(a))
		require.NoError(t, err)
		jb, err := json.Marshal(nanSafe(b))
		require.NoError(t, err)
		assert.Equal(t, ja, jb, id)
	}
}

// nanSafe makes a Table JSON-encodable for byte comparison.
func nanSafe(t Table) map[string]any {
	enc := func(vs []float64) []any {
		out := make([]any, len(vs))
		for i, v := range vs {
			if math.IsNaN(v) {
				out[i] = nil
				continue
			}
			out[i] = v
		}
		return out
	}
	return map[string]any{"loc": t.Locations, "val": enc(t.Values), "color": enc(t.Color)}
}

func TestYearPolicy_Resolve(t *testing.T) {
	sel := selection.Selection{Year: 2010, Area: selection.Urban}

	assert.Equal(t, sel, YearPolicy{Mode: YearSelected}.Resolve(sel))

	fixed := YearPolicy{Mode: YearFixed, FixedYear: 2019}.Resolve(sel)
	assert.Equal(t, 2019, fixed.Year)
	assert.Equal(t, selection.Urban, fixed.Area)
}

func TestParseYearMode(t *testing.T) {
	m, err := ParseYearMode("")
	require.NoError(t, err)
	assert.Equal(t, YearSelected, m)

	m, err = ParseYearMode("fixed")
	require.NoError(t, err)
	assert.Equal(t, YearFixed, m)

	_, err = ParseYearMode("latest")
	require.Error(t, err)
}
