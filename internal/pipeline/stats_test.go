package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{40, math.NaN(), 80, 60, 70})

	assert.Equal(t, 5, s.Rows)
	assert.Equal(t, 1, s.Missing)
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, 40.0, s.Min)
	assert.Equal(t, 80.0, s.Max)
	assert.InDelta(t, 62.5, s.Mean, 1e-9)
	assert.Equal(t, 60.0, s.Median)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]float64{math.NaN()})
	assert.Equal(t, Summary{Rows: 1, Missing: 1}, s)
}

func TestTop(t *testing.T) {
	tbl := Table{
		Locations: []string{"Chad", "Kenya", "India", "Niger", "Mali"},
		Values:    []float64{101.5, 51.2, math.NaN(), 101.5, 3},
	}

	got := Top(tbl, 3)
	assert.Equal(t, []Ranked{
		{Location: "Chad", Value: 101.5},
		{Location: "Niger", Value: 101.5},
		{Location: "Kenya", Value: 51.2},
	}, got)

	assert.Len(t, Top(tbl, 0), 4)
}
