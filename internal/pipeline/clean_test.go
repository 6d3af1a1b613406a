package pipeline

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dataset"
)

func load(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords(records(csv), loadOpts()...)
	require.NoError(t, df.Err)
	return df
}

func TestCoerceValues_Sentinel(t *testing.T) {
	got := CoerceValues([]string{"..", "12.5", " 7 ", "", ">95", "abc", "Inf"})

	assert.True(t, math.IsNaN(got[0]), "sentinel must become missing")
	assert.Equal(t, 12.5, got[1])
	assert.Equal(t, 7.0, got[2])
	for _, i := range []int{3, 4, 5, 6} {
		assert.True(t, math.IsNaN(got[i]), "cell %d should be missing", i)
	}
}

func TestCoerceYears(t *testing.T) {
	got := CoerceYears([]string{"2010", "2010.0", " 2015 ", "2010.5", "..", ""})

	assert.Equal(t, Year{Value: 2010, OK: true}, got[0])
	assert.Equal(t, Year{Value: 2010, OK: true}, got[1])
	assert.Equal(t, Year{Value: 2015, OK: true}, got[2])
	assert.False(t, got[3].OK)
	assert.False(t, got[4].OK)
	assert.False(t, got[5].OK)
}

func TestLog10_Monotonic(t *testing.T) {
	rates := []float64{0.01, 0.5, 1, 3, 10, 99.9, 100, 1000, 12345}
	logs := Log10(rates)
	for i := 1; i < len(logs); i++ {
		assert.Less(t, logs[i-1], logs[i], "log10(%g) < log10(%g)", rates[i-1], rates[i])
	}
}

func TestLog10_RejectsNonPositive(t *testing.T) {
	logs := Log10([]float64{0, -4, math.NaN(), 100})
	assert.True(t, math.IsNaN(logs[0]))
	assert.True(t, math.IsNaN(logs[1]))
	assert.True(t, math.IsNaN(logs[2]))
	assert.InDelta(t, 2.0, logs[3], 1e-12)
}

func TestClean_WBWater(t *testing.T) {
	schema := dataset.DefaultSchemas()[dataset.WBWater]
	df := load(t, "Country Name,Area,Year,Value\nKenya,URBAN,2010,80.5\nKenya,RURAL,2010.0,..\n")

	out, err := Clean(df, schema)
	require.NoError(t, err)

	years, err := out.Col("Year").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{2010, 2010}, years)

	vals := out.Col("Value").Float()
	assert.Equal(t, 80.5, vals[0])
	assert.True(t, math.IsNaN(vals[1]))
	assert.NotContains(t, out.Names(), LogColumn)
}

func TestClean_MortalityAddsLogColumn(t *testing.T) {
	schema := dataset.DefaultSchemas()[dataset.Mortality]
	df := load(t, "GEO_NAME_SHORT,DIM_TIME,DIM_SEX,RATE_PER_100000_N\nKenya,2019,TOTAL,100\nGermany,2019,TOTAL,0\n")

	out, err := Clean(df, schema)
	require.NoError(t, err)
	require.Contains(t, out.Names(), LogColumn)

	logs := out.Col(LogColumn).Float()
	assert.InDelta(t, 2.0, logs[0], 1e-12)
	assert.True(t, math.IsNaN(logs[1]), "zero rate has no logarithm")

	// The displayed rate is untouched.
	assert.Equal(t, []float64{100, 0}, out.Col("RATE_PER_100000_N").Float())
}

func TestClean_MissingColumn(t *testing.T) {
	df := load(t, "Country Name,Value\nKenya,1\n")
	_, err := Clean(df, dataset.DefaultSchemas()[dataset.LifeExpectancy])
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
}
