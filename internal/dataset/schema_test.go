package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs_PageOrder(t *testing.T) {
	assert.Equal(t, []ID{Water, WBWater, Mortality, LifeExpectancy}, IDs())
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(Mortality))
	assert.False(t, Known("rainfall"))
}

func TestDefaultSchemas_Complete(t *testing.T) {
	schemas := DefaultSchemas()
	for _, id := range IDs() {
		s, ok := schemas[id]
		require.True(t, ok, id)
		assert.Equal(t, id, s.ID)
		assert.NotEmpty(t, s.YearCol)
		assert.NotEmpty(t, s.LocationCol)
		assert.NotEmpty(t, s.ValueCol)
	}
	assert.True(t, schemas[Mortality].LogScale)
	assert.Empty(t, schemas[Mortality].AreaCol)
	assert.Empty(t, schemas[LifeExpectancy].AreaCol)
	assert.Equal(t, "TOTAL", schemas[Mortality].SexValue)
}

func TestSchema_Check(t *testing.T) {
	s := DefaultSchemas()[Water]

	require.NoError(t, s.Check([]string{"GeoAreaName", "Location", "TimePeriod", "Value", "Extra"}))

	err := s.Check([]string{"GeoAreaName", "Value"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "TimePeriod")
	assert.Contains(t, err.Error(), "Location")
}

func TestDefaultSources(t *testing.T) {
	src := DefaultSources()
	assert.Len(t, src, 4)
	assert.Equal(t, "mortality.csv", src[Mortality].Path)
	assert.Equal(t, Mortality, src[Mortality].Schema.ID)
}
