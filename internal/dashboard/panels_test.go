package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dataset"
)

func TestPanels_CoverEveryDataset(t *testing.T) {
	var ids []dataset.ID
	for _, p := range Panels() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, dataset.IDs(), ids)
}

func TestPanelSpec_TitleFor(t *testing.T) {
	m, ok := PanelFor(dataset.Mortality)
	require.True(t, ok)
	assert.Equal(t, "Mortality rate attributed to exposure to unsafe WASH services, 2019", m.TitleFor(2019))

	w, ok := PanelFor(dataset.Water)
	require.True(t, ok)
	assert.Equal(t, w.Title, w.TitleFor(2019))
}

func TestPanelSpec_Encoding(t *testing.T) {
	life, _ := PanelFor(dataset.LifeExpectancy)
	enc := life.Encoding(2010, false)
	assert.Equal(t, 40.0, enc.Min)
	assert.Equal(t, 85.0, enc.Max)
	assert.Equal(t, "RdYlGn", enc.Palette.Name)
	assert.Nil(t, enc.TickVals)

	m, _ := PanelFor(dataset.Mortality)
	enc = m.Encoding(2019, true)
	assert.Equal(t, "RdYlGn_r", enc.Palette.Name)
	assert.Equal(t, 4.0, enc.Max)
	assert.Len(t, enc.TickText, 5)
}

func TestPanelFor_Unknown(t *testing.T) {
	_, ok := PanelFor("rainfall")
	assert.False(t, ok)
}
