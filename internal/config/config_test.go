package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(n int) *int { return &n }

func TestConfig_YAMLRoundTrip(t *testing.T) {
	original := &Config{
		DataDir:      "/srv/sdg6",
		OutputFormat: "json",
		Listen:       "127.0.0.1:9090",
		DefaultYear:  2015,
		DefaultArea:  "RURAL",
		Mortality:    MortalityConfig{YearPolicy: "fixed", FixedYear: 2019},
		AutoAdvance:  AutoAdvanceConfig{Interval: "500ms", MaxTicks: intPtr(0)},
		Datasets: map[string]DatasetConfig{
			"water": {Path: "un/water.xlsx", Columns: ColumnsConfig{Value: "Share"}},
		},
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}

func TestConfig_MaxTicksNilDistinct(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("auto_advance:\n  interval: 1s\n"), &cfg))
	assert.Nil(t, cfg.AutoAdvance.MaxTicks)

	require.NoError(t, yaml.Unmarshal([]byte("auto_advance:\n  max_ticks: 0\n"), &cfg))
	require.NotNil(t, cfg.AutoAdvance.MaxTicks)
	assert.Equal(t, 0, *cfg.AutoAdvance.MaxTicks)
}

func TestConfig_EmptyYAML(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(""), &cfg))
	assert.Equal(t, Config{}, cfg)
}

func TestConfig_OmitEmptyFields(t *testing.T) {
	data, err := yaml.Marshal(&Config{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}
