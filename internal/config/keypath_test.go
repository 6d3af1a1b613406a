package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	cfg := &Config{
		DataDir:   "data",
		Mortality: MortalityConfig{YearPolicy: "fixed", FixedYear: 2019},
		Datasets:  map[string]DatasetConfig{"water": {Path: "w.csv"}},
	}

	v, err := GetValue(cfg, "data_dir")
	require.NoError(t, err)
	assert.Equal(t, "data", v)

	v, err = GetValue(cfg, "mortality.fixed_year")
	require.NoError(t, err)
	assert.Equal(t, 2019, v)

	v, err = GetValue(cfg, "datasets.water.path")
	require.NoError(t, err)
	assert.Equal(t, "w.csv", v)

	v, err = GetValue(cfg, "mortality")
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, v)
}

func TestGetValue_NotFound(t *testing.T) {
	_, err := GetValue(&Config{}, "listen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = GetValue(&Config{DataDir: "d"}, "data_dir.deeper")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent is not a map")
}

func TestSetValue(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "default_year", "2012"))
	require.NoError(t, SetValue(data, "mortality.year_policy", "fixed"))
	require.NoError(t, SetValue(data, "datasets.water.columns.value", "Share"))

	assert.Equal(t, 2012, data["default_year"])
	assert.Equal(t, "fixed", data["mortality"].(map[string]any)["year_policy"])
	flat := FlattenMap(data, "")
	assert.Equal(t, "Share", flat["datasets.water.columns.value"])
}

func TestSetValue_ParentNotMap(t *testing.T) {
	data := map[string]any{"data_dir": "x"}
	err := SetValue(data, "data_dir.sub", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a map")
}

func TestValidateKeyPath(t *testing.T) {
	valid := []string{
		"data_dir",
		"default_area",
		"mortality",
		"mortality.year_policy",
		"auto_advance.max_ticks",
		"datasets",
		"datasets.mortality",
		"datasets.water.path",
		"datasets.wb_water.columns.area",
	}
	for _, k := range valid {
		assert.NoError(t, ValidateKeyPath(k), k)
	}

	invalid := map[string]string{
		"":                            "empty key path",
		"colour":                      "unknown key",
		"mortality.sex":               "unknown key \"sex\" under mortality",
		"data_dir.nested":             "is a scalar",
		"datasets.rainfall":           "unknown dataset",
		"datasets.water.columns.unit": "unknown key",
	}
	for k, want := range invalid {
		err := ValidateKeyPath(k)
		require.Error(t, err, k)
		assert.Contains(t, err.Error(), want, k)
	}
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, 42, coerceValue("42"))
	assert.Equal(t, 1.5, coerceValue("1.5"))
	assert.Equal(t, "2s", coerceValue("2s"))
}
