package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/config"
)

func TestConfigValidate_OK(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(config.FileName, []byte("default_year: 2012\nmortality:\n  year_policy: fixed\n"), 0o600))

	out, err := run(t, "config", "validate")
	require.NoError(t, err)
	assert.Equal(t, "config OK\n", out)
}

func TestConfigValidate_ReportsAllErrors(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(config.FileName, []byte("default_year: 1990\ndefault_area: SUBURBAN\n"), 0o600))

	_, err := run(t, "config", "validate")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "default_year")
	assert.Contains(t, ece.Error(), "default_area")
}

func TestConfigValidate_ExplicitTOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "watermap.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_year = 2005\n[auto_advance]\ninterval = \"500ms\"\n"), 0o600))

	out, err := run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Equal(t, "config OK\n", out)
}

func TestConfigValidate_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := run(t, "--config", "nope.yaml", "config", "validate")
	requireExitCode(t, err, ExitInvalidArgs)
}

func TestConfigShow_MergesGlobal(t *testing.T) {
	isolate(t)
	globalDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "watermap")
	require.NoError(t, os.MkdirAll(globalDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("data_dir: /srv/data\ndefault_year: 2001\n"), 0o600))
	require.NoError(t, os.WriteFile(config.FileName, []byte("default_year: 2020\n"), 0o600))

	out, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir: /srv/data")
	assert.Contains(t, out, "default_year: 2020")
}

func TestConfigSetGet(t *testing.T) {
	isolate(t)

	out, err := run(t, "config", "set", "mortality.year_policy", "fixed")
	require.NoError(t, err)
	assert.Equal(t, "Set mortality.year_policy = fixed\n", out)

	resetFlags()
	out, err = run(t, "config", "set", "datasets.water.path", "un_water.xlsx")
	require.NoError(t, err)

	resetFlags()
	out, err = run(t, "config", "get", "mortality.year_policy")
	require.NoError(t, err)
	assert.Equal(t, "fixed\n", out)

	resetFlags()
	out, err = run(t, "config", "get", "datasets.water")
	require.NoError(t, err)
	assert.Equal(t, "path: un_water.xlsx\n", out)
}

func TestConfigSet_Global(t *testing.T) {
	isolate(t)

	_, err := run(t, "config", "set", "--global", "default_year", "2004")
	require.NoError(t, err)
	assert.FileExists(t, config.GlobalConfigPath())
	assert.NoFileExists(t, config.FileName)

	resetFlags()
	out, err := run(t, "config", "get", "--global", "default_year")
	require.NoError(t, err)
	assert.Equal(t, "2004\n", out)
}

func TestConfigSet_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"unknown key", "colour", "blue", "unknown key"},
		{"unknown dataset", "datasets.rainfall.path", "x.csv", "unknown dataset"},
		{"out of range year", "default_year", "2099", "default_year"},
		{"bad policy", "mortality.year_policy", "latest", "year_policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := run(t, "config", "set", tt.key, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NoFileExists(t, config.FileName, "nothing written on failure")
		})
	}
}

func TestConfigGet_Missing(t *testing.T) {
	isolate(t)
	_, err := run(t, "config", "get", "listen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigList(t *testing.T) {
	isolate(t)
	globalDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "watermap")
	require.NoError(t, os.MkdirAll(globalDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("listen: 0.0.0.0:9000\n"), 0o600))
	require.NoError(t, os.WriteFile(config.FileName, []byte("default_area: RURAL\n"), 0o600))

	out, err := run(t, "--no-color", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "default_area = RURAL (repo)")
	assert.Contains(t, out, "listen = 0.0.0.0:9000 (global)")
}

func TestConfigList_Empty(t *testing.T) {
	isolate(t)
	out, err := run(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No configuration set.")
}

func TestMergeConfigs_RepoWins(t *testing.T) {
	global := &config.Config{DataDir: "/g", DefaultYear: 2001}
	repo := &config.Config{DefaultYear: 2020}
	got := mergeConfigs(global, repo)
	assert.Equal(t, "/g", got.DataDir)
	assert.Equal(t, 2020, got.DefaultYear)
}
