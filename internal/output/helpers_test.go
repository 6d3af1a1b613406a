package output

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/dataset/datasettest"
	"github.com/davetashner/watermap/internal/selection"
)

func fixtureResult(t *testing.T, sel selection.Selection) *dashboard.RenderResult {
	t.Helper()
	settings := dashboard.DefaultSettings()
	settings.DataDir = datasettest.WriteAll(t)
	res, err := dashboard.New(settings, nil).Recompute(context.Background(), sel)
	require.NoError(t, err)
	return res
}

func urban2010(t *testing.T) *dashboard.RenderResult {
	t.Helper()
	return fixtureResult(t, selection.Selection{Year: 2010, Area: selection.Urban})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test helper
	require.NoError(t, err)
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.NoError(t, err, "expected file to exist: %s", path)
}
