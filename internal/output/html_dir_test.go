// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/selection"
	"github.com/davetashner/watermap/internal/testable"
)

func TestHTMLDirFormatter_Name(t *testing.T) {
	assert.Equal(t, "html-dir", NewHTMLDirFormatter().Name())
}

func TestHTMLDirFormatter_FormatReturnsError(t *testing.T) {
	err := NewHTMLDirFormatter().Format(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output (-o)")
}

func TestHTMLDirFormatter_FormatDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewHTMLDirFormatter().FormatDir(urban2010(t), dir))

	assertFileExists(t, filepath.Join(dir, "index.html"))
	for _, id := range []string{"water", "wb_water", "mortality", "life_expectancy"} {
		png := filepath.Join(dir, "rankings", id+".png")
		assertFileExists(t, png)
		assert.True(t, bytes.HasPrefix([]byte(readFile(t, png)), []byte("\x89PNG")), id)
	}

	html := readFile(t, filepath.Join(dir, "index.html"))
	assert.Contains(t, html, `src="rankings/water.png"`)
}

func TestHTMLDirFormatter_SkipsEmptyPanels(t *testing.T) {
	dir := t.TempDir()
	res := fixtureResult(t, selection.Selection{Year: 2015, Area: selection.Urban})
	require.NoError(t, NewHTMLDirFormatter().FormatDir(res, dir))

	assertFileExists(t, filepath.Join(dir, "rankings", "water.png"))
	assertFileExists(t, filepath.Join(dir, "rankings", "life_expectancy.png"))
	_, err := os.Stat(filepath.Join(dir, "rankings", "wb_water.png"))
	assert.True(t, os.IsNotExist(err), "empty panel has no ranking")
	_, err = os.Stat(filepath.Join(dir, "rankings", "mortality.png"))
	assert.True(t, os.IsNotExist(err))

	html := readFile(t, filepath.Join(dir, "index.html"))
	assert.NotContains(t, html, "rankings/wb_water.png")
	assert.Contains(t, html, dashboard.NoDataNotice)
}

func TestHTMLDirFormatter_MkdirError(t *testing.T) {
	orig := FS
	t.Cleanup(func() { FS = orig })
	FS = &testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return errors.New("read-only") },
	}

	err := NewHTMLDirFormatter().FormatDir(urban2010(t), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory")
}

func TestHTMLDirFormatter_WriteError(t *testing.T) {
	orig := FS
	t.Cleanup(func() { FS = orig })
	FS = &testable.MockFileSystem{
		WriteFileFn: func(string, []byte, os.FileMode) error { return errors.New("disk full") },
	}

	err := NewHTMLDirFormatter().FormatDir(urban2010(t), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRanking(dashboard.PanelResult{ID: "water"}, &buf)
	assert.ErrorIs(t, err, ErrNoRanking)
}
