// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/davetashner/watermap/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Loader reads a dataset's full table.
type Loader interface {
	Load(ctx context.Context, src Source) (dataframe.DataFrame, error)
}

// DirLoader resolves relative source paths against Dir.
type DirLoader struct {
	Dir string
}

// Compile-time interface check.
var _ Loader = DirLoader{}

// Load reads src from disk. It honors ctx cancellation before reading.
func (l DirLoader) Load(ctx context.Context, src Source) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	path := src.Path
	if !filepath.IsAbs(path) && l.Dir != "" {
		path = filepath.Join(l.Dir, path)
	}
	return LoadFile(path, src.Schema)
}

// LoadFile reads the table at path and checks it against schema. Every
// column is loaded as a string series; no values are interpreted here.
func LoadFile(path string, schema Schema) (dataframe.DataFrame, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s: %w", schema.ID, err)
	}

	records, err := decodeRecords(path, data)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s from %s: %w", schema.ID, path, err)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{""}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s from %s: %w", schema.ID, path, df.Err)
	}
	if err := schema.Check(df.Names()); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s: %w", path, err)
	}
	return df, nil
}
