package config

import (
	"fmt"
	"maps"
	"time"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/pipeline"
	"github.com/davetashner/watermap/internal/selection"
)

// Merge overlays over onto base. Non-zero fields in over win; zero-value
// fields fall through to base. It is used both to layer the working
// directory config over the global one and to let CLI flags win over files.
func Merge(base *Config, over Config) Config {
	result := over
	if base == nil {
		return result
	}

	if result.DataDir == "" {
		result.DataDir = base.DataDir
	}
	if result.OutputFormat == "" {
		result.OutputFormat = base.OutputFormat
	}
	if result.Listen == "" {
		result.Listen = base.Listen
	}
	if result.DefaultYear == 0 {
		result.DefaultYear = base.DefaultYear
	}
	if result.DefaultArea == "" {
		result.DefaultArea = base.DefaultArea
	}

	if result.Mortality.YearPolicy == "" {
		result.Mortality.YearPolicy = base.Mortality.YearPolicy
	}
	if result.Mortality.FixedYear == 0 {
		result.Mortality.FixedYear = base.Mortality.FixedYear
	}
	if result.Mortality.SexTotal == "" {
		result.Mortality.SexTotal = base.Mortality.SexTotal
	}

	if result.AutoAdvance.Interval == "" {
		result.AutoAdvance.Interval = base.AutoAdvance.Interval
	}
	if result.AutoAdvance.MaxTicks == nil {
		result.AutoAdvance.MaxTicks = base.AutoAdvance.MaxTicks
	}

	if len(base.Datasets) > 0 {
		merged := maps.Clone(base.Datasets)
		for id, dc := range over.Datasets {
			merged[id] = mergeDataset(base.Datasets[id], dc)
		}
		result.Datasets = merged
	}
	return result
}

func mergeDataset(base, over DatasetConfig) DatasetConfig {
	if over.Path == "" {
		over.Path = base.Path
	}
	c := &over.Columns
	if c.Area == "" {
		c.Area = base.Columns.Area
	}
	if c.Year == "" {
		c.Year = base.Columns.Year
	}
	if c.Location == "" {
		c.Location = base.Columns.Location
	}
	if c.Value == "" {
		c.Value = base.Columns.Value
	}
	if c.Sex == "" {
		c.Sex = base.Columns.Sex
	}
	return over
}

// Settings turns the config into dashboard settings, starting from the
// defaults and applying every field that is set.
func (c *Config) Settings() (dashboard.Settings, error) {
	s := dashboard.DefaultSettings()

	if c.DataDir != "" {
		s.DataDir = c.DataDir
	}
	if c.DefaultYear != 0 {
		s.Defaults.Year = c.DefaultYear
	}
	if c.DefaultArea != "" {
		area, err := selection.ParseArea(c.DefaultArea)
		if err != nil {
			return s, fmt.Errorf("default_area: %w", err)
		}
		s.Defaults.Area = area
	}

	mode, err := pipeline.ParseYearMode(c.Mortality.YearPolicy)
	if err != nil {
		return s, fmt.Errorf("mortality.year_policy: %w", err)
	}
	s.Mortality.Mode = mode
	if c.Mortality.FixedYear != 0 {
		s.Mortality.FixedYear = c.Mortality.FixedYear
	}
	if c.Mortality.SexTotal != "" {
		src := s.Sources[dataset.Mortality]
		src.Schema.SexValue = c.Mortality.SexTotal
		s.Sources[dataset.Mortality] = src
	}

	if c.AutoAdvance.Interval != "" {
		d, err := time.ParseDuration(c.AutoAdvance.Interval)
		if err != nil {
			return s, fmt.Errorf("auto_advance.interval: %w", err)
		}
		s.AutoAdvance.Interval = d
	}
	if c.AutoAdvance.MaxTicks != nil {
		s.AutoAdvance.MaxTicks = *c.AutoAdvance.MaxTicks
	}

	for name, dc := range c.Datasets {
		id := dataset.ID(name)
		src, ok := s.Sources[id]
		if !ok {
			return s, fmt.Errorf("datasets.%s: unknown dataset", name)
		}
		if dc.Path != "" {
			src.Path = dc.Path
		}
		applyColumns(&src.Schema, dc.Columns)
		s.Sources[id] = src
	}
	return s, nil
}

func applyColumns(schema *dataset.Schema, cols ColumnsConfig) {
	if cols.Area != "" && schema.AreaCol != "" {
		schema.AreaCol = cols.Area
	}
	if cols.Year != "" {
		schema.YearCol = cols.Year
	}
	if cols.Location != "" {
		schema.LocationCol = cols.Location
	}
	if cols.Value != "" {
		schema.ValueCol = cols.Value
	}
	if cols.Sex != "" && schema.SexCol != "" {
		schema.SexCol = cols.Sex
	}
}
