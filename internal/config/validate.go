package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/davetashner/watermap/internal/dataset"
	"github.com/davetashner/watermap/internal/output"
	"github.com/davetashner/watermap/internal/pipeline"
	"github.com/davetashner/watermap/internal/selection"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Listen != "" {
		if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
			errs = append(errs, fmt.Sprintf("listen: %v", err))
		}
	}

	if cfg.DefaultYear != 0 && !selection.ValidYear(cfg.DefaultYear) {
		errs = append(errs, fmt.Sprintf("default_year: must be between %d and %d, got %d",
			selection.MinYear, selection.MaxYear, cfg.DefaultYear))
	}

	if cfg.DefaultArea != "" {
		if _, err := selection.ParseArea(cfg.DefaultArea); err != nil {
			errs = append(errs, fmt.Sprintf("default_area: %v", err))
		}
	}

	if _, err := pipeline.ParseYearMode(cfg.Mortality.YearPolicy); err != nil {
		errs = append(errs, fmt.Sprintf("mortality.year_policy: %v", err))
	}
	if cfg.Mortality.FixedYear < 0 {
		errs = append(errs, fmt.Sprintf("mortality.fixed_year: must be positive, got %d", cfg.Mortality.FixedYear))
	}

	if cfg.AutoAdvance.Interval != "" {
		d, err := time.ParseDuration(cfg.AutoAdvance.Interval)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("auto_advance.interval: %v", err))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("auto_advance.interval: must be positive, got %s", d))
		}
	}
	if cfg.AutoAdvance.MaxTicks != nil && *cfg.AutoAdvance.MaxTicks < 0 {
		errs = append(errs, fmt.Sprintf("auto_advance.max_ticks: must be non-negative, got %d", *cfg.AutoAdvance.MaxTicks))
	}

	for _, name := range sortedDatasetNames(cfg.Datasets) {
		if !dataset.Known(dataset.ID(name)) {
			errs = append(errs, fmt.Sprintf("datasets.%s: unknown dataset (valid: %s)", name, datasetNames()))
			continue
		}
		dc := cfg.Datasets[name]
		schema := dataset.DefaultSchemas()[dataset.ID(name)]
		if dc.Columns.Area != "" && schema.AreaCol == "" {
			errs = append(errs, fmt.Sprintf("datasets.%s.columns.area: dataset has no area column", name))
		}
		if dc.Columns.Sex != "" && schema.SexCol == "" {
			errs = append(errs, fmt.Sprintf("datasets.%s.columns.sex: dataset has no sex column", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func datasetNames() string {
	ids := dataset.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
