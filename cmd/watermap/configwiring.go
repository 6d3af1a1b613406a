package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/watermap/internal/config"
	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/selection"
)

// selectionFlags holds the flags every dashboard command shares. Each
// command binds its own copy so flag state never leaks between commands.
type selectionFlags struct {
	DataDir string
	Year    int
	Area    string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.DataDir, "data-dir", "", "directory holding the dataset files (default: data)")
	cmd.Flags().IntVar(&f.Year, "year", 0, "year to map, 2000-2022 (default: configured default year)")
	cmd.Flags().StringVar(&f.Area, "area", "", "area category: URBAN, RURAL, or ALLAREA (default: configured default area)")
}

// loadFileConfig reads the explicit --config file, or else merges the
// working directory's .watermap.yaml over the global config.
func loadFileConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return mergeConfigs(globalCfg, repoCfg), nil
}

// mergeConfigs merges global and repo configs. Repo values take precedence.
func mergeConfigs(global, repo *config.Config) *config.Config {
	merged := config.Merge(global, *repo)
	return &merged
}

// resolveSettings layers flag values over the config files, validates the
// result, and converts it to dashboard settings.
func resolveSettings(flags config.Config) (dashboard.Settings, *config.Config, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return dashboard.Settings{}, nil, exitError(ExitInvalidArgs, "watermap: failed to load config (%v)", err)
	}
	merged := config.Merge(fileCfg, flags)
	if err := config.Validate(&merged); err != nil {
		return dashboard.Settings{}, nil, exitError(ExitInvalidArgs, "watermap: %v", err)
	}
	settings, err := merged.Settings()
	if err != nil {
		return dashboard.Settings{}, nil, exitError(ExitInvalidArgs, "watermap: %v", err)
	}
	return settings, &merged, nil
}

// resolveSelection applies --year and --area over the configured defaults.
func resolveSelection(defaults selection.Selection, f selectionFlags) (selection.Selection, error) {
	sel := defaults
	if f.Year != 0 {
		sel.Year = f.Year
	}
	if f.Area != "" {
		area, err := selection.ParseArea(f.Area)
		if err != nil {
			return sel, exitError(ExitInvalidArgs, "watermap: %v", err)
		}
		sel.Area = area
	}
	if err := sel.Validate(); err != nil {
		return sel, exitError(ExitInvalidArgs, "watermap: %v", err)
	}
	return sel, nil
}
