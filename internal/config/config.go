// Package config handles .watermap.yaml configuration files.
package config

// Config represents the contents of a .watermap.yaml (or TOML) file.
type Config struct {
	DataDir      string                   `yaml:"data_dir,omitempty" toml:"data_dir"`
	OutputFormat string                   `yaml:"output_format,omitempty" toml:"output_format"`
	Listen       string                   `yaml:"listen,omitempty" toml:"listen"`
	DefaultYear  int                      `yaml:"default_year,omitempty" toml:"default_year"`
	DefaultArea  string                   `yaml:"default_area,omitempty" toml:"default_area"`
	Mortality    MortalityConfig          `yaml:"mortality,omitempty" toml:"mortality"`
	AutoAdvance  AutoAdvanceConfig        `yaml:"auto_advance,omitempty" toml:"auto_advance"`
	Datasets     map[string]DatasetConfig `yaml:"datasets,omitempty" toml:"datasets"`
}

// MortalityConfig controls which rows of the mortality table are mapped.
type MortalityConfig struct {
	// YearPolicy is "selected" (follow the slider) or "fixed".
	YearPolicy string `yaml:"year_policy,omitempty" toml:"year_policy"`
	FixedYear  int    `yaml:"fixed_year,omitempty" toml:"fixed_year"`
	// SexTotal is the sex column value meaning both sexes.
	SexTotal string `yaml:"sex_total,omitempty" toml:"sex_total"`
}

// AutoAdvanceConfig controls the year auto-advance timer.
type AutoAdvanceConfig struct {
	Interval string `yaml:"interval,omitempty" toml:"interval"`
	// MaxTicks caps advances per activation; 0 means unlimited. Nil keeps
	// the default.
	MaxTicks *int `yaml:"max_ticks,omitempty" toml:"max_ticks"`
}

// DatasetConfig overrides where a dataset lives and what its columns are
// called. Keys in Config.Datasets are dataset IDs.
type DatasetConfig struct {
	Path    string        `yaml:"path,omitempty" toml:"path"`
	Columns ColumnsConfig `yaml:"columns,omitempty" toml:"columns"`
}

// ColumnsConfig renames the columns a dataset is read by.
type ColumnsConfig struct {
	Area     string `yaml:"area,omitempty" toml:"area"`
	Year     string `yaml:"year,omitempty" toml:"year"`
	Location string `yaml:"location,omitempty" toml:"location"`
	Value    string `yaml:"value,omitempty" toml:"value"`
	Sex      string `yaml:"sex,omitempty" toml:"sex"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".watermap.yaml"
