package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	wmlog "github.com/davetashner/watermap/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
	logFormat  string
)

// rootCmd is the base command for watermap.
var rootCmd = &cobra.Command{
	Use:   "watermap",
	Short: "Map water, sanitation and health indicators by year and area",
	Long: `Watermap renders a dashboard of four SDG 6 choropleth maps: safely managed
drinking water, World Bank basic water access, mortality attributed to unsafe
water, sanitation and hygiene, and life expectancy. Each map is recomputed
from the dataset files for a chosen year (2000-2022) and area category
(URBAN, RURAL, ALLAREA).

Serve it interactively with 'watermap serve', export it with
'watermap render', or print per-panel statistics with 'watermap summary'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		format, err := wmlog.ParseFormat(logFormat)
		if err != nil {
			return exitError(ExitInvalidArgs, "watermap: %v", err)
		}
		wmlog.Setup(wmlog.Options{Verbose: verbose, Quiet: quiet, Format: format})
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml or .toml); default .watermap.yaml merged over the global config")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
