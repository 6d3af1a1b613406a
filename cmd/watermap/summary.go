package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/watermap/internal/config"
	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/report"
)

// Summary-specific flag values.
var (
	summaryJSON     bool
	summarySections string
	summaryFlags    selectionFlags
)

// summaryCmd prints per-panel statistics to the terminal.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-panel statistics for a year and area",
	Long: `Recompute the dashboard and print, for each map, the number of rows
mapped, missing values, value range, the top countries, and any country
names the map cannot place.

Sections: ` + strings.Join(report.List(), ", "),
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output machine-readable JSON")
	summaryCmd.Flags().StringVar(&summarySections, "sections", "", "comma-separated list of sections to include (default: all)")
	summaryFlags.register(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	settings, _, err := resolveSettings(config.Config{DataDir: summaryFlags.DataDir})
	if err != nil {
		return err
	}
	sel, err := resolveSelection(settings.Defaults, summaryFlags)
	if err != nil {
		return err
	}

	var sections []string
	if summarySections != "" {
		for _, s := range strings.Split(summarySections, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
	}

	res, err := dashboard.New(settings, nil).Recompute(cmd.Context(), sel)
	if err != nil {
		return exitError(ExitLoadFailure, "watermap: %v", err)
	}

	w := cmd.OutOrStdout()
	if summaryJSON {
		err = report.RenderJSON(res, sections, w)
	} else {
		err = report.RenderText(res, sections, w)
	}
	if err != nil {
		return fmt.Errorf("watermap: summary failed (%v)", err)
	}
	return nil
}
