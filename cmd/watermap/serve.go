// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/watermap/internal/config"
	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/server"
)

// Serve-specific flag values.
var (
	serveListen string
	serveFlags  selectionFlags
)

// serveCmd runs the interactive dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Serve the dashboard with a year slider, area selector, and auto-advance
toggle. Every request re-reads the dataset files and recomputes the maps,
so edits to the data show up on the next page load.

--year and --area set the starting selection for new sessions.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default: "+server.DefaultAddr+")")
	serveFlags.register(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, cfg, err := resolveSettings(config.Config{
		DataDir: serveFlags.DataDir,
		Listen:  serveListen,
	})
	if err != nil {
		return err
	}
	sel, err := resolveSelection(settings.Defaults, serveFlags)
	if err != nil {
		return err
	}
	settings.Defaults = sel

	dash := dashboard.New(settings, nil)

	// Fail fast on unreadable datasets rather than on the first request.
	if _, err := dash.Recompute(cmd.Context(), sel); err != nil {
		return exitError(ExitLoadFailure, "watermap: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(dash, server.Options{
		Addr:        cfg.Listen,
		Defaults:    settings.Defaults,
		AutoAdvance: settings.AutoAdvance,
	})
	slog.Debug("serve settings", "data_dir", settings.DataDir, "year", sel.Year, "area", sel.Area,
		"mortality_policy", settings.Mortality.Mode, "interval", settings.AutoAdvance.Interval)
	return serve(ctx, srv)
}

// serve is swapped out in tests to avoid binding a port.
var serve = func(ctx context.Context, srv *server.Server) error {
	return srv.ListenAndServe(ctx)
}
