// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/watermap/internal/config"
	"github.com/davetashner/watermap/internal/mcpserver"
)

var mcpDataDir string

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running watermap as an MCP server, exposing the dashboard to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing watermap's tools:
  - render_dashboard:    Recompute the four maps for a year and area
  - summarize_dashboard: Per-panel statistics and top countries
  - list_areas:          Area categories and the year range

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, _, err := resolveSettings(config.Config{DataDir: mcpDataDir})
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, settings, &mcp.StdioTransport{})
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpDataDir, "data-dir", "", "directory holding the dataset files (default: data)")
	mcpCmd.AddCommand(mcpServeCmd)
}
