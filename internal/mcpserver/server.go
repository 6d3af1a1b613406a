// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/watermap/internal/dashboard"
)

// New creates a new MCP server with watermap's tools registered. Tools
// recompute the dashboard from settings on every call.
func New(version string, settings dashboard.Settings) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "watermap",
		Title:   "Watermap: SDG 6 water and sanitation maps",
		Version: version,
	}, nil)

	registerTools(server, &tools{settings: settings})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, settings dashboard.Settings, transport mcp.Transport) error {
	server := New(version, settings)
	return server.Run(ctx, transport)
}
