// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes watermap's dashboard as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveDataDir resolves a dataset directory to an absolute,
// symlink-resolved path. An empty path resolves fallback instead.
// It returns an error if the path does not exist or is not a directory.
func ResolveDataDir(path, fallback string) (string, error) {
	if path == "" {
		path = fallback
	}
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return absPath, nil
}
