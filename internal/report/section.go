// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package report renders a recomputed dashboard for the terminal. Each
// section is registered once and analyzes the dashboard before rendering a
// focused table.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/davetashner/watermap/internal/dashboard"
)

// ErrNoData indicates that nothing in the dashboard feeds a section,
// typically because every panel showed the no-data notice.
var ErrNoData = errors.New("no data for section")

// Section is a pluggable report section.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "panels").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze prepares internal state for rendering.
	// Returns ErrNoData (wrapped) if the dashboard has nothing to report.
	Analyze(res *dashboard.RenderResult) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
