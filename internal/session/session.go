// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package session holds the per-viewer dashboard state: the current
// selection and the auto-advance counter. It is the only mutable state in
// watermap; the render pipeline itself is a pure function of the selection.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/watermap/internal/selection"
)

// Default auto-advance settings.
const (
	DefaultInterval = 2 * time.Second
	DefaultMaxTicks = 100
)

// Options bounds the auto-advance timer.
type Options struct {
	Interval time.Duration
	MaxTicks int
}

// DefaultOptions returns the built-in timer settings.
func DefaultOptions() Options {
	return Options{Interval: DefaultInterval, MaxTicks: DefaultMaxTicks}
}

// State is one viewer's dashboard state.
type State struct {
	Year        int            `json:"year"`
	Area        selection.Area `json:"area"`
	AutoAdvance bool           `json:"auto_advance"`
	Ticks       int            `json:"ticks"`
}

// NewState returns a state positioned at sel with auto-advance off.
func NewState(sel selection.Selection) State {
	return State{Year: sel.Year, Area: sel.Area}
}

// Selection returns the (year, area) pair to render.
func (s State) Selection() selection.Selection {
	return selection.Selection{Year: s.Year, Area: s.Area}
}

// Tick advances the year by one when auto-advance is on and fewer than
// maxTicks ticks have fired, wrapping from 2022 to 2000. It reports whether
// the state changed. A non-positive maxTicks means no limit.
func (s *State) Tick(maxTicks int) bool {
	if !s.AutoAdvance {
		return false
	}
	if maxTicks > 0 && s.Ticks >= maxTicks {
		return false
	}
	s.Year = selection.NextYear(s.Year)
	s.Ticks++
	return true
}

// SetAutoAdvance toggles auto-advance. Turning it on always restarts the
// tick budget, including when it is already on but exhausted.
func (s *State) SetAutoAdvance(on bool) {
	if on {
		s.Ticks = 0
	}
	s.AutoAdvance = on
}

// Store keeps states keyed by session ID.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
	initial  selection.Selection
	newID    func() string
}

// NewStore returns an empty store whose new sessions start at initial.
func NewStore(initial selection.Selection) *Store {
	return &Store{
		sessions: make(map[string]*State),
		initial:  initial,
		newID:    uuid.NewString,
	}
}

// Create starts a new session and returns its ID and initial state.
func (st *Store) Create() (string, State) {
	st.mu.Lock()
	defer st.mu.Unlock()

	id := st.newID()
	s := NewState(st.initial)
	st.sessions[id] = &s
	return id, s
}

// Get returns a copy of the session state.
func (st *Store) Get(id string) (State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return State{}, false
	}
	return *s, true
}

// Update applies fn to the session under the store lock and returns the
// resulting state.
func (st *Store) Update(id string, fn func(*State)) (State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return State{}, false
	}
	fn(s)
	return *s, true
}

// Tick advances the session's auto-advance counter. The second result
// reports whether the year changed; the third whether the session exists.
func (st *Store) Tick(id string, maxTicks int) (State, bool, bool) {
	var advanced bool
	s, ok := st.Update(id, func(s *State) {
		advanced = s.Tick(maxTicks)
	})
	return s, advanced, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
