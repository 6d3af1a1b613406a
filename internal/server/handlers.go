// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/davetashner/watermap/internal/output"
	"github.com/davetashner/watermap/internal/selection"
	"github.com/davetashner/watermap/internal/session"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type tickResponse struct {
	State    session.State `json:"state"`
	Advanced bool          `json:"advanced"`
}

// sessionUpdate is the body of POST /api/session. Absent fields are left
// unchanged.
type sessionUpdate struct {
	Year        *int    `json:"year"`
	Area        *string `json:"area"`
	AutoAdvance *bool   `json:"auto_advance"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id, state := s.session(w, r)
	q := r.URL.Query()
	sel, err := parseSelection(q, state.Selection())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	if q.Has("year") || q.Has("area") {
		state, _ = s.sessions.Update(id, func(st *session.State) {
			st.Year = sel.Year
			st.Area = sel.Area
		})
	}

	res, err := s.dash.Recompute(r.Context(), sel)
	if err != nil {
		slog.Error("recompute failed", "year", sel.Year, "area", sel.Area, "error", err)
		writeError(w, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	err = output.WritePage(&buf, res, output.PageOptions{
		Interactive:  true,
		AutoAdvance:  state.AutoAdvance,
		TickInterval: s.opts.AutoAdvance.Interval,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePanels(w http.ResponseWriter, r *http.Request) {
	_, state := s.session(w, r)
	sel, err := parseSelection(r.URL.Query(), state.Selection())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	res, err := s.dash.Recompute(r.Context(), sel)
	if err != nil {
		slog.Error("recompute failed", "year", sel.Year, "area", sel.Area, "error", err)
		writeError(w, http.StatusInternalServerError, "load_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, _ := s.session(w, r)

	var upd sessionUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_body", fmt.Sprintf("decode session update: %v", err))
		return
	}

	var area selection.Area
	if upd.Year != nil && !selection.ValidYear(*upd.Year) {
		writeError(w, http.StatusBadRequest, "validation_failed", yearRangeMessage(*upd.Year))
		return
	}
	if upd.Area != nil {
		a, err := selection.ParseArea(*upd.Area)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		area = a
	}

	state, _ := s.sessions.Update(id, func(st *session.State) {
		if upd.Year != nil {
			st.Year = *upd.Year
		}
		if upd.Area != nil {
			st.Area = area
		}
		if upd.AutoAdvance != nil {
			st.SetAutoAdvance(*upd.AutoAdvance)
		}
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	id, _ := s.session(w, r)
	state, advanced, _ := s.sessions.Tick(id, s.opts.AutoAdvance.MaxTicks)
	if advanced {
		slog.Debug("auto-advanced", "session", id, "year", state.Year, "ticks", state.Ticks)
	}
	writeJSON(w, http.StatusOK, tickResponse{State: state, Advanced: advanced})
}

// session returns the caller's session, creating one and setting the
// cookie when the request carries no known session ID.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, session.State) {
	if c, err := r.Cookie(CookieName); err == nil {
		if st, ok := s.sessions.Get(c.Value); ok {
			return c.Value, st
		}
	}
	id, st := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, st
}

// parseSelection reads year and area from the query, falling back to
// fallback for absent parameters.
func parseSelection(q url.Values, fallback selection.Selection) (selection.Selection, error) {
	sel := fallback
	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return sel, fmt.Errorf("year must be an integer, got %q", raw)
		}
		if !selection.ValidYear(year) {
			return sel, errors.New(yearRangeMessage(year))
		}
		sel.Year = year
	}
	if raw := strings.TrimSpace(q.Get("area")); raw != "" {
		area, err := selection.ParseArea(raw)
		if err != nil {
			return sel, err
		}
		sel.Area = area
	}
	return sel, nil
}

func yearRangeMessage(year int) string {
	return fmt.Sprintf("year must be between %d and %d, got %d", selection.MinYear, selection.MaxYear, year)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response", "error", err)
		http.Error(w, `{"error":"encode_failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
