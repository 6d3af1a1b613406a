// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP. Every page or panel
// request recomputes the dashboard from the datasets on disk; the only
// state kept between requests is each viewer's session.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetashner/watermap/internal/dashboard"
	"github.com/davetashner/watermap/internal/selection"
	"github.com/davetashner/watermap/internal/session"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// CookieName holds the session ID.
const CookieName = "watermap_session"

// Recomputer produces a dashboard for a selection.
type Recomputer interface {
	Recompute(ctx context.Context, sel selection.Selection) (*dashboard.RenderResult, error)
}

// Compile-time interface check.
var _ Recomputer = (*dashboard.Dashboard)(nil)

// Options configures a Server.
type Options struct {
	Addr            string
	Defaults        selection.Selection
	AutoAdvance     session.Options
	ShutdownTimeout time.Duration
}

// Server routes dashboard requests.
type Server struct {
	dash     Recomputer
	sessions *session.Store
	opts     Options
	router   chi.Router
}

// New creates a Server. Zero-valued options take their defaults.
func New(dash Recomputer, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Defaults == (selection.Selection{}) {
		opts.Defaults = selection.Default()
	}
	if opts.AutoAdvance.Interval <= 0 {
		opts.AutoAdvance.Interval = session.DefaultInterval
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		dash:     dash,
		sessions: session.NewStore(opts.Defaults),
		opts:     opts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/panels", s.handlePanels)
		r.Post("/session", s.handleUpdateSession)
		r.Post("/tick", s.handleTick)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Sessions returns the session store.
func (s *Server) Sessions() *session.Store { return s.sessions }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving dashboard", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	slog.Info("shutting down", "addr", s.opts.Addr)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// requestLogger logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
