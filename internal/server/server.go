// Package server exposes scene storage and rendering over HTTP.
//
// The API is small: scenes are uploaded as raw TOML manifests, stored under
// generated IDs, and rendered on demand in any supported output format.
// A one-shot render endpoint skips storage for stateless clients.
//
//	GET    /healthz                  liveness and version
//	POST   /api/render               render the request body, don't store it
//	GET    /api/scenes               list stored scenes
//	POST   /api/scenes               store a manifest, returns {id, name}
//	GET    /api/scenes/{id}          fetch the stored manifest
//	DELETE /api/scenes/{id}          remove a scene
//	GET    /api/scenes/{id}/render   render a stored scene
//
// Render endpoints accept format and scale query parameters. Artifacts are
// served from the runner's cache when the same scene and options were
// rendered before.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/svgsmith/svgsmith/pkg/pipeline"
	"github.com/svgsmith/svgsmith/pkg/store"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8710"

const shutdownTimeout = 10 * time.Second

// Config carries the server's collaborators. Zero fields get defaults.
type Config struct {
	Addr   string
	Store  store.Store
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Server serves the scene API.
type Server struct {
	addr   string
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server. A nil store falls back to in-memory storage and a
// nil runner to an uncached pipeline.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	return &Server{
		addr:   cfg.Addr,
		store:  cfg.Store,
		runner: cfg.Runner,
		logger: cfg.Logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRenderOnce)
		r.Route("/scenes", func(r chi.Router) {
			r.Get("/", s.handleListScenes)
			r.Post("/", s.handleCreateScene)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetScene)
				r.Delete("/", s.handleDeleteScene)
				r.Get("/render", s.handleRenderScene)
			})
		})
	})

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully. A nil
// error is returned on clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs one line per request through the server's logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
