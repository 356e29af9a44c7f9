// Package server hosts the reader UI and its JSON API.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/arvidh/docread/internal/reader"
	"github.com/arvidh/docread/internal/watch"
)

// Config holds server configuration.
type Config struct {
	Port       int
	AllowAll   bool // allow all CORS origins (dev mode)
	DebounceMS int  // search input debounce handed to the UI
}

// Server is the docread HTTP server.
type Server struct {
	cfg        Config
	rd         *reader.Reader
	hub        *watch.Hub // nil unless watch mode is enabled
	instanceID string
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server. hub may be nil when live reload is disabled.
func New(cfg Config, rd *reader.Reader, hub *watch.Hub) *Server {
	s := &Server{
		cfg:        cfg,
		rd:         rd,
		hub:        hub,
		instanceID: uuid.New().String(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","instance":%q}`, s.instanceID)
	})

	// Reader API
	reader.RegisterRoutes(r, s.rd)

	// Live reload socket, dev mode only.
	if s.hub != nil {
		r.Get("/ws", s.hub.Handler())
	}

	// UI assets.
	s.registerAssets(r)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Reader returns the reader backing this server.
func (s *Server) Reader() *reader.Reader { return s.rd }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("docread listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
