// Package web provides the HTTP server for the emotion recognition
// service: the upload page, the form endpoints it posts to, and the
// JSON API for asynchronous analyses.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/web/handlers"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *config.Config
	engine     *engine.Engine
	router     *chi.Mux
	httpServer *http.Server
	jobManager *handlers.JobManager
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config) (*Server, error) {
	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return nil, fmt.Errorf("creating engine client: %w", err)
	}

	s := &Server{
		config:     cfg,
		engine:     eng,
		router:     chi.NewRouter(),
		jobManager: handlers.NewJobManager(),
	}

	// Global middleware
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Logger)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(30 * time.Minute))
	s.router.Use(middleware.CORS(cfg.Web.AllowedOrigins))
	s.router.Use(middleware.SecurityHeaders())

	// Setup routes
	s.setupRoutes()

	return s, nil
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Web.Host, s.config.Web.Port)

	// Video uploads and engine processing run for minutes, so only the
	// header read is tightly bounded.
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting web server on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the web server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router returns the chi router for testing purposes
func (s *Server) Router() *chi.Mux {
	return s.router
}
