package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/UsmanZaka51/emotion-api/internal/web/handlers"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	statsHandler := handlers.NewStatsHandler(s.config, s.jobManager)
	registerHandler := handlers.NewRegisterHandler(s.config, statsHandler)
	analyzeHandler := handlers.NewAnalyzeHandler(s.config)
	processHandler := handlers.NewProcessHandler(s.config)
	analysesHandler := handlers.NewAnalysesHandler(s.config, s.jobManager)
	facesHandler := handlers.NewFacesHandler(s.config)
	configHandler := handlers.NewConfigHandler(s.config)

	// Health check endpoint (no engine client required)
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// Form endpoints the upload page posts to
	s.router.Group(func(r chi.Router) {
		r.Use(middleware.WithEngine(s.engine))
		r.Post("/admin/add-face", registerHandler.AddFace)
		r.Post("/process-video", analyzeHandler.ProcessVideo)
		r.Post("/process", processHandler.Process)
	})

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithEngine(s.engine))
			r.Get("/faces", facesHandler.List)
			r.Get("/stats", statsHandler.Get)
		})

		r.Get("/config", configHandler.Get)

		// Analysis job routes (background processing with SSE progress)
		r.Post("/analyses", analysesHandler.Start)
		r.Get("/analyses/{jobId}", analysesHandler.Status)
		r.Get("/analyses/{jobId}/events", analysesHandler.Events)
		r.Delete("/analyses/{jobId}", analysesHandler.Cancel)
	})

	// Upload page and its assets
	s.router.Get("/", s.servePage)
	s.router.Get("/assets/*", s.serveAsset)
}
