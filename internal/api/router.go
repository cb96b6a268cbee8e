package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Frame endpoints
		r.Route("/frames", func(r chi.Router) {
			r.Get("/", s.handleListFrames)
			r.Get("/stats", s.handleFrameStats)

			r.Route("/{address}", func(r chi.Router) {
				r.Delete("/", s.handleDeleteFrame)
				r.Post("/image", s.handleSubmitImage)
				r.Get("/vector", s.handleGetVector)
				r.Get("/preview", s.handleGetPreview)
				r.Get("/bitmap", s.handleGetBitmap)
			})
		})
	})

	return r
}
