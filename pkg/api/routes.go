package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the chi router with all API routes registered.
// The Recoverer middleware keeps a panicking handler from taking the
// whole server down.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(CorsMiddleware)

	r.Get("/health", s.HandleHealth)
	r.Get("/api/search/global", s.HandleGlobalSearch)
	r.Delete("/api/search/cache", s.HandleClearCache)
	r.Get("/api/stats", s.HandleStats)
	r.Get("/api/updates", s.HandleUpdates)

	return r
}
