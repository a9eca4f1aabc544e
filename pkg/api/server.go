// Package api exposes the search core over HTTP: the global search
// endpoint consumed by the presentation layer, plus health, stats, cache
// management and a WebSocket change feed.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/realtime"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

type Server struct {
	service *search.Service
	store   *storage.Store
	hub     *realtime.Hub
	logger  *log.Logger
}

func NewServer(service *search.Service, store *storage.Store, hub *realtime.Hub) *Server {
	return &Server{
		service: service,
		store:   store,
		hub:     hub,
		logger:  log.ForSource("api"),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.writeJSON(w, status, response)
}

func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
