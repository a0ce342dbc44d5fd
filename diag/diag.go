// Package diag exposes an opt-in HTTP endpoint for inspecting a running
// search, meant for local debugging rather than the UCI wire protocol.
package diag

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/SimjanovskiNikola/chesscore/search"
)

// StatsSource is polled for the latest completed search statistics.
type StatsSource interface {
	LastStats() search.Stats
}

// Server serves /healthz and /stats over HTTP.
type Server struct {
	mu     sync.RWMutex
	source StatsSource
	router *mux.Router
}

// NewServer builds a diagnostics server reading from source.
func NewServer(source StatsSource) *Server {
	s := &Server{source: source, router: mux.NewRouter()}
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats := s.source.LastStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
