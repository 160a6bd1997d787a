// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/roster"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	// ListLegends returns the roster shaped for version and unit.
	ListLegends(ctx context.Context, version model.Version, unit model.Unit) ([]roster.Legend, error)
	// DefaultVersion is served on the unversioned /legends/ route.
	DefaultVersion() model.Version
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	legendsHandler *LegendsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(nil),
		statsHandler:   NewStatsHandler(statsProvider),
		legendsHandler: NewLegendsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/legends/", MetricsMiddleware(s.legendsHandler.HandleDefault, "legends"))
	for _, v := range model.Versions() {
		path := "/" + string(v) + "/legends/"
		mux.HandleFunc(path, MetricsMiddleware(s.legendsHandler.HandleVersion(v), "legends_"+string(v)))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
