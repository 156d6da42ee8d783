package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, deps Deps, corsOrigins []string) *Server {
	handler := NewHandler(deps)

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: NewRouter(handler, corsOrigins),
		},
	}
}

// NewRouter mounts every route on a fresh router.
func NewRouter(handler *Handler, corsOrigins []string) *mux.Router {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware(corsOrigins))

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Sports
	api.HandleFunc("/sports", handler.GetSports).Methods("GET")
	api.HandleFunc("/sports/{leagueCode}", handler.GetSport).Methods("GET")
	api.HandleFunc("/sports/{leagueCode}/standings", handler.GetStandings).Methods("GET")
	api.HandleFunc("/sports/{leagueCode}/games", handler.GetGames).Methods("GET")
	api.HandleFunc("/sports/{leagueCode}/team-code", handler.GetHomeTeamCode).Methods("GET")
	api.HandleFunc("/season", handler.GetSeason).Methods("GET")

	api.HandleFunc("/standings", handler.GetAllStandings).Methods("GET")
	api.HandleFunc("/games", handler.GetAllGames).Methods("GET")
	api.HandleFunc("/rosters/{docID}", handler.GetRoster).Methods("GET")

	// Scrape jobs
	api.HandleFunc("/scrape", handler.HandleScrapeRequest).Methods("POST")
	api.HandleFunc("/scrape/status", handler.HandleScrapeStatus).Methods("GET")

	return router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
