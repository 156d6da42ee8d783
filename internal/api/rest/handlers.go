package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/scrapejob"
	"github.com/fortuna/athena/internal/service"
	"github.com/fortuna/athena/internal/store"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// JobQueue accepts scrape jobs. *scrapejob.Service implements it.
type JobQueue interface {
	Enqueue(ctx context.Context, req scrapejob.Request) (*scrapejob.Job, error)
	GetStatus(ctx context.Context) (*scrapejob.StatusSummary, error)
}

// Deps are the collaborators the handlers read through.
type Deps struct {
	Repo     store.Repository
	Cache    service.Cache
	Home     lookup.School
	Location *time.Location
	Jobs     JobQueue
	Checks   map[string]HealthChecker
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	sportService    *service.SportService
	standingService *service.StandingService
	gameService     *service.GameService
	rosterService   *service.RosterService
	jobs            JobQueue
	checks          map[string]HealthChecker
	loc             *time.Location
}

// NewHandler creates a new handler
func NewHandler(deps Deps) *Handler {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		sportService:    service.NewSportService(deps.Repo, deps.Cache, loc),
		standingService: service.NewStandingService(deps.Repo, deps.Cache, deps.Home),
		gameService:     service.NewGameService(deps.Repo, deps.Cache),
		rosterService:   service.NewRosterService(deps.Repo, deps.Cache),
		jobs:            deps.Jobs,
		checks:          deps.Checks,
		loc:             loc,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string, len(h.checks))
	for name, c := range h.checks {
		if err := c.HealthCheck(r.Context()); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}
	respondJSON(w, status, map[string]interface{}{
		"status":  state,
		"service": "athena",
		"checks":  checks,
	})
}

// GetSports returns every stored league
func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.sportService.ListSports(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sports", err)
		return
	}

	respondJSON(w, http.StatusOK, sports)
}

// GetSport returns one league
func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	leagueCode := mux.Vars(r)["leagueCode"]

	sport, err := h.sportService.GetSport(r.Context(), leagueCode)
	if err != nil {
		respondLookupError(w, "Sport not found", "Failed to fetch sport", err)
		return
	}

	respondJSON(w, http.StatusOK, sport)
}

// GetStandings returns the league table of one league
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	leagueCode := mux.Vars(r)["leagueCode"]

	standings, err := h.standingService.GetStandings(r.Context(), leagueCode)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch standings", err)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// GetAllStandings returns every stored standing
func (h *Handler) GetAllStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingService.GetAllStandings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch standings", err)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// GetHomeTeamCode returns the home school's stats-site team id in a league
func (h *Handler) GetHomeTeamCode(w http.ResponseWriter, r *http.Request) {
	leagueCode := mux.Vars(r)["leagueCode"]

	code, err := h.standingService.HomeTeamCode(r.Context(), leagueCode)
	if err != nil {
		respondLookupError(w, "No team code for this league", "Failed to fetch team code", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"league_code": leagueCode,
		"team_code":   code,
	})
}

// GetGames returns the games of one league
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	leagueCode := mux.Vars(r)["leagueCode"]

	games, err := h.gameService.GetGames(r.Context(), leagueCode)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetAllGames returns every stored game
func (h *Handler) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetAllGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetRoster returns one stored roster document
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["docID"]

	roster, err := h.rosterService.GetRoster(r.Context(), docID)
	if err != nil {
		respondLookupError(w, "Roster not found", "Failed to fetch roster", err)
		return
	}

	respondJSON(w, http.StatusOK, roster)
}

// GetSeason returns the term a date falls in and the leagues playing then
func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	date := time.Now().In(h.loc)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
			return
		}
		date = parsed
	}

	info, err := h.sportService.Season(r.Context(), date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to classify season", err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}

// respondLookupError maps store.ErrNotFound to 404 and anything else to 500.
func respondLookupError(w http.ResponseWriter, notFound, failed string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, notFound, err)
		return
	}
	respondError(w, http.StatusInternalServerError, failed, err)
}
