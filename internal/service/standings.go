package service

import (
	"context"
	"fmt"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/normalize"
	"github.com/fortuna/athena/internal/store"
)

// StandingService handles league table reads
type StandingService struct {
	repo  store.Repository
	cache Cache
	home  lookup.School
}

// NewStandingService creates a new standings service for the home school
func NewStandingService(repo store.Repository, c Cache, home lookup.School) *StandingService {
	return &StandingService{repo: repo, cache: c, home: home}
}

// GetStandings returns the table of one league in stored order
func (s *StandingService) GetStandings(ctx context.Context, leagueCode string) ([]map[string]any, error) {
	return readThrough(ctx, s.cache, cache.StandingsKey(leagueCode), func(ctx context.Context) ([]map[string]any, error) {
		standings, err := s.repo.GetStandings(ctx, leagueCode)
		if err != nil {
			return nil, fmt.Errorf("fetching standings: %w", err)
		}
		return toMaps(standings), nil
	})
}

// GetAllStandings returns every stored standing grouped by league
func (s *StandingService) GetAllStandings(ctx context.Context) ([]map[string]any, error) {
	return readThrough(ctx, s.cache, cache.AllStandingsKey(), func(ctx context.Context) ([]map[string]any, error) {
		standings, err := s.repo.GetAllStandings(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching standings: %w", err)
		}
		return toMaps(standings), nil
	})
}

// HomeTeamCode returns the home school's stats-site team id in a league,
// or store.ErrNotFound when its standings carry none.
func (s *StandingService) HomeTeamCode(ctx context.Context, leagueCode string) (string, error) {
	code, err := readThrough(ctx, s.cache, cache.TeamCodeKey(leagueCode), func(ctx context.Context) (string, error) {
		standings, err := s.repo.GetStandings(ctx, leagueCode)
		if err != nil {
			return "", fmt.Errorf("fetching standings: %w", err)
		}
		id, _ := normalize.HomeTeamID(standings, s.home.Name)
		return id, nil
	})
	if err != nil {
		return "", err
	}
	if code == "" {
		return "", fmt.Errorf("team code of %s in %s: %w", s.home.Name, leagueCode, store.ErrNotFound)
	}
	return code, nil
}
