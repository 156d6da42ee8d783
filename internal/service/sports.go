package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/season"
	"github.com/fortuna/athena/internal/store"
)

// SportService handles sport reads and season lookups
type SportService struct {
	repo  store.Repository
	cache Cache
	loc   *time.Location
}

// NewSportService creates a new sport service. Dates are classified in loc.
func NewSportService(repo store.Repository, c Cache, loc *time.Location) *SportService {
	if loc == nil {
		loc = time.UTC
	}
	return &SportService{repo: repo, cache: c, loc: loc}
}

// ListSports returns every stored league
func (s *SportService) ListSports(ctx context.Context) ([]map[string]any, error) {
	return readThrough(ctx, s.cache, cache.SportsKey(), func(ctx context.Context) ([]map[string]any, error) {
		sports, err := s.repo.ListSports(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching sports: %w", err)
		}
		return toMaps(sports), nil
	})
}

// GetSport returns one league
func (s *SportService) GetSport(ctx context.Context, leagueCode string) (map[string]any, error) {
	return readThrough(ctx, s.cache, cache.SportKey(leagueCode), func(ctx context.Context) (map[string]any, error) {
		sport, err := s.repo.GetSport(ctx, leagueCode)
		if err != nil {
			return nil, fmt.Errorf("fetching sport %s: %w", leagueCode, err)
		}
		return sport.ToMap(), nil
	})
}

// SeasonInfo is the term a date falls in and the leagues playing then.
type SeasonInfo struct {
	Date    string           `json:"date"`
	Term    lookup.Term      `json:"term"`
	Leagues []map[string]any `json:"leagues"`
}

// Season classifies date and lists the stored leagues of that term.
func (s *SportService) Season(ctx context.Context, date time.Time) (*SeasonInfo, error) {
	term := season.Classify(date.In(s.loc))
	sports, err := s.repo.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching sports: %w", err)
	}

	info := &SeasonInfo{
		Date:    date.In(s.loc).Format("2006-01-02"),
		Term:    term,
		Leagues: []map[string]any{},
	}
	for _, sport := range sports {
		if sport.Term == term {
			info.Leagues = append(info.Leagues, sport.ToMap())
		}
	}
	return info, nil
}
