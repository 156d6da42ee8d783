// Package memstore is an in-memory store.Repository for tests and dry
// runs of the scraper CLI.
package memstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/fortuna/athena/internal/store"
)

// Store keeps every record keyed the same way the database does.
type Store struct {
	mu        sync.RWMutex
	sports    map[string]store.Sport
	standings map[string][]store.Standing
	games     map[string]store.Game
	rosters   map[string]store.Roster
}

var _ store.Repository = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		sports:    make(map[string]store.Sport),
		standings: make(map[string][]store.Standing),
		games:     make(map[string]store.Game),
		rosters:   make(map[string]store.Roster),
	}
}

func (s *Store) UpsertSports(_ context.Context, sports []store.Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sport := range sports {
		s.sports[sport.LeagueCode] = sport
	}
	return nil
}

func (s *Store) ListSports(_ context.Context) ([]store.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.Sport, 0, len(s.sports))
	for _, sport := range s.sports {
		out = append(out, sport)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeagueCode < out[j].LeagueCode })
	return out, nil
}

func (s *Store) GetSport(_ context.Context, leagueCode string) (*store.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sport, ok := s.sports[leagueCode]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sport, nil
}

func (s *Store) ReplaceStandings(_ context.Context, leagueCode string, standings []store.Standing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standings[leagueCode] = slices.Clone(standings)
	return nil
}

func (s *Store) GetStandings(_ context.Context, leagueCode string) ([]store.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.standings[leagueCode]), nil
}

func (s *Store) GetAllStandings(_ context.Context) ([]store.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	leagues := make([]string, 0, len(s.standings))
	for code := range s.standings {
		leagues = append(leagues, code)
	}
	sort.Strings(leagues)

	var out []store.Standing
	for _, code := range leagues {
		out = append(out, s.standings[code]...)
	}
	return out, nil
}

func (s *Store) UpsertGames(_ context.Context, games []store.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range games {
		s.games[g.GameCode] = g
	}
	return nil
}

func (s *Store) GetGames(_ context.Context, leagueCode string) ([]store.Game, error) {
	return s.filterGames(func(g store.Game) bool { return g.LeagueCode == leagueCode }), nil
}

func (s *Store) GetAllGames(_ context.Context) ([]store.Game, error) {
	return s.filterGames(func(store.Game) bool { return true }), nil
}

func (s *Store) filterGames(keep func(store.Game) bool) []store.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []store.Game
	for _, g := range s.games {
		if keep(g) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GameDate.Equal(out[j].GameDate) {
			return out[i].GameDate.Before(out[j].GameDate)
		}
		return strings.Compare(out[i].GameCode, out[j].GameCode) < 0
	})
	return out
}

func (s *Store) UpsertRoster(_ context.Context, roster store.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	roster.Players = slices.Clone(roster.Players)
	s.rosters[roster.DocID] = roster
	return nil
}

func (s *Store) GetRoster(_ context.Context, docID string) (*store.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roster, ok := s.rosters[docID]
	if !ok {
		return nil, store.ErrNotFound
	}
	roster.Players = slices.Clone(roster.Players)
	return &roster, nil
}
