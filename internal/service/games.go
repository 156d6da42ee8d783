package service

import (
	"context"
	"fmt"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/store"
)

// GameService handles game reads
type GameService struct {
	repo  store.Repository
	cache Cache
}

// NewGameService creates a new game service
func NewGameService(repo store.Repository, c Cache) *GameService {
	return &GameService{repo: repo, cache: c}
}

// GetGames returns the games of one league by date
func (s *GameService) GetGames(ctx context.Context, leagueCode string) ([]map[string]any, error) {
	return readThrough(ctx, s.cache, cache.GamesKey(leagueCode), func(ctx context.Context) ([]map[string]any, error) {
		games, err := s.repo.GetGames(ctx, leagueCode)
		if err != nil {
			return nil, fmt.Errorf("fetching games: %w", err)
		}
		return toMaps(games), nil
	})
}

// GetAllGames returns every stored game by date
func (s *GameService) GetAllGames(ctx context.Context) ([]map[string]any, error) {
	return readThrough(ctx, s.cache, cache.AllGamesKey(), func(ctx context.Context) ([]map[string]any, error) {
		games, err := s.repo.GetAllGames(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching games: %w", err)
		}
		return toMaps(games), nil
	})
}
