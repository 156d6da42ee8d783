package service

import (
	"context"
	"fmt"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/store"
)

// RosterService handles roster reads
type RosterService struct {
	repo  store.Repository
	cache Cache
}

// NewRosterService creates a new roster service
func NewRosterService(repo store.Repository, c Cache) *RosterService {
	return &RosterService{repo: repo, cache: c}
}

// GetRoster returns one roster document with its players
func (s *RosterService) GetRoster(ctx context.Context, docID string) (map[string]any, error) {
	return readThrough(ctx, s.cache, cache.RosterKey(docID), func(ctx context.Context) (map[string]any, error) {
		roster, err := s.repo.GetRoster(ctx, docID)
		if err != nil {
			return nil, fmt.Errorf("fetching roster %s: %w", docID, err)
		}
		return roster.ToMap(), nil
	})
}
