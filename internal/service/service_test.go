package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/store"
	"github.com/fortuna/athena/internal/store/memstore"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	broken  bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.broken {
		return errors.New("connection refused")
	}
	raw, ok := c.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		return errors.New("connection refused")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

var home = lookup.School{ID: 66, Name: "Appleby College"}

func intp(v int) *int { return &v }

func seeded(t *testing.T) *memstore.Store {
	t.Helper()
	ctx := context.Background()
	repo := memstore.New()
	require.NoError(t, repo.UpsertSports(ctx, []store.Sport{
		{Name: "Soccer Sr Boys DI", Term: lookup.Fall, LeagueCode: "2860Y8N5D", UsesGamesheet: true},
		{Name: "Hockey Sr Boys DI", Term: lookup.Winter, LeagueCode: "2860Y8NHV", UsesGamesheet: true},
	}))
	require.NoError(t, repo.ReplaceStandings(ctx, "2860Y8N5D", []store.Standing{
		{TeamName: "Upper Canada College", Wins: intp(5), SportID: "2860Y8N5D", StandingsCode: "S_67_2860Y8N5D", GamesheetTeamID: "42"},
		{TeamName: "Appleby College", Wins: intp(4), SportID: "2860Y8N5D", StandingsCode: "S_66_2860Y8N5D", GamesheetTeamID: "41"},
	}))
	require.NoError(t, repo.UpsertGames(ctx, []store.Game{{
		GameCode:   "G_66_67_2024_09_25_2860Y8N5D",
		LeagueCode: "2860Y8N5D",
		HomeTeam:   "Appleby College",
		AwayTeam:   "Upper Canada College",
		GameDate:   time.Date(2024, time.September, 25, 0, 0, 0, 0, time.UTC),
		HomeScore:  "2",
		AwayScore:  "1",
	}}))
	require.NoError(t, repo.UpsertRoster(ctx, store.Roster{
		DocID:   "Soccer_Sr_Boys_DI",
		Players: []store.RosterEntry{{PlayerName: "John Doe", Ext: store.SoccerSkaterExt{YellowCards: 1}}},
	}))
	return repo
}

func TestReadThroughFillsCache(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)
	c := newMapCache()
	games := NewGameService(repo, c)

	first, err := games.GetGames(ctx, "2860Y8N5D")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "G_66_67_2024_09_25_2860Y8N5D", first[0]["game_code"])
	assert.Contains(t, c.entries, cache.GamesKey("2860Y8N5D"))

	// a later write is not visible until the key is invalidated
	require.NoError(t, repo.UpsertGames(ctx, []store.Game{{GameCode: "G_66_null_2024_10_02_2860Y8N5D", LeagueCode: "2860Y8N5D"}}))
	second, err := games.GetGames(ctx, "2860Y8N5D")
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, first[0]["home_score"], second[0]["home_score"])

	delete(c.entries, cache.GamesKey("2860Y8N5D"))
	third, err := games.GetGames(ctx, "2860Y8N5D")
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestBrokenCacheFallsBackToRepository(t *testing.T) {
	c := newMapCache()
	c.broken = true
	sports := NewSportService(seeded(t), c, time.UTC)

	list, err := sports.ListSports(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStandingService(t *testing.T) {
	ctx := context.Background()
	svc := NewStandingService(seeded(t), newMapCache(), home)

	rows, err := svc.GetStandings(ctx, "2860Y8N5D")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Upper Canada College", rows[0]["teamName"], "stored order is kept")

	all, err := svc.GetAllStandings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	code, err := svc.HomeTeamCode(ctx, "2860Y8N5D")
	require.NoError(t, err)
	assert.Equal(t, "41", code)

	_, err = svc.HomeTeamCode(ctx, "2860Y8NHV")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSportAndRosterServices(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)
	c := newMapCache()

	sports := NewSportService(repo, c, time.UTC)
	sport, err := sports.GetSport(ctx, "2860Y8NHV")
	require.NoError(t, err)
	assert.Equal(t, "Hockey Sr Boys DI", sport["name"])

	_, err = sports.GetSport(ctx, "NOPE")
	assert.ErrorIs(t, err, store.ErrNotFound)

	info, err := sports.Season(ctx, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, lookup.Winter, info.Term)
	assert.Equal(t, "2024-12-01", info.Date)
	require.Len(t, info.Leagues, 1)
	assert.Equal(t, "2860Y8NHV", info.Leagues[0]["league_code"])

	rosters := NewRosterService(repo, c)
	roster, err := rosters.GetRoster(ctx, "Soccer_Sr_Boys_DI")
	require.NoError(t, err)
	assert.Equal(t, "Soccer_Sr_Boys_DI", roster["docId"])

	_, err = rosters.GetRoster(ctx, "Hockey")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
