package ingest

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/ingest/browser/browsertest"
	"github.com/fortuna/athena/internal/ingest/cisaa"
	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/store"
)

var (
	home       = lookup.School{ID: 66, Name: "Appleby College", Abbreviation: "AC"}
	comp       = gamesheet.Competition{SeasonCode: "7055", DivisionID: "41187"}
	soccer     = store.Sport{Name: "Soccer Sr Boys DI", Term: lookup.Fall, LeagueCode: "S1", UsesGamesheet: true}
	basketball = store.Sport{Name: "Basketball Sr Boys DI", Term: lookup.Winter, LeagueCode: "B1"}
)

type fakeLegacy struct {
	checker  cisaa.MembershipChecker
	noEmbed  bool
	compErr  error
	compHits int
}

func (f *fakeLegacy) ListLeagues(ctx context.Context, checker cisaa.MembershipChecker) ([]store.Sport, error) {
	f.checker = checker
	sports := []store.Sport{basketball}
	if checker != nil && checker.TeamInStandings(ctx, comp, home.Name) {
		sports = append(sports, soccer)
	}
	return sports, nil
}

func (f *fakeLegacy) StandingsFor(_ context.Context, leagueCode string) ([]store.Standing, error) {
	return []store.Standing{{TeamName: "Appleby College", SportID: leagueCode}}, nil
}

func (f *fakeLegacy) GamesFor(_ context.Context, sport store.Sport) ([]store.Game, error) {
	return []store.Game{{GameCode: "G_legacy", LeagueCode: sport.LeagueCode}}, nil
}

func (f *fakeLegacy) SeasonAndDivisionFor(context.Context, string) (gamesheet.Competition, bool, error) {
	f.compHits++
	if f.compErr != nil {
		return gamesheet.Competition{}, false, f.compErr
	}
	return comp, !f.noEmbed, nil
}

type fakeStats struct {
	opener  browser.PageOpener
	teamIDs []string
	games   []gamesheet.RawGame
	players []gamesheet.RawPlayer
}

func (f *fakeStats) TeamInStandings(_ context.Context, opener browser.PageOpener, _ gamesheet.Competition, team string) bool {
	f.opener = opener
	return team == home.Name
}

func (f *fakeStats) StandingsFor(_ context.Context, _ browser.PageOpener, _ gamesheet.Competition, kind lookup.SportKind) []gamesheet.RawStanding {
	gp := 4.0
	return []gamesheet.RawStanding{{TeamName: "Appleby College", TeamID: "9", Values: map[string]*float64{"gp": &gp}}}
}

func (f *fakeStats) GameIDsForTeam(_ context.Context, _ browser.PageOpener, _ gamesheet.Competition, teamID string) []string {
	f.teamIDs = append(f.teamIDs, teamID)
	return []string{"1", "2"}
}

func (f *fakeStats) GamesFor(context.Context, browser.PageOpener, string, []string) []gamesheet.RawGame {
	return f.games
}

func (f *fakeStats) RosterFor(context.Context, browser.PageOpener, string, string) []gamesheet.RawPlayer {
	return f.players
}

func newPipeline(legacy *fakeLegacy, stats *fakeStats) *Pipeline {
	p := NewPipeline(legacy, stats, home, time.UTC, log.New(io.Discard, "", 0))
	p.now = func() time.Time { return time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func handle() *browser.Handle {
	return browser.NewHandle(&browsertest.Opener{}, func() {})
}

func TestSportsUsesBrowserForMembership(t *testing.T) {
	legacy, stats := &fakeLegacy{}, &fakeStats{}
	p := newPipeline(legacy, stats)

	sports, err := p.Sports(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, legacy.checker)
	assert.Equal(t, []store.Sport{basketball}, sports)

	b := handle()
	sports, err = p.Sports(context.Background(), b)
	require.NoError(t, err)
	assert.Len(t, sports, 2)
	assert.Same(t, b, stats.opener)
}

func TestStandingsDispatch(t *testing.T) {
	legacy := &fakeLegacy{}
	p := newPipeline(legacy, &fakeStats{})
	ctx := context.Background()

	rows, err := p.Standings(ctx, basketball, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B1", rows[0].SportID)

	_, err = p.Standings(ctx, soccer, nil)
	assert.ErrorIs(t, err, ErrNoBrowser)

	rows, err = p.Standings(ctx, soccer, handle())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S_66_S1", rows[0].StandingsCode)
	assert.Equal(t, 3, rows[0].TableNum)
	assert.IsType(t, store.SoccerStandingExt{}, rows[0].Ext)

	legacy.noEmbed = true
	rows, err = p.Standings(ctx, soccer, handle())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStandingsUnsupportedSportYieldsNothing(t *testing.T) {
	legacy := &fakeLegacy{}
	p := newPipeline(legacy, &fakeStats{})

	rugby := store.Sport{Name: "Rugby Sr Boys", LeagueCode: "R1", UsesGamesheet: true}
	rows, err := p.Standings(context.Background(), rugby, handle())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, legacy.compHits)
}

func TestGames(t *testing.T) {
	stats := &fakeStats{games: []gamesheet.RawGame{
		{GameID: "1", HomeTeam: "Appleby College", AwayTeam: "Upper Canada College", DateTime: "Sep 25, 2024, 4:00 PM"},
		{GameID: "2", HomeTeam: "Appleby College", AwayTeam: "Upper Canada College", DateTime: "TBA"},
	}}
	legacy := &fakeLegacy{}
	p := newPipeline(legacy, stats)
	ctx := context.Background()

	games, err := p.Games(ctx, basketball, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "G_legacy", games[0].GameCode)

	games, err = p.Games(ctx, soccer, handle(), "")
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.Empty(t, stats.teamIDs)

	games, err = p.Games(ctx, soccer, handle(), "9")
	require.NoError(t, err)
	require.Len(t, games, 1, "undated game is skipped")
	assert.Equal(t, "G_66_67_2024_09_25_S1", games[0].GameCode)
	assert.Equal(t, []string{"9"}, stats.teamIDs)

	legacy.compErr = errors.New("site down")
	_, err = p.Games(ctx, soccer, handle(), "9")
	assert.Error(t, err)
}

func TestRoster(t *testing.T) {
	stats := &fakeStats{}
	p := newPipeline(&fakeLegacy{}, stats)
	ctx := context.Background()

	roster, err := p.Roster(ctx, basketball, nil, "")
	require.NoError(t, err)
	assert.Nil(t, roster, "legacy sports have no roster")

	roster, err = p.Roster(ctx, soccer, handle(), "9")
	require.NoError(t, err)
	assert.Nil(t, roster, "empty roster")

	stats.players = []gamesheet.RawPlayer{
		{Name: "John Doe", Link: "/seasons/7055/players/88", Totals: map[string]string{"gp": "8", "g": "3"}},
		{Name: "Keeper", Keeper: true, Position: "GK", Totals: map[string]string{"gaa": "1.5"}},
	}
	roster, err = p.Roster(ctx, soccer, handle(), "9")
	require.NoError(t, err)
	require.NotNil(t, roster)

	assert.Equal(t, "Soccer_Sr_Boys_DI", roster.DocID)
	assert.Equal(t, "Appleby College", roster.TeamName)
	assert.Equal(t, lookup.Fall, roster.Season)
	require.Len(t, roster.Players, 2)
	assert.Equal(t, "88", roster.Players[0].PlayerID)
	assert.Equal(t, "7055", roster.Players[0].SeasonCode)
	assert.Equal(t, store.RoleSoccerKeeper, roster.Players[1].Ext.Role())

	_, err = p.Roster(ctx, soccer, nil, "9")
	assert.ErrorIs(t, err, ErrNoBrowser)
}
