package repository

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/store"
)

// setupPostgres starts a throwaway database. Set ATHENA_INTEGRATION=1 to
// run these tests; they need a Docker daemon.
func setupPostgres(t *testing.T) *store.Database {
	t.Helper()
	if os.Getenv("ATHENA_INTEGRATION") == "" {
		t.Skip("set ATHENA_INTEGRATION=1 to run postgres tests")
	}
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "athena",
				"POSTGRES_PASSWORD": "athena",
				"POSTGRES_DB":       "athena",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://athena:athena@%s:%s/athena?sslmode=disable", host, port.Port())
	db, err := store.NewDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations(ctx))
	// applying twice is a no-op
	require.NoError(t, db.RunMigrations(ctx))
	return db
}

func TestPostgresRepository(t *testing.T) {
	db := setupPostgres(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	t.Run("sports", func(t *testing.T) {
		require.NoError(t, repo.UpsertSports(ctx, []store.Sport{
			{Name: "Basketball Sr Boys DI", Term: lookup.Winter, LeagueCode: "B1"},
			{Name: "Soccer Sr Boys DI", Term: lookup.Fall, LeagueCode: "S1", UsesGamesheet: true},
		}))
		require.NoError(t, repo.UpsertSports(ctx, []store.Sport{{Name: "Soccer Sr Boys D1", Term: lookup.Fall, LeagueCode: "S1", UsesGamesheet: true}}))

		sports, err := repo.ListSports(ctx)
		require.NoError(t, err)
		require.Len(t, sports, 2)
		assert.Equal(t, "S1", sports[0].LeagueCode, "fall first")
		assert.Equal(t, "Soccer Sr Boys D1", sports[0].Name)

		_, err = repo.GetSport(ctx, "nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("standings replace per league", func(t *testing.T) {
		id, pts := 66, 10
		require.NoError(t, repo.ReplaceStandings(ctx, "S1", []store.Standing{
			{TeamName: "Appleby College", SchoolID: &id, Points: &pts, TableNum: 3, StandingsCode: "S_66_S1", GamesheetTeamID: "9",
				Ext: store.SoccerStandingExt{GoalsFor: &pts}},
			{TeamName: "Mystery", TableNum: 3, StandingsCode: "S_null_S1"},
		}))
		require.NoError(t, repo.ReplaceStandings(ctx, "B1", []store.Standing{{TeamName: "X", TableNum: 1, StandingsCode: "S_null_B1"}}))
		require.NoError(t, repo.ReplaceStandings(ctx, "B1", []store.Standing{{TeamName: "Y", TableNum: 1, StandingsCode: "S_null_B1"}}))

		s1, err := repo.GetStandings(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, s1, 2)
		assert.Equal(t, 66, *s1[0].SchoolID)
		assert.Equal(t, store.SoccerStandingExt{GoalsFor: &pts}, s1[0].Ext)
		assert.Nil(t, s1[1].SchoolID)
		assert.Nil(t, s1[1].Ext)

		all, err := repo.GetAllStandings(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("games upsert by code", func(t *testing.T) {
		day := time.Date(2024, time.September, 25, 20, 0, 0, 0, time.UTC)
		game := store.Game{GameCode: "G_66_67_2024_09_25_S1", LeagueCode: "S1", SportsName: "Soccer", Term: lookup.Fall,
			HomeTeam: "Appleby College", AwayTeam: "Upper Canada College", GameDate: day}
		other := store.Game{GameCode: "G_66_67_2024_09_26_S1", LeagueCode: "S1", SportsName: "Soccer", Term: lookup.Fall,
			HomeTeam: "Appleby College", AwayTeam: "Upper Canada College", GameDate: day.Add(24 * time.Hour)}
		require.NoError(t, repo.UpsertGames(ctx, []store.Game{game, other}))

		game.HomeScore = "2"
		game.Gamesheet = &store.GamesheetDetail{GameID: "7", Goals: []store.Goal{{TeamName: "Appleby College", Scorer: "J. Doe"}}}
		require.NoError(t, repo.UpsertGames(ctx, []store.Game{game}))

		games, err := repo.GetGames(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "2", games[0].HomeScore)
		require.NotNil(t, games[0].Gamesheet)
		assert.Equal(t, "J. Doe", games[0].Gamesheet.Goals[0].Scorer)
		assert.Nil(t, games[1].Gamesheet)
	})

	t.Run("roster document", func(t *testing.T) {
		roster := store.Roster{
			DocID: "Soccer_Sr_Boys_DI", SportName: "Soccer Sr Boys DI", TeamName: "Appleby College",
			LeagueCode: "S1", UsesGamesheet: true, Season: lookup.Fall,
			LastUpdated: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			Players:     []store.RosterEntry{{PlayerName: "A", Ext: store.SoccerSkaterExt{YellowCards: 1}}},
		}
		require.NoError(t, repo.UpsertRoster(ctx, roster))

		got, err := repo.GetRoster(ctx, roster.DocID)
		require.NoError(t, err)
		assert.Equal(t, roster.Players, got.Players)
		assert.True(t, got.LastUpdated.Equal(roster.LastUpdated))
	})
}
