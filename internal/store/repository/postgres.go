// Package repository holds the PostgreSQL data access types.
package repository

import (
	"context"

	"github.com/fortuna/athena/internal/store"
)

// Postgres implements store.Repository over the per-table repositories.
type Postgres struct {
	Sports    *SportRepository
	Standings *StandingRepository
	Games     *GameRepository
	Rosters   *RosterRepository
}

var _ store.Repository = (*Postgres)(nil)

// NewPostgres wires every table repository to db.
func NewPostgres(db *store.Database) *Postgres {
	return &Postgres{
		Sports:    NewSportRepository(db),
		Standings: NewStandingRepository(db),
		Games:     NewGameRepository(db),
		Rosters:   NewRosterRepository(db),
	}
}

func (p *Postgres) UpsertSports(ctx context.Context, sports []store.Sport) error {
	return p.Sports.UpsertAll(ctx, sports)
}

func (p *Postgres) ListSports(ctx context.Context) ([]store.Sport, error) {
	return p.Sports.GetAll(ctx)
}

func (p *Postgres) GetSport(ctx context.Context, leagueCode string) (*store.Sport, error) {
	return p.Sports.GetByLeagueCode(ctx, leagueCode)
}

func (p *Postgres) ReplaceStandings(ctx context.Context, leagueCode string, standings []store.Standing) error {
	return p.Standings.Replace(ctx, leagueCode, standings)
}

func (p *Postgres) GetStandings(ctx context.Context, leagueCode string) ([]store.Standing, error) {
	return p.Standings.GetByLeague(ctx, leagueCode)
}

func (p *Postgres) GetAllStandings(ctx context.Context) ([]store.Standing, error) {
	return p.Standings.GetAll(ctx)
}

func (p *Postgres) UpsertGames(ctx context.Context, games []store.Game) error {
	return p.Games.UpsertAll(ctx, games)
}

func (p *Postgres) GetGames(ctx context.Context, leagueCode string) ([]store.Game, error) {
	return p.Games.GetByLeague(ctx, leagueCode)
}

func (p *Postgres) GetAllGames(ctx context.Context) ([]store.Game, error) {
	return p.Games.GetAll(ctx)
}

func (p *Postgres) UpsertRoster(ctx context.Context, roster store.Roster) error {
	return p.Rosters.Upsert(ctx, roster)
}

func (p *Postgres) GetRoster(ctx context.Context, docID string) (*store.Roster, error) {
	return p.Rosters.GetByDocID(ctx, docID)
}
