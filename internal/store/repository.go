package store

import "context"

// Repository is the persistence boundary the scrapers write through and
// the read services read from. Writes upsert by deterministic key.
type Repository interface {
	UpsertSports(ctx context.Context, sports []Sport) error
	ListSports(ctx context.Context) ([]Sport, error)
	GetSport(ctx context.Context, leagueCode string) (*Sport, error)

	// ReplaceStandings swaps the whole table of one league.
	ReplaceStandings(ctx context.Context, leagueCode string, standings []Standing) error
	GetStandings(ctx context.Context, leagueCode string) ([]Standing, error)
	GetAllStandings(ctx context.Context) ([]Standing, error)

	UpsertGames(ctx context.Context, games []Game) error
	GetGames(ctx context.Context, leagueCode string) ([]Game, error)
	GetAllGames(ctx context.Context) ([]Game, error)

	// UpsertRoster replaces the roster document stored under roster.DocID.
	UpsertRoster(ctx context.Context, roster Roster) error
	GetRoster(ctx context.Context, docID string) (*Roster, error)
}
