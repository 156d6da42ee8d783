package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/store"
)

// StandingRepository handles league table data access
type StandingRepository struct {
	db *store.Database
}

// NewStandingRepository creates a new standing repository
func NewStandingRepository(db *store.Database) *StandingRepository {
	return &StandingRepository{db: db}
}

const standingColumns = `
	standings_code, league_code, team_name, games_played, wins, losses, ties,
	points, table_num, school_id, gamesheet_team_id, ext_kind, ext`

// Replace swaps the table of one league in a single transaction
func (r *StandingRepository) Replace(ctx context.Context, leagueCode string, standings []store.Standing) error {
	insert := `
		INSERT INTO standings (` + standingColumns + `, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (standings_code) DO UPDATE SET
			league_code = EXCLUDED.league_code,
			team_name = EXCLUDED.team_name,
			games_played = EXCLUDED.games_played,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			ties = EXCLUDED.ties,
			points = EXCLUDED.points,
			table_num = EXCLUDED.table_num,
			school_id = EXCLUDED.school_id,
			gamesheet_team_id = EXCLUDED.gamesheet_team_id,
			ext_kind = EXCLUDED.ext_kind,
			ext = EXCLUDED.ext,
			position = EXCLUDED.position,
			updated_at = NOW()
	`

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM standings WHERE league_code = $1`, leagueCode); err != nil {
			return fmt.Errorf("clearing standings for %s: %w", leagueCode, err)
		}

		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return fmt.Errorf("preparing standing insert: %w", err)
		}
		defer stmt.Close()

		for i, s := range standings {
			kind, ext, err := encodeStandingExt(s.Ext)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx,
				s.StandingsCode, leagueCode, s.TeamName, s.GamesPlayed, s.Wins, s.Losses, s.Ties,
				s.Points, s.TableNum, s.SchoolID, s.GamesheetTeamID, kind, ext, i,
			)
			if err != nil {
				return fmt.Errorf("inserting standing %s: %w", s.StandingsCode, err)
			}
		}
		return nil
	})
}

// GetByLeague returns one league table in scraped order
func (r *StandingRepository) GetByLeague(ctx context.Context, leagueCode string) ([]store.Standing, error) {
	query := `SELECT ` + standingColumns + ` FROM standings WHERE league_code = $1 ORDER BY position`

	rows, err := r.db.DB().QueryContext(ctx, query, leagueCode)
	if err != nil {
		return nil, fmt.Errorf("querying standings: %w", err)
	}
	defer rows.Close()

	return scanStandings(rows)
}

// GetAll returns every stored standing grouped by league
func (r *StandingRepository) GetAll(ctx context.Context) ([]store.Standing, error) {
	query := `SELECT ` + standingColumns + ` FROM standings ORDER BY league_code, position`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying standings: %w", err)
	}
	defer rows.Close()

	return scanStandings(rows)
}

// encodeStandingExt returns the kind and JSONB value of ext, NULL for
// legacy rows.
func encodeStandingExt(ext store.StandingExt) (string, any, error) {
	if ext == nil {
		return "", nil, nil
	}
	raw, err := json.Marshal(ext)
	if err != nil {
		return "", nil, fmt.Errorf("encoding standing ext: %w", err)
	}
	return string(ext.Kind()), string(raw), nil
}

// scanStandings scans multiple standing rows
func scanStandings(rows *sql.Rows) ([]store.Standing, error) {
	var standings []store.Standing
	for rows.Next() {
		var (
			s    store.Standing
			kind string
			ext  []byte
		)
		err := rows.Scan(
			&s.StandingsCode, &s.SportID, &s.TeamName, &s.GamesPlayed, &s.Wins, &s.Losses, &s.Ties,
			&s.Points, &s.TableNum, &s.SchoolID, &s.GamesheetTeamID, &kind, &ext,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning standing: %w", err)
		}
		if s.Ext, err = store.DecodeStandingExt(lookup.SportKind(kind), ext); err != nil {
			return nil, err
		}
		standings = append(standings, s)
	}

	return standings, rows.Err()
}
