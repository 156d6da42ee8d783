package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fortuna/athena/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `
	game_code, league_code, sports_name, term,
	home_team, home_abbr, home_logo, home_school_id,
	away_team, away_abbr, away_logo, away_school_id,
	game_date, game_time, home_score, away_score, gamesheet`

// UpsertAll inserts or updates games by game code in one transaction.
// Games not in the batch are untouched.
func (r *GameRepository) UpsertAll(ctx context.Context, games []store.Game) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (game_code) DO UPDATE SET
			league_code = EXCLUDED.league_code,
			sports_name = EXCLUDED.sports_name,
			term = EXCLUDED.term,
			home_team = EXCLUDED.home_team,
			home_abbr = EXCLUDED.home_abbr,
			home_logo = EXCLUDED.home_logo,
			home_school_id = EXCLUDED.home_school_id,
			away_team = EXCLUDED.away_team,
			away_abbr = EXCLUDED.away_abbr,
			away_logo = EXCLUDED.away_logo,
			away_school_id = EXCLUDED.away_school_id,
			game_date = EXCLUDED.game_date,
			game_time = EXCLUDED.game_time,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			gamesheet = EXCLUDED.gamesheet,
			updated_at = NOW()
	`

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("preparing game upsert: %w", err)
		}
		defer stmt.Close()

		for _, g := range games {
			detail, err := encodeGamesheet(g.Gamesheet)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx,
				g.GameCode, g.LeagueCode, g.SportsName, string(g.Term),
				g.HomeTeam, g.HomeAbbr, g.HomeLogo, g.HomeSchoolID,
				g.AwayTeam, g.AwayAbbr, g.AwayLogo, g.AwaySchoolID,
				g.GameDate, g.GameTime, g.HomeScore, g.AwayScore, detail,
			)
			if err != nil {
				return fmt.Errorf("upserting game %s: %w", g.GameCode, err)
			}
		}
		return nil
	})
}

// GetByLeague returns the games of one league by date
func (r *GameRepository) GetByLeague(ctx context.Context, leagueCode string) ([]store.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE league_code = $1 ORDER BY game_date, game_code`

	rows, err := r.db.DB().QueryContext(ctx, query, leagueCode)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetAll returns every stored game by date
func (r *GameRepository) GetAll(ctx context.Context) ([]store.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY game_date, game_code`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetByDate returns all games on the calendar day of date in its location
func (r *GameRepository) GetByDate(ctx context.Context, date time.Time) ([]store.Game, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	query := `SELECT ` + gameColumns + ` FROM games WHERE game_date >= $1 AND game_date < $2 ORDER BY game_date, game_code`

	rows, err := r.db.DB().QueryContext(ctx, query, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

func encodeGamesheet(d *store.GamesheetDetail) (any, error) {
	if d == nil {
		return nil, nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding gamesheet detail: %w", err)
	}
	return string(raw), nil
}

// scanGames scans multiple game rows
func scanGames(rows *sql.Rows) ([]store.Game, error) {
	var games []store.Game
	for rows.Next() {
		var (
			g      store.Game
			detail []byte
		)
		err := rows.Scan(
			&g.GameCode, &g.LeagueCode, &g.SportsName, &g.Term,
			&g.HomeTeam, &g.HomeAbbr, &g.HomeLogo, &g.HomeSchoolID,
			&g.AwayTeam, &g.AwayAbbr, &g.AwayLogo, &g.AwaySchoolID,
			&g.GameDate, &g.GameTime, &g.HomeScore, &g.AwayScore, &detail,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		if detail != nil {
			g.Gamesheet = &store.GamesheetDetail{}
			if err := json.Unmarshal(detail, g.Gamesheet); err != nil {
				return nil, fmt.Errorf("decoding gamesheet detail of %s: %w", g.GameCode, err)
			}
		}
		games = append(games, g)
	}

	return games, rows.Err()
}
