package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/athena/internal/store"
)

// SportRepository handles league data access
type SportRepository struct {
	db *store.Database
}

// NewSportRepository creates a new sport repository
func NewSportRepository(db *store.Database) *SportRepository {
	return &SportRepository{db: db}
}

// UpsertAll inserts or updates sports by league code in one transaction
func (r *SportRepository) UpsertAll(ctx context.Context, sports []store.Sport) error {
	query := `
		INSERT INTO sports (league_code, name, term, uses_gamesheet)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (league_code) DO UPDATE SET
			name = EXCLUDED.name,
			term = EXCLUDED.term,
			uses_gamesheet = EXCLUDED.uses_gamesheet,
			updated_at = NOW()
	`

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("preparing sport upsert: %w", err)
		}
		defer stmt.Close()

		for _, s := range sports {
			if _, err := stmt.ExecContext(ctx, s.LeagueCode, s.Name, string(s.Term), s.UsesGamesheet); err != nil {
				return fmt.Errorf("upserting sport %s: %w", s.LeagueCode, err)
			}
		}
		return nil
	})
}

// GetAll returns every stored sport ordered by term and name
func (r *SportRepository) GetAll(ctx context.Context) ([]store.Sport, error) {
	query := `
		SELECT league_code, name, term, uses_gamesheet
		FROM sports
		ORDER BY CASE term WHEN 'Fall' THEN 1 WHEN 'Winter' THEN 2 WHEN 'Spring' THEN 3 ELSE 4 END, name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sports: %w", err)
	}
	defer rows.Close()

	var sports []store.Sport
	for rows.Next() {
		var s store.Sport
		if err := rows.Scan(&s.LeagueCode, &s.Name, &s.Term, &s.UsesGamesheet); err != nil {
			return nil, fmt.Errorf("scanning sport: %w", err)
		}
		sports = append(sports, s)
	}

	return sports, rows.Err()
}

// GetByLeagueCode finds a sport by league code
func (r *SportRepository) GetByLeagueCode(ctx context.Context, leagueCode string) (*store.Sport, error) {
	query := `
		SELECT league_code, name, term, uses_gamesheet
		FROM sports
		WHERE league_code = $1
	`

	s := &store.Sport{}
	err := r.db.DB().QueryRowContext(ctx, query, leagueCode).Scan(&s.LeagueCode, &s.Name, &s.Term, &s.UsesGamesheet)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sport %s: %w", leagueCode, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying sport: %w", err)
	}

	return s, nil
}

// inTx runs fn in a transaction, rolling back on error
func inTx(ctx context.Context, db *store.Database, fn func(tx *sql.Tx) error) error {
	tx, err := db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
