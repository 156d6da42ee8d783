package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fortuna/athena/internal/store"
)

// RosterRepository handles roster document access
type RosterRepository struct {
	db *store.Database
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *store.Database) *RosterRepository {
	return &RosterRepository{db: db}
}

// playerRecord is the JSONB form of one roster entry. The role selects
// which extension Ext decodes into.
type playerRecord struct {
	TeamName       string          `json:"team_name"`
	PlayerID       string          `json:"player_id"`
	SeasonCode     string          `json:"season_code"`
	JerseyNumber   string          `json:"jersey_number"`
	PlayerName     string          `json:"player_name"`
	PlayerPosition string          `json:"player_position"`
	GamesPlayed    int             `json:"games_played"`
	Goals          int             `json:"goals"`
	Assists        int             `json:"assists"`
	Role           store.Role      `json:"role,omitempty"`
	Ext            json.RawMessage `json:"ext,omitempty"`
}

func encodePlayers(players []store.RosterEntry) (string, error) {
	records := make([]playerRecord, 0, len(players))
	for _, p := range players {
		rec := playerRecord{
			TeamName:       p.TeamName,
			PlayerID:       p.PlayerID,
			SeasonCode:     p.SeasonCode,
			JerseyNumber:   p.JerseyNumber,
			PlayerName:     p.PlayerName,
			PlayerPosition: p.PlayerPosition,
			GamesPlayed:    p.GamesPlayed,
			Goals:          p.Goals,
			Assists:        p.Assists,
		}
		if p.Ext != nil {
			raw, err := json.Marshal(p.Ext)
			if err != nil {
				return "", fmt.Errorf("encoding player %s: %w", p.PlayerName, err)
			}
			rec.Role, rec.Ext = p.Ext.Role(), raw
		}
		records = append(records, rec)
	}
	raw, err := json.Marshal(records)
	return string(raw), err
}

func decodePlayers(raw []byte) ([]store.RosterEntry, error) {
	var records []playerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding players: %w", err)
	}

	players := make([]store.RosterEntry, 0, len(records))
	for _, rec := range records {
		ext, err := store.DecodeRosterExt(rec.Role, rec.Ext)
		if err != nil {
			return nil, err
		}
		players = append(players, store.RosterEntry{
			TeamName:       rec.TeamName,
			PlayerID:       rec.PlayerID,
			SeasonCode:     rec.SeasonCode,
			JerseyNumber:   rec.JerseyNumber,
			PlayerName:     rec.PlayerName,
			PlayerPosition: rec.PlayerPosition,
			GamesPlayed:    rec.GamesPlayed,
			Goals:          rec.Goals,
			Assists:        rec.Assists,
			Ext:            ext,
		})
	}
	return players, nil
}

// Upsert replaces the roster document stored under roster.DocID
func (r *RosterRepository) Upsert(ctx context.Context, roster store.Roster) error {
	players, err := encodePlayers(roster.Players)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rosters (doc_id, sport_name, team_name, league_code, uses_gamesheet, season, last_updated, players)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (doc_id) DO UPDATE SET
			sport_name = EXCLUDED.sport_name,
			team_name = EXCLUDED.team_name,
			league_code = EXCLUDED.league_code,
			uses_gamesheet = EXCLUDED.uses_gamesheet,
			season = EXCLUDED.season,
			last_updated = EXCLUDED.last_updated,
			players = EXCLUDED.players
	`

	_, err = r.db.DB().ExecContext(ctx, query,
		roster.DocID, roster.SportName, roster.TeamName, roster.LeagueCode,
		roster.UsesGamesheet, string(roster.Season), roster.LastUpdated, players,
	)
	if err != nil {
		return fmt.Errorf("upserting roster %s: %w", roster.DocID, err)
	}
	return nil
}

// GetByDocID finds a roster document
func (r *RosterRepository) GetByDocID(ctx context.Context, docID string) (*store.Roster, error) {
	query := `
		SELECT doc_id, sport_name, team_name, league_code, uses_gamesheet, season, last_updated, players
		FROM rosters
		WHERE doc_id = $1
	`

	var (
		roster  store.Roster
		players []byte
	)
	err := r.db.DB().QueryRowContext(ctx, query, docID).Scan(
		&roster.DocID, &roster.SportName, &roster.TeamName, &roster.LeagueCode,
		&roster.UsesGamesheet, &roster.Season, &roster.LastUpdated, &players,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("roster %s: %w", docID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}

	if roster.Players, err = decodePlayers(players); err != nil {
		return nil, err
	}
	return &roster, nil
}
