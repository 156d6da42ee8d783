// Package ingest joins the legacy-site and stats-site scrapers behind one
// per-sport API.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/ingest/cisaa"
	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/normalize"
	"github.com/fortuna/athena/internal/store"
)

// ErrNoBrowser is returned for stats-site sports when no browser was
// acquired.
var ErrNoBrowser = errors.New("stats-site sport needs a browser")

// Legacy is the legacy-site scraper.
type Legacy interface {
	ListLeagues(ctx context.Context, checker cisaa.MembershipChecker) ([]store.Sport, error)
	StandingsFor(ctx context.Context, leagueCode string) ([]store.Standing, error)
	GamesFor(ctx context.Context, sport store.Sport) ([]store.Game, error)
	SeasonAndDivisionFor(ctx context.Context, leagueCode string) (gamesheet.Competition, bool, error)
}

// Stats is the stats-site scraper.
type Stats interface {
	TeamInStandings(ctx context.Context, opener browser.PageOpener, comp gamesheet.Competition, teamName string) bool
	StandingsFor(ctx context.Context, opener browser.PageOpener, comp gamesheet.Competition, kind lookup.SportKind) []gamesheet.RawStanding
	GameIDsForTeam(ctx context.Context, opener browser.PageOpener, comp gamesheet.Competition, teamID string) []string
	GamesFor(ctx context.Context, opener browser.PageOpener, seasonCode string, gameIDs []string) []gamesheet.RawGame
	RosterFor(ctx context.Context, opener browser.PageOpener, seasonCode, teamID string) []gamesheet.RawPlayer
}

// Pipeline scrapes and normalizes one sport at a time, dispatching on
// whether the sport is backed by the stats site.
type Pipeline struct {
	legacy Legacy
	stats  Stats
	home   lookup.School
	loc    *time.Location
	now    func() time.Time
	logger *log.Logger
}

// NewPipeline creates a pipeline for the home school. Stats-site game
// dates are read in loc.
func NewPipeline(legacy Legacy, stats Stats, home lookup.School, loc *time.Location, logger *log.Logger) *Pipeline {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[ingest] ", log.LstdFlags)
	}
	return &Pipeline{
		legacy: legacy,
		stats:  stats,
		home:   home,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// Home is the school the pipeline scrapes for.
func (p *Pipeline) Home() lookup.School {
	return p.home
}

// Sports lists the leagues the home school plays in. Without a browser
// stats-site leagues cannot be confirmed and are left out.
func (p *Pipeline) Sports(ctx context.Context, b *browser.Handle) ([]store.Sport, error) {
	var checker cisaa.MembershipChecker
	if b != nil {
		checker = cisaa.MembershipFunc(func(ctx context.Context, comp gamesheet.Competition, team string) bool {
			return p.stats.TeamInStandings(ctx, b, comp, team)
		})
	}
	return p.legacy.ListLeagues(ctx, checker)
}

// competition resolves the stats-site season and division of a sport.
func (p *Pipeline) competition(ctx context.Context, sport store.Sport) (gamesheet.Competition, bool, error) {
	comp, ok, err := p.legacy.SeasonAndDivisionFor(ctx, sport.LeagueCode)
	if err != nil {
		return comp, false, fmt.Errorf("competition of %s: %w", sport.LeagueCode, err)
	}
	return comp, ok, nil
}

// kind classifies a stats-site sport, logging unsupported ones.
func (p *Pipeline) kind(sport store.Sport) (lookup.SportKind, bool) {
	kind, err := lookup.KindOf(sport.Name)
	if err != nil {
		p.logger.Printf("⚠️  %s (%s): %v", sport.Name, sport.LeagueCode, err)
		return "", false
	}
	return kind, true
}

// Standings scrapes the league table of sport.
func (p *Pipeline) Standings(ctx context.Context, sport store.Sport, b *browser.Handle) ([]store.Standing, error) {
	if !sport.UsesGamesheet {
		return p.legacy.StandingsFor(ctx, sport.LeagueCode)
	}
	if b == nil {
		return nil, fmt.Errorf("standings of %s: %w", sport.LeagueCode, ErrNoBrowser)
	}

	kind, ok := p.kind(sport)
	if !ok {
		return nil, nil
	}
	comp, ok, err := p.competition(ctx, sport)
	if err != nil || !ok {
		return nil, err
	}

	raws := p.stats.StandingsFor(ctx, b, comp, kind)
	standings := make([]store.Standing, 0, len(raws))
	for _, raw := range raws {
		standings = append(standings, normalize.ToGamesheetStanding(raw, kind, sport.LeagueCode))
	}
	return standings, nil
}

// Games scrapes the home school's games in sport. Stats-site sports need
// the home team's stats-site id; without it nothing is scraped.
func (p *Pipeline) Games(ctx context.Context, sport store.Sport, b *browser.Handle, homeTeamID string) ([]store.Game, error) {
	if !sport.UsesGamesheet {
		return p.legacy.GamesFor(ctx, sport)
	}
	if b == nil {
		return nil, fmt.Errorf("games of %s: %w", sport.LeagueCode, ErrNoBrowser)
	}
	if homeTeamID == "" {
		p.logger.Printf("⚠️  No stats-site team id for %s in %s, skipping games", p.home.Name, sport.LeagueCode)
		return nil, nil
	}

	comp, ok, err := p.competition(ctx, sport)
	if err != nil || !ok {
		return nil, err
	}

	ids := p.stats.GameIDsForTeam(ctx, b, comp, homeTeamID)
	raws := p.stats.GamesFor(ctx, b, comp.SeasonCode, ids)

	games := make([]store.Game, 0, len(raws))
	for _, raw := range raws {
		game, err := normalize.ToGamesheetGame(raw, sport, comp, p.loc)
		if err != nil {
			p.logger.Printf("⚠️  Skipping game %s of %s: %v", raw.GameID, sport.LeagueCode, err)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// Roster scrapes the home team's roster. Legacy sports have no roster and
// an empty roster yields nil.
func (p *Pipeline) Roster(ctx context.Context, sport store.Sport, b *browser.Handle, homeTeamID string) (*store.Roster, error) {
	if !sport.UsesGamesheet {
		return nil, nil
	}
	if b == nil {
		return nil, fmt.Errorf("roster of %s: %w", sport.LeagueCode, ErrNoBrowser)
	}
	kind, ok := p.kind(sport)
	if !ok {
		return nil, nil
	}
	if homeTeamID == "" {
		p.logger.Printf("⚠️  No stats-site team id for %s in %s, skipping roster", p.home.Name, sport.LeagueCode)
		return nil, nil
	}

	comp, ok, err := p.competition(ctx, sport)
	if err != nil || !ok {
		return nil, err
	}

	raws := p.stats.RosterFor(ctx, b, comp.SeasonCode, homeTeamID)
	if len(raws) == 0 {
		return nil, nil
	}

	players := make([]store.RosterEntry, 0, len(raws))
	for _, raw := range raws {
		players = append(players, normalize.ToRosterEntry(raw, kind, p.home.Name, comp.SeasonCode))
	}
	return &store.Roster{
		DocID:         normalize.RosterDocID(sport.Name),
		SportName:     sport.Name,
		TeamName:      p.home.Name,
		LeagueCode:    sport.LeagueCode,
		UsesGamesheet: sport.UsesGamesheet,
		Season:        sport.Term,
		LastUpdated:   p.now().UTC(),
		Players:       players,
	}, nil
}
