// Package gamesheet scrapes the gamesheetstats.com single-page app
// through a shared headless browser.
package gamesheet

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/ingest/retry"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/metrics"
	"github.com/fortuna/athena/internal/store"
)

// BaseURL is the public stats site.
const BaseURL = "https://gamesheetstats.com"

const source = "gamesheet"

var (
	// SoccerColumns are the flexible standings columns of a soccer table.
	SoccerColumns = []string{"gp", "w", "t", "l", "pts", "ppct", "yc", "rc", "gf", "ga", "diff"}

	// HockeyColumns are the flexible standings columns of a hockey table.
	HockeyColumns = []string{"gp", "w", "t", "l", "pts", "otw", "otl", "ppct", "gf", "ga", "diff", "ppg", "ppga", "shg", "pim"}

	goalieColumns = []string{"gaa", "sa", "svpct"}
)

// Competition is the stats-site season and division of one league.
type Competition struct {
	SeasonCode string
	DivisionID string
}

// RawGame is one game page reduced to text fields and parsed goals.
type RawGame struct {
	GameID    string
	Status    string
	HomeTeam  string
	AwayTeam  string
	HomeScore string
	AwayScore string
	GameType  string
	DateTime  string
	Goals     []store.Goal
	Link      string
}

// RawPlayer is a roster row joined with the player's Total stats.
type RawPlayer struct {
	Number   string
	Position string
	Name     string
	Link     string
	Keeper   bool
	Totals   map[string]string
}

// Parser drives the stats-site pages.
type Parser struct {
	baseURL string
	policy  retry.Policy
	logger  *log.Logger
}

// NewParser creates a stats-site parser. An empty baseURL uses BaseURL.
func NewParser(baseURL string, policy retry.Policy, logger *log.Logger) *Parser {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[gamesheet] ", log.LstdFlags)
	}
	policy.Logger = logger
	return &Parser{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  policy,
		logger:  logger,
	}
}

// StandingsURL is the division standings page.
func (p *Parser) StandingsURL(comp Competition) string {
	return fmt.Sprintf("%s/seasons/%s/standings?filter%%5Bdivision%%5D=%s", p.baseURL, comp.SeasonCode, comp.DivisionID)
}

// ScheduleURL is a team's schedule within a division.
func (p *Parser) ScheduleURL(comp Competition, teamID string) string {
	return fmt.Sprintf("%s/seasons/%s/teams/%s/schedule?filter%%5Bdivision%%5D=%s", p.baseURL, comp.SeasonCode, teamID, comp.DivisionID)
}

// GameURL is a game's box score page.
func (p *Parser) GameURL(seasonCode, gameID string) string {
	return fmt.Sprintf("%s/seasons/%s/games/%s", p.baseURL, seasonCode, gameID)
}

// RosterURL is a team's roster page.
func (p *Parser) RosterURL(seasonCode, teamID string) string {
	return fmt.Sprintf("%s/seasons/%s/teams/%s/roster", p.baseURL, seasonCode, teamID)
}

// PublicGameLink is the themed game link stored with each game.
func (p *Parser) PublicGameLink(seasonCode, gameID string) string {
	return p.GameURL(seasonCode, gameID) + "?configuration%5Bprimary-colour%5D=FCFFF9&configuration%5Bsecondary-colour%5D=034265"
}

// singleShot is the policy for pages that are not retried.
func (p *Parser) singleShot() retry.Policy {
	policy := p.policy
	policy.MaxAttempts = 1
	return policy
}

// TeamInStandings reports whether teamName appears in the division
// standings. Exhausted retries count as not found.
func (p *Parser) TeamInStandings(ctx context.Context, opener browser.PageOpener, comp Competition, teamName string) bool {
	url := p.StandingsURL(comp)
	titles, ok := retry.WithPage(ctx, opener, p.policy, "membership "+url,
		func(ctx context.Context, page browser.Page) ([]string, error) {
			titles, err := ExtractTeamTitles(ctx, page, url)
			metrics.Attempt(source, "membership", err)
			return titles, err
		})
	if !ok {
		return false
	}
	return slices.Contains(titles, teamName)
}

// StandingsFor returns the joined standings rows of a division. Soccer
// rows without a team name are dropped.
func (p *Parser) StandingsFor(ctx context.Context, opener browser.PageOpener, comp Competition, kind lookup.SportKind) []RawStanding {
	columns := SoccerColumns
	if kind == lookup.Hockey {
		columns = HockeyColumns
	}

	url := p.StandingsURL(comp)
	table, ok := retry.WithPage(ctx, opener, p.singleShot(), "standings "+url,
		func(ctx context.Context, page browser.Page) (StandingsTable, error) {
			table, err := ExtractStandings(ctx, page, url, columns)
			metrics.Attempt(source, "standings", err)
			return table, err
		})
	if !ok {
		return nil
	}

	rows := JoinStandingRows(table.Fixed, table.Cells, columns)
	if kind != lookup.Soccer {
		return rows
	}

	named := rows[:0]
	for _, r := range rows {
		if r.TeamName != "" {
			named = append(named, r)
		}
	}
	return named
}

// GameIDsForTeam returns the distinct game ids on a team's schedule in
// first-seen order.
func (p *Parser) GameIDsForTeam(ctx context.Context, opener browser.PageOpener, comp Competition, teamID string) []string {
	url := p.ScheduleURL(comp, teamID)
	hrefs, ok := retry.WithPage(ctx, opener, p.singleShot(), "schedule "+url,
		func(ctx context.Context, page browser.Page) ([]string, error) {
			hrefs, err := ExtractGameIDs(ctx, page, url)
			metrics.Attempt(source, "schedule", err)
			return hrefs, err
		})
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(hrefs))
	var ids []string
	for _, href := range hrefs {
		id := GameIDFromHref(href)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// GamesFor visits each game on one page, strictly in order. A game that
// never loads is skipped; a game whose goals fail to load keeps no goals.
func (p *Parser) GamesFor(ctx context.Context, opener browser.PageOpener, seasonCode string, gameIDs []string) []RawGame {
	if len(gameIDs) == 0 {
		return nil
	}

	page, err := opener.NewPage(ctx)
	if err != nil {
		p.logger.Printf("❌ Failed to open page for %d games: %v", len(gameIDs), err)
		return nil
	}
	defer page.Close()

	var games []RawGame
	for _, id := range gameIDs {
		if ctx.Err() != nil {
			break
		}

		game, ok := retry.Do(ctx, p.policy, "game "+id, func(ctx context.Context) (RawGame, error) {
			return p.gameFromPage(ctx, page, seasonCode, id)
		})
		if !ok {
			p.logger.Printf("⚠️  Skipping game %s", id)
			continue
		}
		games = append(games, game)
	}
	return games
}

func (p *Parser) gameFromPage(ctx context.Context, page browser.Page, seasonCode, gameID string) (RawGame, error) {
	detail, err := ExtractGameDetail(ctx, page, p.GameURL(seasonCode, gameID))
	metrics.Attempt(source, "game", err)
	if err != nil {
		return RawGame{}, err
	}

	game := RawGame{
		GameID:   gameID,
		Status:   strings.ToLower(detail.Status),
		HomeTeam: detail.HomeTeam,
		AwayTeam: detail.AwayTeam,
		GameType: detail.GameType,
		DateTime: detail.DateTime,
		Link:     p.PublicGameLink(seasonCode, gameID),
	}
	if !strings.Contains(game.Status, "scheduled") {
		game.HomeScore = scoreText(detail.HomeScore)
		game.AwayScore = scoreText(detail.AwayScore)
	}

	if !ShouldExtractGoals(detail) {
		return game, nil
	}

	periods, err := ExtractGoals(ctx, page)
	metrics.Attempt(source, "goals", err)
	if err != nil {
		p.logger.Printf("⚠️  Game %s: goals unavailable: %v", gameID, err)
		return game, nil
	}
	game.Goals = GoalsFromPeriods(periods)
	return game, nil
}

// GoalsFromPeriods converts raw goal events, keeping those with both a
// team and a scorer.
func GoalsFromPeriods(periods []GoalPeriod) []store.Goal {
	var goals []store.Goal
	for _, period := range periods {
		for _, g := range period.Goals {
			scorer := ExtractName(g.Scorer)
			if g.Team == "" || scorer == "" {
				continue
			}
			assister, pre := SplitAssists(g.Assists)
			goals = append(goals, store.Goal{
				TeamName:     g.Team,
				MinuteScored: g.Time,
				Period:       period.Period,
				Scorer:       scorer,
				Assister:     assister,
				PreAssister:  pre,
			})
		}
	}
	return goals
}

// RosterFor reads a team's roster and then each player's Total row.
// Players whose page has no Total row are skipped.
func (p *Parser) RosterFor(ctx context.Context, opener browser.PageOpener, seasonCode, teamID string) []RawPlayer {
	url := p.RosterURL(seasonCode, teamID)
	tables, ok := retry.WithPage(ctx, opener, p.policy, "roster "+url,
		func(ctx context.Context, page browser.Page) ([]RosterTable, error) {
			tables, err := ExtractRosterRows(ctx, page, url)
			metrics.Attempt(source, "roster", err)
			return tables, err
		})
	if !ok {
		return nil
	}

	var players []RawPlayer
	for _, entry := range ClassifyRoster(tables, p.logger) {
		if ctx.Err() != nil {
			break
		}
		if entry.Link == "" {
			continue
		}

		totals, ok := retry.WithPage(ctx, opener, p.policy, "player "+entry.Link,
			func(ctx context.Context, page browser.Page) (PlayerTotals, error) {
				totals, err := ExtractPlayerTotals(ctx, page, entry.Link)
				metrics.Attempt(source, "player", err)
				return totals, err
			})
		if !ok || !totals.Found {
			p.logger.Printf("⚠️  No Total row for %s, skipping", entry.Name)
			continue
		}

		entry.Totals = totals.Values
		players = append(players, entry)
	}
	return players
}

// ClassifyRoster flattens roster tables into players and marks keepers.
// The second table holds goalkeepers. When that table has no goalie stat
// columns but does have a position column, each row's own position is
// used instead.
func ClassifyRoster(tables []RosterTable, logger *log.Logger) []RawPlayer {
	var players []RawPlayer
	for ti, table := range tables {
		keeperTable := ti == 1
		rowPositions := !keeperTable

		if keeperTable && !hasAny(table.Columns, goalieColumns...) {
			if hasAny(table.Columns, "position") {
				rowPositions = true
				logger.Printf("⚠️  Second roster table has no goalie columns; using row positions")
			} else {
				logger.Printf("⚠️  Second roster table has no goalie columns; assuming goalkeepers")
			}
		}

		for _, row := range table.Rows {
			if row.Name == "" {
				continue
			}
			player := RawPlayer{
				Number:   row.Number,
				Position: row.Position,
				Name:     row.Name,
				Link:     row.Link,
			}
			if rowPositions {
				player.Keeper = isKeeperPosition(row.Position)
			} else {
				player.Position = "GK"
				player.Keeper = true
			}
			players = append(players, player)
		}
	}
	return players
}

func isKeeperPosition(pos string) bool {
	pos = strings.ToUpper(strings.TrimSpace(pos))
	return pos == "GK" || pos == "G"
}

func hasAny(columns []string, names ...string) bool {
	for _, n := range names {
		if slices.Contains(columns, n) {
			return true
		}
	}
	return false
}
