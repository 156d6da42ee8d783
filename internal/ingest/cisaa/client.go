// Package cisaa scrapes the legacy CISAA results site. Every page is the
// same form PUT keyed by league code.
package cisaa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/metrics"
	"github.com/fortuna/athena/internal/normalize"
	"github.com/fortuna/athena/internal/store"
)

const (
	// ResultsURL is the single results endpoint of the legacy site.
	ResultsURL = "http://www.cisaa.ca/cisaa/ShowPage.dcisaa?CISAA_Results"

	// BootstrapLeague is any league whose page carries the season dropdowns.
	BootstrapLeague = "2860Y8N5D"

	source = "cisaa"
)

// MembershipChecker confirms stats-site membership of the home team.
type MembershipChecker interface {
	TeamInStandings(ctx context.Context, comp gamesheet.Competition, teamName string) bool
}

// MembershipFunc adapts a function to MembershipChecker.
type MembershipFunc func(ctx context.Context, comp gamesheet.Competition, teamName string) bool

// TeamInStandings calls f.
func (f MembershipFunc) TeamInStandings(ctx context.Context, comp gamesheet.Competition, teamName string) bool {
	return f(ctx, comp, teamName)
}

// Config tunes the legacy client.
type Config struct {
	URL         string
	RPS         float64
	Timeout     time.Duration
	Concurrency int
}

// DefaultConfig is two requests per second against the public site.
func DefaultConfig() Config {
	return Config{
		URL:         ResultsURL,
		RPS:         2,
		Timeout:     30 * time.Second,
		Concurrency: 4,
	}
}

// Client reads league pages from the legacy site.
type Client struct {
	http        *resty.Client
	url         string
	home        lookup.School
	concurrency int
	now         func() time.Time
	logger      *log.Logger
}

// NewClient creates a legacy-site client for the given home school.
func NewClient(cfg Config, home lookup.School, logger *log.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = ResultsURL
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[cisaa] ", log.LstdFlags)
	}

	httpClient := resty.New()
	httpClient.SetTimeout(cfg.Timeout)
	httpClient.SetHeader("Content-Type", "application/x-www-form-urlencoded")

	// burst of 1 keeps requests evenly spaced
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	return &Client{
		http:        httpClient,
		url:         cfg.URL,
		home:        home,
		concurrency: cfg.Concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

// fetch loads the results page of one league.
func (c *Client) fetch(ctx context.Context, operation, leagueCode string) (*goquery.Document, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"txtleague": leagueCode}).
		Put(c.url)
	if err != nil {
		metrics.Attempt(source, operation, err)
		return nil, fmt.Errorf("fetch league %s: %w", leagueCode, err)
	}
	if resp.IsError() {
		err = fmt.Errorf("fetch league %s: status %d", leagueCode, resp.StatusCode())
		metrics.Attempt(source, operation, err)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	metrics.Attempt(source, operation, err)
	if err != nil {
		return nil, fmt.Errorf("parse league %s: %w", leagueCode, err)
	}
	return doc, nil
}

// ListLeagues returns the leagues the home school plays in, in Fall,
// Winter, Spring order. Stats-site leagues are confirmed through checker;
// with a nil checker they are skipped.
func (c *Client) ListLeagues(ctx context.Context, checker MembershipChecker) ([]store.Sport, error) {
	doc, err := c.fetch(ctx, "leagues", BootstrapLeague)
	if err != nil {
		return nil, err
	}

	var candidates []store.Sport
	for _, opt := range ParseLeagueOptions(doc) {
		info, ok := lookup.SportByLeagueCode(opt.Code)
		if !ok {
			c.logger.Printf("⚠️  League %s (%s) not in lookup table, skipping", opt.Code, opt.Name)
			continue
		}
		candidates = append(candidates, store.Sport{
			Name:          opt.Name,
			Term:          opt.Term,
			LeagueCode:    opt.Code,
			UsesGamesheet: info.UsesGamesheet,
		})
	}

	member := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, sport := range candidates {
		i, sport := i, sport
		g.Go(func() error {
			ok, err := c.memberOf(gctx, sport, checker)
			if err != nil {
				c.logger.Printf("⚠️  Membership check for %s failed: %v", sport.LeagueCode, err)
				return nil
			}
			member[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sports []store.Sport
	for i, sport := range candidates {
		if member[i] {
			sports = append(sports, sport)
		}
	}
	c.logger.Printf("✓ %s plays in %d of %d leagues", c.home.Name, len(sports), len(candidates))
	return sports, nil
}

func (c *Client) memberOf(ctx context.Context, sport store.Sport, checker MembershipChecker) (bool, error) {
	if !sport.UsesGamesheet {
		return c.IsTeamInLeague(ctx, sport.LeagueCode)
	}
	if checker == nil {
		c.logger.Printf("⚠️  No stats-site checker for %s, skipping", sport.LeagueCode)
		return false, nil
	}
	comp, ok, err := c.SeasonAndDivisionFor(ctx, sport.LeagueCode)
	if err != nil || !ok {
		return false, err
	}
	return checker.TeamInStandings(ctx, comp, c.home.Name), nil
}

// IsTeamInLeague checks the legacy membership table of a league.
func (c *Client) IsTeamInLeague(ctx context.Context, leagueCode string) (bool, error) {
	doc, err := c.fetch(ctx, "membership", leagueCode)
	if err != nil {
		return false, err
	}
	return ParseMembership(doc, c.home.Name), nil
}

// StandingsFor reads both legacy standings tables of a league.
func (c *Client) StandingsFor(ctx context.Context, leagueCode string) ([]store.Standing, error) {
	doc, err := c.fetch(ctx, "standings", leagueCode)
	if err != nil {
		return nil, err
	}

	rows := ParseStandings(doc)
	standings := make([]store.Standing, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, normalize.ToStanding(row, leagueCode))
	}
	return standings, nil
}

// GamesFor reads the legacy schedule of a league, keeping games of the
// home school whose opponents resolve.
func (c *Client) GamesFor(ctx context.Context, sport store.Sport) ([]store.Game, error) {
	doc, err := c.fetch(ctx, "schedule", sport.LeagueCode)
	if err != nil {
		return nil, err
	}

	today := c.now()
	var games []store.Game
	for _, row := range ParseSchedule(doc) {
		game, err := normalize.ToGame(row, sport, c.home, today)
		switch {
		case errors.Is(err, normalize.ErrNotHomeGame):
			continue
		case errors.Is(err, normalize.ErrUnresolvedSchool):
			c.logger.Printf("⚠️  School not found for abbreviation in %s: %v", sport.LeagueCode, err)
			continue
		case err != nil:
			c.logger.Printf("⚠️  Skipping %s row %q: %v", sport.LeagueCode, strings.TrimSpace(row.DateText), err)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// SeasonAndDivisionFor reads the stats-site competition of a league. A
// page without the embed reports false without error.
func (c *Client) SeasonAndDivisionFor(ctx context.Context, leagueCode string) (gamesheet.Competition, bool, error) {
	doc, err := c.fetch(ctx, "competition", leagueCode)
	if err != nil {
		return gamesheet.Competition{}, false, err
	}
	comp, ok := ParseCompetition(doc)
	if !ok {
		c.logger.Printf("⚠️  League %s has no stats-site embed", leagueCode)
	}
	return comp, ok, nil
}
