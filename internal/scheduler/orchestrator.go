package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/metrics"
	"github.com/fortuna/athena/internal/normalize"
	"github.com/fortuna/athena/internal/publisher"
	"github.com/fortuna/athena/internal/season"
	"github.com/fortuna/athena/internal/store"
)

// Operation names, used for logs, metrics, events and job types.
const (
	OpSetSports         = "set_sports"
	OpSetStandings      = "set_standings"
	OpSetGames          = "set_games"
	OpSetRoster         = "set_roster"
	OpSetAll            = "set_all"
	OpUpdateDueToSeason = "update_due_to_season"
)

// Scraper produces normalized records for one sport at a time.
// *ingest.Pipeline implements it.
type Scraper interface {
	Home() lookup.School
	Sports(ctx context.Context, b *browser.Handle) ([]store.Sport, error)
	Standings(ctx context.Context, sport store.Sport, b *browser.Handle) ([]store.Standing, error)
	Games(ctx context.Context, sport store.Sport, b *browser.Handle, homeTeamID string) ([]store.Game, error)
	Roster(ctx context.Context, sport store.Sport, b *browser.Handle, homeTeamID string) (*store.Roster, error)
}

// BrowserProvider launches the shared browser. *browser.Manager
// implements it.
type BrowserProvider interface {
	Acquire(ctx context.Context, needed bool) (*browser.Handle, error)
}

// Invalidator drops cached reads after a write.
type Invalidator interface {
	InvalidateLeague(ctx context.Context, leagueCode string) error
	InvalidateRoster(ctx context.Context, docID string) error
}

// EventPublisher announces writes.
type EventPublisher interface {
	PublishScrapeEvent(ctx context.Context, event publisher.ScrapeEvent) error
}

// Config holds scheduler configuration
type Config struct {
	Concurrency     int            // league tasks run at once; default 4
	Location        *time.Location // schedule and season time zone
	EnableSchedules bool
	DailySpec       string // UpdateDueToSeason
	WeeklySpec      string // SetAll
	MonthlySpec     string // SetSports
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		loc = time.UTC
	}
	return &Config{
		Concurrency:     4,
		Location:        loc,
		EnableSchedules: true,
		DailySpec:       "0 0 * * *",
		WeeklySpec:      "0 1 * * 0",
		MonthlySpec:     "0 2 1 * *",
	}
}

// Orchestrator runs the top-level scrape operations and their schedules
type Orchestrator struct {
	scraper   Scraper
	browsers  BrowserProvider
	repo      store.Repository
	cache     Invalidator
	publisher EventPublisher
	config    *Config
	logger    *log.Logger

	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	lastRun map[string]*RunResult
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithCache invalidates cached reads after each write.
func WithCache(c Invalidator) Option {
	return func(o *Orchestrator) { o.cache = c }
}

// WithPublisher publishes a ScrapeEvent after each write.
func WithPublisher(p EventPublisher) Option {
	return func(o *Orchestrator) { o.publisher = p }
}

// WithLogger replaces the component logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(scraper Scraper, browsers BrowserProvider, repo store.Repository, config *Config, opts ...Option) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	o := &Orchestrator{
		scraper:  scraper,
		browsers: browsers,
		repo:     repo,
		config:   config,
		logger:   log.New(log.Writer(), "[scheduler] ", log.LstdFlags),
		lastRun:  make(map[string]*RunResult),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) newRun(op string) *RunResult {
	return &RunResult{
		RunID:     uuid.NewString(),
		Operation: op,
		StartedAt: time.Now(),
	}
}

func (o *Orchestrator) done(run *RunResult) {
	run.finish()
	metrics.RunDuration.WithLabelValues(run.Operation).Observe(run.Duration.Seconds())

	o.mu.Lock()
	o.lastRun[run.Operation] = run
	o.mu.Unlock()

	o.logger.Printf("✓ %s", run.Summary())
}

// acquire launches the shared browser when needed. The returned release
// func is always safe to defer.
func (o *Orchestrator) acquire(ctx context.Context, needed bool) (*browser.Handle, func(), error) {
	b, err := o.browsers.Acquire(ctx, needed)
	if err != nil {
		return nil, func() {}, err
	}
	return b, b.Release, nil
}

// sport resolves a league from the store, falling back to the static
// sports table for leagues never listed.
func (o *Orchestrator) sport(ctx context.Context, leagueCode string) (store.Sport, error) {
	s, err := o.repo.GetSport(ctx, leagueCode)
	if err == nil {
		return *s, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Sport{}, err
	}
	info, ok := lookup.SportByLeagueCode(leagueCode)
	if !ok {
		return store.Sport{}, fmt.Errorf("league %s: %w", leagueCode, store.ErrNotFound)
	}
	return store.Sport{
		Name:          info.Name,
		Term:          info.Term,
		LeagueCode:    info.LeagueCode,
		UsesGamesheet: info.UsesGamesheet,
	}, nil
}

// HomeTeamCode returns the home school's stats-site team id in a league,
// read from the stored standings. Empty when unknown.
func (o *Orchestrator) HomeTeamCode(ctx context.Context, leagueCode string) (string, error) {
	standings, err := o.repo.GetStandings(ctx, leagueCode)
	if err != nil {
		return "", err
	}
	id, _ := normalize.HomeTeamID(standings, o.scraper.Home().Name)
	return id, nil
}

// notify invalidates the cache and publishes an event for one write.
// Both are best effort.
func (o *Orchestrator) notify(ctx context.Context, run *RunResult, entity, leagueCode string, count int) {
	if o.cache != nil {
		if err := o.cache.InvalidateLeague(ctx, leagueCode); err != nil {
			o.logger.Printf("⚠️  Cache invalidation for %s %s failed: %v", entity, leagueCode, err)
		}
	}
	if o.publisher != nil {
		err := o.publisher.PublishScrapeEvent(ctx, publisher.ScrapeEvent{
			RunID:      run.RunID,
			Operation:  run.Operation,
			Entity:     entity,
			LeagueCode: leagueCode,
			Count:      count,
			Timestamp:  time.Now().UTC(),
		})
		if err != nil {
			o.logger.Printf("⚠️  Failed to publish %s event for %s: %v", entity, leagueCode, err)
		}
	}
}

// SetSports lists the home school's leagues and stores them. The browser
// is needed to confirm stats-site memberships.
func (o *Orchestrator) SetSports(ctx context.Context) (*RunResult, error) {
	run := o.newRun(OpSetSports)
	defer o.done(run)

	b, release, err := o.acquire(ctx, true)
	if err != nil {
		run.addError(err)
		return run, err
	}
	defer release()

	if _, err := o.setSports(ctx, run, b); err != nil {
		run.addError(err)
		return run, err
	}
	return run, nil
}

func (o *Orchestrator) setSports(ctx context.Context, run *RunResult, b *browser.Handle) ([]store.Sport, error) {
	sports, err := o.scraper.Sports(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("listing sports: %w", err)
	}
	if err := o.repo.UpsertSports(ctx, sports); err != nil {
		return nil, fmt.Errorf("storing sports: %w", err)
	}
	run.Sports = len(sports)
	o.notify(ctx, run, "sports", "", len(sports))
	return sports, nil
}

// single runs one league task with a browser acquired only when the
// sport needs it.
func (o *Orchestrator) single(ctx context.Context, op, leagueCode string, task leagueTask) (*RunResult, error) {
	run := o.newRun(op)
	defer o.done(run)

	sport, err := o.sport(ctx, leagueCode)
	if err != nil {
		run.addError(err)
		return run, err
	}

	b, release, err := o.acquire(ctx, sport.UsesGamesheet)
	if err != nil {
		run.addError(err)
		return run, err
	}
	defer release()

	o.runLeague(ctx, run, sport, b, task)
	return run, nil
}

// SetStandings scrapes and stores the league table of one league.
func (o *Orchestrator) SetStandings(ctx context.Context, leagueCode string) (*RunResult, error) {
	return o.single(ctx, OpSetStandings, leagueCode, o.standingsTask)
}

// SetGames scrapes and stores the home school's games in one league.
func (o *Orchestrator) SetGames(ctx context.Context, leagueCode string) (*RunResult, error) {
	return o.single(ctx, OpSetGames, leagueCode, o.gamesTask)
}

// SetRoster scrapes and stores the home team's roster in one league.
// Legacy leagues have no roster.
func (o *Orchestrator) SetRoster(ctx context.Context, leagueCode string) (*RunResult, error) {
	return o.single(ctx, OpSetRoster, leagueCode, o.rosterTask)
}

// SetAll refreshes the sports list, then standings, games and roster of
// every stored league, one concurrent task per league.
func (o *Orchestrator) SetAll(ctx context.Context) (*RunResult, error) {
	run := o.newRun(OpSetAll)
	defer o.done(run)

	b, release, err := o.acquire(ctx, true)
	if err != nil {
		run.addError(err)
		return run, err
	}
	defer release()

	if _, err := o.setSports(ctx, run, b); err != nil {
		run.addError(err)
		return run, err
	}
	sports, err := o.repo.ListSports(ctx)
	if err != nil {
		run.addError(err)
		return run, err
	}

	o.fanOut(ctx, run, sports, b, o.chain(o.standingsTask, o.gamesTask, o.rosterTask))
	return run, nil
}

// UpdateDueToSeason refreshes games then standings of the stored leagues
// whose term is in season at now. Every league is refreshed when now
// falls outside all terms.
func (o *Orchestrator) UpdateDueToSeason(ctx context.Context, now time.Time) (*RunResult, error) {
	run := o.newRun(OpUpdateDueToSeason)
	defer o.done(run)

	term := season.Classify(now.In(o.config.Location))
	sports, err := o.repo.ListSports(ctx)
	if err != nil {
		run.addError(err)
		return run, err
	}

	due := sports
	if term != lookup.Unknown {
		due = due[:0:0]
		for _, s := range sports {
			if s.Term == term {
				due = append(due, s)
			}
		}
	}
	o.logger.Printf("Season %s: %d of %d leagues due", term, len(due), len(sports))

	b, release, err := o.acquire(ctx, needsBrowser(due))
	if err != nil {
		run.addError(err)
		return run, err
	}
	defer release()

	o.fanOut(ctx, run, due, b, o.chain(o.gamesTask, o.standingsTask))
	return run, nil
}

func needsBrowser(sports []store.Sport) bool {
	for _, s := range sports {
		if s.UsesGamesheet {
			return true
		}
	}
	return false
}

// leagueTask does one unit of league work, adding its counts to out.
type leagueTask func(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, out *LeagueOutcome) error

// chain runs tasks in order, stopping at the first error.
func (o *Orchestrator) chain(tasks ...leagueTask) leagueTask {
	return func(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, out *LeagueOutcome) error {
		for _, task := range tasks {
			if err := task(ctx, run, sport, b, out); err != nil {
				return err
			}
		}
		return nil
	}
}

// fanOut runs task for every sport with bounded concurrency. Task errors
// never cancel siblings.
func (o *Orchestrator) fanOut(ctx context.Context, run *RunResult, sports []store.Sport, b *browser.Handle, task leagueTask) {
	var g errgroup.Group
	g.SetLimit(o.config.Concurrency)
	for _, sport := range sports {
		sport := sport
		g.Go(func() error {
			o.runLeague(ctx, run, sport, b, task)
			return nil
		})
	}
	_ = g.Wait()
}

// runLeague runs task for one league, converting a panic into a failed
// outcome.
func (o *Orchestrator) runLeague(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, task leagueTask) {
	out := LeagueOutcome{LeagueCode: sport.LeagueCode, SportName: sport.Name}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
				o.logger.Printf("panic in %s task for %s: %v\n%s", run.Operation, sport.LeagueCode, r, debug.Stack())
			}
		}()
		return task(ctx, run, sport, b, &out)
	}()

	switch {
	case err != nil:
		out.Outcome = OutcomeFailed
		out.Error = err.Error()
		o.logger.Printf("❌ %s %s (%s): %v", run.Operation, sport.Name, sport.LeagueCode, err)
	case out.Standings+out.Games+out.Players == 0:
		out.Outcome = OutcomeSkipped
	default:
		out.Outcome = OutcomeOK
	}
	metrics.LeagueTasks.WithLabelValues(run.Operation, out.Outcome).Inc()
	run.record(out)
}

func (o *Orchestrator) standingsTask(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, out *LeagueOutcome) error {
	standings, err := o.scraper.Standings(ctx, sport, b)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		o.logger.Printf("No standings for %s (%s)", sport.Name, sport.LeagueCode)
		return nil
	}
	if err := o.repo.ReplaceStandings(ctx, sport.LeagueCode, standings); err != nil {
		return fmt.Errorf("storing standings: %w", err)
	}
	out.Standings += len(standings)
	o.notify(ctx, run, "standings", sport.LeagueCode, len(standings))
	return nil
}

// homeTeamID is only looked up for stats-site leagues.
func (o *Orchestrator) homeTeamID(ctx context.Context, sport store.Sport) (string, error) {
	if !sport.UsesGamesheet {
		return "", nil
	}
	id, err := o.HomeTeamCode(ctx, sport.LeagueCode)
	if err != nil {
		return "", fmt.Errorf("home team code: %w", err)
	}
	if id == "" {
		o.logger.Printf("No stored stats-site id for %s in %s, run standings first", o.scraper.Home().Name, sport.LeagueCode)
	}
	return id, nil
}

func (o *Orchestrator) gamesTask(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, out *LeagueOutcome) error {
	teamID, err := o.homeTeamID(ctx, sport)
	if err != nil {
		return err
	}
	if sport.UsesGamesheet && teamID == "" {
		return nil
	}

	games, err := o.scraper.Games(ctx, sport, b, teamID)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return nil
	}
	if err := o.repo.UpsertGames(ctx, games); err != nil {
		return fmt.Errorf("storing games: %w", err)
	}
	out.Games += len(games)
	o.notify(ctx, run, "games", sport.LeagueCode, len(games))
	return nil
}

func (o *Orchestrator) rosterTask(ctx context.Context, run *RunResult, sport store.Sport, b *browser.Handle, out *LeagueOutcome) error {
	if !sport.UsesGamesheet {
		return nil
	}
	teamID, err := o.homeTeamID(ctx, sport)
	if err != nil || teamID == "" {
		return err
	}

	roster, err := o.scraper.Roster(ctx, sport, b, teamID)
	if err != nil {
		return err
	}
	if roster == nil {
		return nil
	}
	if err := o.repo.UpsertRoster(ctx, *roster); err != nil {
		return fmt.Errorf("storing roster: %w", err)
	}
	out.Players += len(roster.Players)
	if o.cache != nil {
		if err := o.cache.InvalidateRoster(ctx, roster.DocID); err != nil {
			o.logger.Printf("⚠️  Cache invalidation for roster %s failed: %v", roster.DocID, err)
		}
	}
	o.notify(ctx, run, "roster", sport.LeagueCode, len(roster.Players))
	return nil
}

// Start registers the cron schedules and starts them. Scheduled runs use
// a context cancelled by Stop.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.logger.Println("╔════════════════════════════════════════╗")
	o.logger.Println("║   Athena Scheduler Orchestrator        ║")
	o.logger.Println("╚════════════════════════════════════════╝")
	o.logger.Printf("Schedules: %v (%s)", o.config.EnableSchedules, o.config.Location)
	o.logger.Printf("Home school: %s", o.scraper.Home().Name)

	if !o.config.EnableSchedules {
		return nil
	}

	o.ctx, o.cancel = context.WithCancel(ctx)
	o.cron = cron.New(
		cron.WithLocation(o.config.Location),
		cron.WithLogger(cron.PrintfLogger(o.logger)),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	entries := []struct {
		spec string
		op   string
		run  func(ctx context.Context) (*RunResult, error)
	}{
		{o.config.DailySpec, OpUpdateDueToSeason, func(ctx context.Context) (*RunResult, error) {
			return o.UpdateDueToSeason(ctx, time.Now())
		}},
		{o.config.WeeklySpec, OpSetAll, o.SetAll},
		{o.config.MonthlySpec, OpSetSports, o.SetSports},
	}
	for _, e := range entries {
		if e.spec == "" {
			continue
		}
		if _, err := o.cron.AddFunc(e.spec, o.scheduled(e.op, e.run)); err != nil {
			return fmt.Errorf("schedule %s %q: %w", e.op, e.spec, err)
		}
		o.logger.Printf("→ %s scheduled at %q", e.op, e.spec)
	}

	o.cron.Start()
	return nil
}

func (o *Orchestrator) scheduled(op string, fn func(ctx context.Context) (*RunResult, error)) func() {
	return func() {
		o.logger.Println()
		o.logger.Printf("═══ Scheduled %s starting ═══", op)
		if _, err := fn(o.ctx); err != nil {
			o.logger.Printf("❌ Scheduled %s failed: %v", op, err)
			return
		}
		o.logger.Printf("═══ Scheduled %s complete ═══", op)
	}
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (o *Orchestrator) Stop() {
	o.logger.Println("Stopping scheduler orchestrator...")
	if o.cancel != nil {
		o.cancel()
	}
	if o.cron != nil {
		<-o.cron.Stop().Done()
	}
	o.logger.Println("✓ Scheduler orchestrator stopped")
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	status := map[string]interface{}{
		"schedules_enabled": o.config.EnableSchedules,
		"location":          o.config.Location.String(),
		"concurrency":       o.config.Concurrency,
		"home_school":       o.scraper.Home().Name,
		"daily":             o.config.DailySpec,
		"weekly":            o.config.WeeklySpec,
		"monthly":           o.config.MonthlySpec,
	}

	if o.cron != nil {
		var next []string
		for _, e := range o.cron.Entries() {
			next = append(next, e.Next.Format(time.RFC3339))
		}
		status["next_runs"] = next
	}

	o.mu.Lock()
	last := make(map[string]string, len(o.lastRun))
	for op, run := range o.lastRun {
		last[op] = run.Summary()
	}
	o.mu.Unlock()
	status["last_runs"] = last

	return status
}
