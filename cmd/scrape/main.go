// Command scrape runs one scrape operation against the CISAA sites and
// exits.
//
// Usage:
//
//	athena-scrape sports
//	athena-scrape standings --league 2860Y8N5D
//	athena-scrape games --league 2860Y8N5D --league 6TU0L9CN4
//	athena-scrape roster --league 2860Y8N5D
//	athena-scrape all
//	athena-scrape season-update --date 2024-11-02
//	athena-scrape season --date 2024-11-02
//	athena-scrape enqueue set_games --league 2860Y8N5D
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fortuna/athena/internal/cache"
	"github.com/fortuna/athena/internal/config"
	"github.com/fortuna/athena/internal/ingest"
	"github.com/fortuna/athena/internal/ingest/browser"
	"github.com/fortuna/athena/internal/ingest/cisaa"
	"github.com/fortuna/athena/internal/ingest/gamesheet"
	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/normalize"
	"github.com/fortuna/athena/internal/publisher"
	"github.com/fortuna/athena/internal/scheduler"
	"github.com/fortuna/athena/internal/scrapejob"
	"github.com/fortuna/athena/internal/season"
	"github.com/fortuna/athena/internal/store"
	"github.com/fortuna/athena/internal/store/memstore"
	"github.com/fortuna/athena/internal/store/repository"
)

const (
	appName    = "athena-scrape"
	appVersion = "1.0.0"
)

type options struct {
	memory bool
	dryRun bool
}

func main() {
	_ = godotenv.Load(".env")

	var opts options

	root := &cobra.Command{
		Use:          appName,
		Short:        "Scrape CISAA standings, games and rosters",
		Version:      appVersion,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.memory, "memory", false, "Keep results in memory instead of Postgres and print them")
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Resolve the operation without scraping")

	root.AddCommand(opCmd(&opts, "sports", "Refresh the leagues the home school plays in", scrapejob.JobTypeSports, false))
	root.AddCommand(opCmd(&opts, "standings", "Refresh the league tables of the given leagues", scrapejob.JobTypeStandings, true))
	root.AddCommand(opCmd(&opts, "games", "Refresh the home school's games in the given leagues", scrapejob.JobTypeGames, true))
	root.AddCommand(opCmd(&opts, "roster", "Refresh the home school's roster in the given leagues", scrapejob.JobTypeRoster, true))
	root.AddCommand(opCmd(&opts, "all", "Refresh sports, then every league's standings, games and roster", scrapejob.JobTypeAll, false))
	root.AddCommand(seasonUpdateCmd(&opts))
	root.AddCommand(seasonCmd())
	root.AddCommand(enqueueCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func opCmd(opts *options, use, short string, jobType scrapejob.JobType, perLeague bool) *cobra.Command {
	var leagues []string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if perLeague && len(leagues) == 0 {
				return fmt.Errorf("%s needs at least one --league", use)
			}
			return run(opts, scrapejob.JobSpec{Type: jobType, LeagueCodes: leagues})
		},
	}
	if perLeague {
		cmd.Flags().StringSliceVar(&leagues, "league", nil, "League code (repeatable)")
	}
	return cmd
}

func seasonUpdateCmd(opts *options) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "season-update",
		Short: "Refresh games and standings of the leagues in season",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := scrapejob.JobSpec{Type: scrapejob.JobTypeSeason}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				spec.RunDate = d
			}
			return run(opts, spec)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to classify (YYYY-MM-DD, default today)")
	return cmd
}

func seasonCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Print the term a date falls in and its leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			d := time.Now().In(cfg.Location)
			if date != "" {
				if d, err = time.ParseInLocation("2006-01-02", date, cfg.Location); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}
			term := season.Classify(d)
			leagues := lookup.SportsByTerm(term)
			if term == lookup.Unknown {
				leagues = lookup.AllSports()
			}
			return printJSON(map[string]any{
				"date":    d.Format("2006-01-02"),
				"term":    term,
				"leagues": leagues,
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to classify (YYYY-MM-DD, default today)")
	return cmd
}

func enqueueCmd() *cobra.Command {
	var (
		leagues []string
		date    string
	)
	cmd := &cobra.Command{
		Use:   "enqueue <operation>",
		Short: "Queue a scrape job for the running service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := scrapejob.Request{Operation: args[0], LeagueCodes: leagues}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				req.Date = &d
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			db, err := store.NewDatabase(ctx, cfg.DSN)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			// the worker only runs in the service; nothing here claims jobs
			jobs := scrapejob.NewService(scrapejob.NewRepository(db), nil)
			job, err := jobs.Enqueue(ctx, req)
			if err != nil {
				return err
			}
			log.Printf("✓ Queued %s job %s", job.JobType, job.JobID)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&leagues, "league", nil, "League code (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "Run date for update_due_to_season (YYYY-MM-DD)")
	return cmd
}

// run builds the scrape stack and executes spec once.
func run(opts *options, spec scrapejob.JobSpec) error {
	log.Printf("=== %s v%s ===", appName, appVersion)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		repo    store.Repository
		schOpts []scheduler.Option
	)
	if opts.memory {
		repo = memstore.New()
	} else {
		db, err := store.NewDatabase(ctx, cfg.DSN)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		if err := db.RunMigrations(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		repo = repository.NewPostgres(db)

		// cache invalidation and events are best effort from the CLI
		if rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL); err != nil {
			log.Printf("⚠️  Redis unavailable, cached reads will not be invalidated: %v", err)
		} else {
			defer rc.Close()
			schOpts = append(schOpts,
				scheduler.WithCache(rc),
				scheduler.WithPublisher(publisher.NewRedisStreamPublisher(rc.Client())),
			)
		}
	}

	pipeline := ingest.NewPipeline(
		cisaa.NewClient(cfg.CISAA(), cfg.HomeSchool, nil),
		gamesheet.NewParser(cfg.GamesheetURL, cfg.Retry, nil),
		cfg.HomeSchool,
		cfg.Location,
		nil,
	)
	sched := cfg.Scheduler()
	sched.EnableSchedules = false
	orchestrator := scheduler.NewOrchestrator(pipeline, browser.NewManager(cfg.Browser(), nil), repo, sched, schOpts...)

	spec.DryRun = opts.dryRun
	reporter := &consoleReporter{dryRun: opts.dryRun}
	if err := scrapejob.NewRunner(orchestrator).Run(ctx, spec, reporter); err != nil {
		return fmt.Errorf("%s failed: %w", spec.Type, err)
	}

	if opts.memory && !opts.dryRun {
		return dump(ctx, repo)
	}
	log.Println("✓ Scrape completed successfully")
	return nil
}

// dump prints everything held in repo.
func dump(ctx context.Context, repo store.Repository) error {
	sports, err := repo.ListSports(ctx)
	if err != nil {
		return err
	}
	standings, err := repo.GetAllStandings(ctx)
	if err != nil {
		return err
	}
	games, err := repo.GetAllGames(ctx)
	if err != nil {
		return err
	}

	rosters := make([]map[string]any, 0)
	for _, s := range sports {
		r, err := repo.GetRoster(ctx, normalize.RosterDocID(s.Name))
		if err != nil {
			continue
		}
		rosters = append(rosters, r.ToMap())
	}

	out := map[string]any{
		"sports":    toMaps(sports),
		"standings": toMaps(standings),
		"games":     toMaps(games),
		"rosters":   rosters,
	}
	return printJSON(out)
}

func toMaps[T interface{ ToMap() map[string]any }](records []T) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToMap())
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type consoleReporter struct {
	dryRun bool
}

func (c *consoleReporter) OnJobStart(spec scrapejob.JobSpec) {
	log.Printf("Starting %s job (dry_run=%v)", spec.Type, c.dryRun)
}

func (c *consoleReporter) OnProgress(message string, current int, total int) {
	log.Printf("Progress: %s (%d/%d)", message, current, total)
}

func (c *consoleReporter) OnRunComplete(run *scheduler.RunResult) {
	log.Printf("✓ %s", run.Summary())
	for _, e := range run.Errors {
		log.Printf("  ❌ %s", e)
	}
}

func (c *consoleReporter) OnJobComplete() {
	log.Println("Job complete")
}

func (c *consoleReporter) OnJobError(err error) {
	log.Printf("Job error: %v", err)
}
