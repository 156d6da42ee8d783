// Package scrapejob queues on-demand scrape operations in Postgres and runs
// them one at a time on a background worker.
package scrapejob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fortuna/athena/internal/lookup"
	"github.com/fortuna/athena/internal/scheduler"
)

// ErrInvalidRequest marks a request that cannot be turned into a job.
var ErrInvalidRequest = errors.New("invalid scrape request")

// Request represents a scrape invocation request.
type Request struct {
	Operation   string     `json:"operation,omitempty"`
	LeagueCodes []string   `json:"league_codes,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// DeriveType infers the job type based on populated fields.
func (r Request) DeriveType() (JobType, error) {
	if r.Operation != "" {
		t := JobType(r.Operation)
		if !t.Valid() {
			return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidRequest, r.Operation)
		}
		if t.PerLeague() && len(r.LeagueCodes) == 0 {
			return "", fmt.Errorf("%w: %s requires league_codes", ErrInvalidRequest, t)
		}
		return t, nil
	}
	if len(r.LeagueCodes) > 0 {
		return "", fmt.Errorf("%w: league_codes need an operation", ErrInvalidRequest)
	}
	if r.Date != nil {
		return JobTypeSeason, nil
	}
	return JobTypeAll, nil
}

// Service coordinates job persistence, execution, and status reporting.
type Service struct {
	repo   JobStore
	runner *Runner

	historyLimit int
	pollInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPollInterval sets how long an idle worker waits between queue checks.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService constructs a Service. Call Start to launch the worker.
func NewService(repo JobStore, ops Operations, opts ...Option) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Service{
		repo:         repo,
		runner:       NewRunner(ops),
		historyLimit: 10,
		pollInterval: 3 * time.Second,
		ctx:          ctx,
		cancel:       cancel,
		logger:       log.New(log.Writer(), "[scrapejob] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the background worker loop.
func (s *Service) Start() {
	if err := s.repo.ResetStuckJobs(s.ctx); err != nil {
		s.logger.Printf("failed to reset jobs: %v", err)
	}

	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops the worker and waits for the running job to return.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a new job from the provided request.
func (s *Service) Enqueue(ctx context.Context, req Request) (*Job, error) {
	jobType, err := req.DeriveType()
	if err != nil {
		return nil, err
	}

	job := &Job{
		JobType:       jobType,
		Status:        JobStatusQueued,
		StatusMessage: sql.NullString{String: "Queued", Valid: true},
		ProgressTotal: 1,
	}

	if jobType.PerLeague() {
		codes, err := normalizeCodes(req.LeagueCodes)
		if err != nil {
			return nil, err
		}
		job.LeagueCodes = codes
		job.ProgressTotal = len(codes)
	}
	if jobType == JobTypeSeason && req.Date != nil {
		job.RunDate = sql.NullTime{Time: *req.Date, Valid: true}
	}

	stored, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	_ = s.repo.AppendEvent(ctx, stored.JobID, "queued", "Job queued", nil, nil)
	s.logger.Printf("✓ Queued %s job %s", stored.JobType, stored.JobID)

	return stored, nil
}

// normalizeCodes trims, dedupes and checks league codes against the static
// sports table.
func normalizeCodes(codes []string) ([]string, error) {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		if _, ok := lookup.SportByLeagueCode(c); !ok {
			return nil, fmt.Errorf("%w: unknown league code %q", ErrInvalidRequest, c)
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no league codes", ErrInvalidRequest)
	}
	return out, nil
}

// GetStatus returns the currently running job plus recent history.
func (s *Service) GetStatus(ctx context.Context) (*StatusSummary, error) {
	active, err := s.repo.GetActiveJob(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListRecentJobs(ctx, s.historyLimit)
	if err != nil {
		return nil, err
	}

	return &StatusSummary{
		ActiveJob: active,
		History:   history,
	}, nil
}

func (s *Service) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		job, err := s.repo.MarkNextJobRunning(s.ctx)
		if err != nil {
			if s.ctx.Err() != nil {
				return
			}
			s.logger.Printf("claim job error: %v", err)
		}
		if job == nil {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				continue
			}
		}

		s.executeJob(job)
	}
}

func (s *Service) executeJob(job *Job) {
	spec, err := buildSpec(job)
	if err != nil {
		s.logger.Printf("invalid job spec %s: %v", job.JobID, err)
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, "Invalid job specification", err)
		return
	}

	reporter := &jobReporter{
		ctx:   s.ctx,
		repo:  s.repo,
		jobID: job.JobID,
		total: specProgressUnits(spec),
	}

	s.logger.Printf("Running %s job %s", job.JobType, job.JobID)
	if err := s.runner.Run(s.ctx, spec, reporter); err != nil {
		status := JobStatusFailed
		if errors.Is(err, context.Canceled) {
			status = JobStatusCancelled
		}
		s.logger.Printf("❌ Job %s %s: %v", job.JobID, status, err)
		// the service context may be gone; record the outcome regardless
		_ = s.repo.UpdateStatus(context.Background(), job.JobID, status, "Job "+string(status), err)
		return
	}

	s.logger.Printf("✓ Job %s completed", job.JobID)
	_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusCompleted, reporter.summary("Job completed"), nil)
}

func buildSpec(job *Job) (JobSpec, error) {
	spec := JobSpec{Type: job.JobType}

	switch {
	case job.JobType.PerLeague():
		if len(job.LeagueCodes) == 0 {
			return spec, fmt.Errorf("%s job missing league_codes", job.JobType)
		}
		spec.LeagueCodes = append([]string(nil), job.LeagueCodes...)
	case job.JobType == JobTypeSeason:
		if job.RunDate.Valid {
			spec.RunDate = job.RunDate.Time
		}
	case job.JobType.Valid():
	default:
		return spec, fmt.Errorf("unknown job type %s", job.JobType)
	}

	return spec, nil
}

type jobReporter struct {
	ctx   context.Context
	repo  JobStore
	jobID string
	total int

	last string
}

func (r *jobReporter) OnJobStart(spec JobSpec) {
	if r.total == 0 {
		r.total = specProgressUnits(spec)
	}
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, 0, r.total, "Job starting")
}

func (r *jobReporter) OnProgress(message string, current int, total int) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, current, valueOr(total, r.total), message)
}

func (r *jobReporter) OnRunComplete(run *scheduler.RunResult) {
	r.last = run.Summary()
	_ = r.repo.AppendEvent(r.ctx, r.jobID, "run", r.last, nil, nil)
}

func (r *jobReporter) OnJobComplete() {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, r.total, r.total, "Job complete")
}

func (r *jobReporter) OnJobError(err error) {
	_ = r.repo.AppendEvent(r.ctx, r.jobID, "error", err.Error(), nil, nil)
}

// summary returns the last run summary, or fallback when no run reported.
func (r *jobReporter) summary(fallback string) string {
	if r.last != "" {
		return r.last
	}
	return fallback
}

func specProgressUnits(spec JobSpec) int {
	if spec.Type.PerLeague() {
		return len(spec.LeagueCodes)
	}
	return 1
}

func valueOr(val, fallback int) int {
	if val > 0 {
		return val
	}
	return fallback
}
