package scrapejob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fortuna/athena/internal/store"
)

// JobStore persists jobs and their events. *Repository implements it.
type JobStore interface {
	CreateJob(ctx context.Context, job *Job) (*Job, error)
	UpdateStatus(ctx context.Context, jobID string, status JobStatus, message string, lastErr error) error
	UpdateProgress(ctx context.Context, jobID string, current, total int, message string) error
	AppendEvent(ctx context.Context, jobID string, eventType, message string, current, total *int) error
	ResetStuckJobs(ctx context.Context) error
	MarkNextJobRunning(ctx context.Context) (*Job, error)
	GetActiveJob(ctx context.Context) (*Job, error)
	ListRecentJobs(ctx context.Context, limit int) ([]*Job, error)
}

// Repository handles persistence for scrape jobs and events.
type Repository struct {
	db *store.Database
}

var _ JobStore = (*Repository)(nil)

// NewRepository constructs a Repository.
func NewRepository(db *store.Database) *Repository {
	return &Repository{db: db}
}

const jobColumns = `job_id, operation, league_codes, run_date, status, status_message,
	progress_current, progress_total, last_error,
	created_at, updated_at, started_at, completed_at`

// CreateJob inserts a new job row and returns the stored record.
func (r *Repository) CreateJob(ctx context.Context, job *Job) (*Job, error) {
	query := `
		INSERT INTO scrape_jobs (
			job_id, operation, league_codes, run_date,
			status, status_message, progress_current, progress_total
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING ` + jobColumns

	codes := job.LeagueCodes
	if codes == nil {
		codes = pq.StringArray{}
	}

	row := r.db.DB().QueryRowContext(ctx, query,
		uuid.NewString(), string(job.JobType), codes, job.RunDate,
		string(job.Status), job.StatusMessage, job.ProgressCurrent, job.ProgressTotal,
	)

	return scanJob(row)
}

// UpdateStatus updates status, message and optional error.
func (r *Repository) UpdateStatus(ctx context.Context, jobID string, status JobStatus, message string, lastErr error) error {
	query := `
		UPDATE scrape_jobs
		SET status = $2::varchar,
			status_message = $3,
			last_error = $4,
			updated_at = NOW(),
			completed_at = CASE WHEN $2::varchar IN ('completed','failed','cancelled') THEN NOW() ELSE completed_at END
		WHERE job_id = $1
	`

	var errText sql.NullString
	if lastErr != nil {
		errText = sql.NullString{String: lastErr.Error(), Valid: true}
	}

	if _, err := r.db.DB().ExecContext(ctx, query, jobID, string(status), message, errText); err != nil {
		return fmt.Errorf("update job status: %w", err)
	}

	return nil
}

// UpdateProgress updates the progress counters and optional message.
func (r *Repository) UpdateProgress(ctx context.Context, jobID string, current, total int, message string) error {
	query := `
		UPDATE scrape_jobs
		SET progress_current = $2,
			progress_total = $3,
			status_message = $4,
			updated_at = NOW()
		WHERE job_id = $1
	`

	if _, err := r.db.DB().ExecContext(ctx, query, jobID, current, total, message); err != nil {
		return fmt.Errorf("update job progress: %w", err)
	}

	return nil
}

// AppendEvent stores a log entry for a job.
func (r *Repository) AppendEvent(ctx context.Context, jobID string, eventType, message string, current, total *int) error {
	query := `
		INSERT INTO scrape_job_events (job_id, event_type, message, progress_current, progress_total)
		VALUES ($1,$2,$3,$4,$5)
	`

	var currentVal interface{}
	if current != nil {
		currentVal = *current
	}
	var totalVal interface{}
	if total != nil {
		totalVal = *total
	}

	if _, err := r.db.DB().ExecContext(ctx, query, jobID, eventType, message, currentVal, totalVal); err != nil {
		return fmt.Errorf("insert job event: %w", err)
	}
	return nil
}

// ResetStuckJobs moves running jobs back to queued (used during service restarts).
func (r *Repository) ResetStuckJobs(ctx context.Context) error {
	_, err := r.db.DB().ExecContext(ctx, `
		UPDATE scrape_jobs
		SET status = 'queued',
			status_message = 'Reset after service restart',
			updated_at = NOW()
		WHERE status = 'running'
	`)
	if err != nil {
		return fmt.Errorf("reset stuck jobs: %w", err)
	}
	return nil
}

// MarkNextJobRunning atomically claims the oldest queued job. It returns
// nil when the queue is empty.
func (r *Repository) MarkNextJobRunning(ctx context.Context) (*Job, error) {
	query := `
		WITH next_job AS (
			SELECT job_id
			FROM scrape_jobs
			WHERE status = 'queued'
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE scrape_jobs
		SET status = 'running',
			status_message = 'Starting job...',
			started_at = COALESCE(started_at, NOW()),
			updated_at = NOW()
		FROM next_job
		WHERE scrape_jobs.job_id = next_job.job_id
		RETURNING scrape_jobs.job_id, scrape_jobs.operation, scrape_jobs.league_codes,
			scrape_jobs.run_date, scrape_jobs.status, scrape_jobs.status_message,
			scrape_jobs.progress_current, scrape_jobs.progress_total, scrape_jobs.last_error,
			scrape_jobs.created_at, scrape_jobs.updated_at,
			scrape_jobs.started_at, scrape_jobs.completed_at
	`

	row := r.db.DB().QueryRowContext(ctx, query)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetActiveJob returns the currently running job, if any.
func (r *Repository) GetActiveJob(ctx context.Context) (*Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM scrape_jobs
		WHERE status = 'running'
		ORDER BY started_at DESC
		LIMIT 1
	`

	row := r.db.DB().QueryRowContext(ctx, query)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active job: %w", err)
	}
	return job, nil
}

// ListRecentJobs returns the most recently created jobs.
func (r *Repository) ListRecentJobs(ctx context.Context, limit int) ([]*Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM scrape_jobs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(scanner interface {
	Scan(dest ...interface{}) error
}) (*Job, error) {
	job := &Job{}
	err := scanner.Scan(
		&job.JobID,
		&job.JobType,
		&job.LeagueCodes,
		&job.RunDate,
		&job.Status,
		&job.StatusMessage,
		&job.ProgressCurrent,
		&job.ProgressTotal,
		&job.LastError,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.StartedAt,
		&job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}
