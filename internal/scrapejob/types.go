package scrapejob

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/fortuna/athena/internal/scheduler"
)

// JobType is the orchestrator operation a job runs.
type JobType string

const (
	JobTypeSports    JobType = scheduler.OpSetSports
	JobTypeStandings JobType = scheduler.OpSetStandings
	JobTypeGames     JobType = scheduler.OpSetGames
	JobTypeRoster    JobType = scheduler.OpSetRoster
	JobTypeAll       JobType = scheduler.OpSetAll
	JobTypeSeason    JobType = scheduler.OpUpdateDueToSeason
)

// PerLeague reports whether the type runs once per league code.
func (t JobType) PerLeague() bool {
	switch t {
	case JobTypeStandings, JobTypeGames, JobTypeRoster:
		return true
	}
	return false
}

// Valid reports whether t names an operation.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeSports, JobTypeStandings, JobTypeGames, JobTypeRoster, JobTypeAll, JobTypeSeason:
		return true
	}
	return false
}

// JobStatus represents the lifecycle state for a job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job models the database representation of a scrape job.
type Job struct {
	JobID           string
	JobType         JobType
	LeagueCodes     pq.StringArray
	RunDate         sql.NullTime
	Status          JobStatus
	StatusMessage   sql.NullString
	ProgressCurrent int
	ProgressTotal   int
	LastError       sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StartedAt       sql.NullTime
	CompletedAt     sql.NullTime
}

// Copy returns a shallow copy to prevent external mutation.
func (j *Job) Copy() *Job {
	if j == nil {
		return nil
	}
	cpy := *j
	cpy.LeagueCodes = append(pq.StringArray(nil), j.LeagueCodes...)
	return &cpy
}

// JobSpec describes the work to be performed by the runner.
type JobSpec struct {
	Type        JobType
	LeagueCodes []string
	RunDate     time.Time
	DryRun      bool
}

// Reporter receives lifecycle callbacks from the runner.
type Reporter interface {
	OnJobStart(spec JobSpec)
	OnProgress(message string, current int, total int)
	OnRunComplete(run *scheduler.RunResult)
	OnJobComplete()
	OnJobError(err error)
}

// StatusSummary is returned to API callers.
type StatusSummary struct {
	ActiveJob *Job   `json:"active_job,omitempty"`
	History   []*Job `json:"recent_jobs,omitempty"`
}
