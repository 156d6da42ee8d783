package scrapejob

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/scheduler"
)

type memJobs struct {
	mu     sync.Mutex
	seq    int
	jobs   map[string]*Job
	events map[string][]string
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: make(map[string]*Job), events: make(map[string][]string)}
}

func (m *memJobs) CreateJob(_ context.Context, job *Job) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	stored := job.Copy()
	stored.JobID = fmt.Sprintf("job-%d", m.seq)
	stored.CreatedAt = time.Unix(int64(m.seq), 0)
	stored.UpdatedAt = stored.CreatedAt
	m.jobs[stored.JobID] = stored
	return stored.Copy(), nil
}

func (m *memJobs) UpdateStatus(_ context.Context, jobID string, status JobStatus, message string, lastErr error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.jobs[jobID]
	j.Status = status
	j.StatusMessage.String, j.StatusMessage.Valid = message, true
	if lastErr != nil {
		j.LastError.String, j.LastError.Valid = lastErr.Error(), true
	}
	return nil
}

func (m *memJobs) UpdateProgress(_ context.Context, jobID string, current, total int, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.jobs[jobID]
	j.ProgressCurrent, j.ProgressTotal = current, total
	j.StatusMessage.String, j.StatusMessage.Valid = message, true
	return nil
}

func (m *memJobs) AppendEvent(_ context.Context, jobID string, eventType, message string, _, _ *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[jobID] = append(m.events[jobID], eventType+": "+message)
	return nil
}

func (m *memJobs) ResetStuckJobs(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.Status == JobStatusRunning {
			j.Status = JobStatusQueued
		}
	}
	return nil
}

func (m *memJobs) MarkNextJobRunning(context.Context) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next *Job
	for _, j := range m.jobs {
		if j.Status == JobStatusQueued && (next == nil || j.CreatedAt.Before(next.CreatedAt)) {
			next = j
		}
	}
	if next == nil {
		return nil, nil
	}
	next.Status = JobStatusRunning
	return next.Copy(), nil
}

func (m *memJobs) GetActiveJob(context.Context) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.Status == JobStatusRunning {
			return j.Copy(), nil
		}
	}
	return nil, nil
}

func (m *memJobs) ListRecentJobs(_ context.Context, limit int) ([]*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Job
	for _, j := range m.jobs {
		out = append(out, j.Copy())
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memJobs) job(id string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id].Copy()
}

type fakeOps struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
	date   time.Time
}

func (f *fakeOps) result(op, code string) (*scheduler.RunResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := op
	if code != "" {
		call += ":" + code
	}
	f.calls = append(f.calls, call)
	if err := f.failOn[call]; err != nil {
		return nil, err
	}
	run := &scheduler.RunResult{RunID: "r", Operation: op}
	if code != "" {
		run.Leagues = []scheduler.LeagueOutcome{{LeagueCode: code, Outcome: scheduler.OutcomeOK, Games: 1}}
	}
	return run, nil
}

func (f *fakeOps) SetSports(context.Context) (*scheduler.RunResult, error) {
	return f.result(scheduler.OpSetSports, "")
}

func (f *fakeOps) SetStandings(_ context.Context, code string) (*scheduler.RunResult, error) {
	return f.result(scheduler.OpSetStandings, code)
}

func (f *fakeOps) SetGames(_ context.Context, code string) (*scheduler.RunResult, error) {
	return f.result(scheduler.OpSetGames, code)
}

func (f *fakeOps) SetRoster(_ context.Context, code string) (*scheduler.RunResult, error) {
	return f.result(scheduler.OpSetRoster, code)
}

func (f *fakeOps) SetAll(context.Context) (*scheduler.RunResult, error) {
	run, err := f.result(scheduler.OpSetAll, "")
	if run != nil {
		run.Leagues = []scheduler.LeagueOutcome{
			{LeagueCode: "A", Outcome: scheduler.OutcomeOK},
			{LeagueCode: "B", Outcome: scheduler.OutcomeFailed, Error: "boom"},
		}
	}
	return run, err
}

func (f *fakeOps) UpdateDueToSeason(_ context.Context, now time.Time) (*scheduler.RunResult, error) {
	f.mu.Lock()
	f.date = now
	f.mu.Unlock()
	return f.result(scheduler.OpUpdateDueToSeason, "")
}

func (f *fakeOps) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func TestDeriveType(t *testing.T) {
	date := time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		req     Request
		want    JobType
		wantErr bool
	}{
		{name: "empty runs everything", req: Request{}, want: JobTypeAll},
		{name: "date alone is a season update", req: Request{Date: &date}, want: JobTypeSeason},
		{name: "explicit league op", req: Request{Operation: "set_games", LeagueCodes: []string{"2860Y8N5D"}}, want: JobTypeGames},
		{name: "sports needs no codes", req: Request{Operation: "set_sports"}, want: JobTypeSports},
		{name: "league op without codes", req: Request{Operation: "set_roster"}, wantErr: true},
		{name: "unknown op", req: Request{Operation: "set_weather"}, wantErr: true},
		{name: "codes without op", req: Request{LeagueCodes: []string{"2860Y8N5D"}}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.DeriveType()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnqueue(t *testing.T) {
	ctx := context.Background()
	jobs := newMemJobs()
	svc := NewService(jobs, &fakeOps{})

	job, err := svc.Enqueue(ctx, Request{Operation: "set_standings", LeagueCodes: []string{" 2860Y8N5D", "6TU0L9CN4", "2860Y8N5D"}})
	require.NoError(t, err)
	assert.Equal(t, JobStatusQueued, job.Status)
	assert.Equal(t, []string{"2860Y8N5D", "6TU0L9CN4"}, []string(job.LeagueCodes))
	assert.Equal(t, 2, job.ProgressTotal)
	assert.Equal(t, []string{"queued: Job queued"}, jobs.events[job.JobID])

	_, err = svc.Enqueue(ctx, Request{Operation: "set_games", LeagueCodes: []string{"NOPE"}})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	season, err := svc.Enqueue(ctx, Request{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, JobTypeSeason, season.JobType)
	assert.True(t, season.RunDate.Valid)

	status, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.ActiveJob)
	require.Len(t, status.History, 2)
	assert.Equal(t, season.JobID, status.History[0].JobID)
}

func TestWorkerRunsQueuedJobs(t *testing.T) {
	ctx := context.Background()
	jobs := newMemJobs()
	ops := &fakeOps{failOn: map[string]error{"set_games:6TU0L9CN4": errors.New("site down")}}
	svc := NewService(jobs, ops, WithPollInterval(10*time.Millisecond))

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	seasonJob, err := svc.Enqueue(ctx, Request{Date: &date})
	require.NoError(t, err)
	gamesJob, err := svc.Enqueue(ctx, Request{Operation: "set_games", LeagueCodes: []string{"6TU0L9CN4", "2860Y8N5D"}})
	require.NoError(t, err)
	allJob, err := svc.Enqueue(ctx, Request{})
	require.NoError(t, err)

	svc.Start()
	defer func() { require.NoError(t, svc.Shutdown(context.Background())) }()

	require.Eventually(t, func() bool {
		return jobs.job(allJob.JobID).Status != JobStatusQueued && jobs.job(allJob.JobID).Status != JobStatusRunning
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{
		"update_due_to_season",
		"set_games:6TU0L9CN4",
		"set_games:2860Y8N5D",
		"set_all",
	}, ops.callList())
	assert.Equal(t, date, ops.date)

	s := jobs.job(seasonJob.JobID)
	assert.Equal(t, JobStatusCompleted, s.Status)

	g := jobs.job(gamesJob.JobID)
	assert.Equal(t, JobStatusFailed, g.Status)
	assert.Contains(t, g.LastError.String, "1 of 2 leagues failed")
	assert.Equal(t, 2, g.ProgressCurrent)

	// a failed league inside a batch run does not fail the job
	a := jobs.job(allJob.JobID)
	assert.Equal(t, JobStatusCompleted, a.Status)
	assert.Contains(t, a.StatusMessage.String, "1 leagues ok, 1 failed")
	assert.Contains(t, jobs.events[allJob.JobID][len(jobs.events[allJob.JobID])-1], "error: 1 leagues failed")
}

func TestRunnerDryRun(t *testing.T) {
	ops := &fakeOps{}
	err := NewRunner(ops).Run(context.Background(), JobSpec{Type: JobTypeAll, DryRun: true}, nil)
	require.NoError(t, err)
	assert.Empty(t, ops.callList())
}

func TestBuildSpecRejectsMissingCodes(t *testing.T) {
	_, err := buildSpec(&Job{JobType: JobTypeRoster})
	assert.Error(t, err)

	_, err = buildSpec(&Job{JobType: "nope"})
	assert.Error(t, err)

	spec, err := buildSpec(&Job{JobType: JobTypeSports})
	require.NoError(t, err)
	assert.Equal(t, 1, specProgressUnits(spec))
}
