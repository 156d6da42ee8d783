package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Outcome of one league task.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// LeagueOutcome records what one league task wrote.
type LeagueOutcome struct {
	LeagueCode string `json:"league_code"`
	SportName  string `json:"sport_name"`
	Outcome    string `json:"outcome"`
	Standings  int    `json:"standings"`
	Games      int    `json:"games"`
	Players    int    `json:"players"`
	Error      string `json:"error,omitempty"`
}

// RunResult summarizes one orchestrator operation. It is safe to record
// into from concurrent league tasks.
type RunResult struct {
	RunID     string          `json:"run_id"`
	Operation string          `json:"operation"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
	Sports    int             `json:"sports"`
	Leagues   []LeagueOutcome `json:"leagues"`
	Errors    []string        `json:"errors,omitempty"`

	mu sync.Mutex
}

func (r *RunResult) record(o LeagueOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Leagues = append(r.Leagues, o)
	if o.Error != "" {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", o.LeagueCode, o.Error))
	}
}

func (r *RunResult) addError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, err.Error())
}

// finish stamps the duration and orders league outcomes by code.
func (r *RunResult) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Duration = time.Since(r.StartedAt)
	sort.Slice(r.Leagues, func(i, j int) bool {
		return r.Leagues[i].LeagueCode < r.Leagues[j].LeagueCode
	})
}

// Count returns how many league tasks ended with outcome.
func (r *RunResult) Count(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.Leagues {
		if l.Outcome == outcome {
			n++
		}
	}
	return n
}

// Summary returns a one-line description of the run.
func (r *RunResult) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var standings, games, players, ok, failed, skipped int
	for _, l := range r.Leagues {
		standings += l.Standings
		games += l.Games
		players += l.Players
		switch l.Outcome {
		case OutcomeOK:
			ok++
		case OutcomeFailed:
			failed++
		case OutcomeSkipped:
			skipped++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d leagues ok, %d failed, %d skipped", r.Operation, r.RunID, ok, failed, skipped)
	if r.Sports > 0 {
		fmt.Fprintf(&b, "; %d sports", r.Sports)
	}
	fmt.Fprintf(&b, "; %d standings, %d games, %d players in %s",
		standings, games, players, r.Duration.Round(time.Millisecond))
	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, " (%d errors)", len(r.Errors))
	}
	return b.String()
}
