// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ScrapeAttempts counts page and HTTP fetches by source site and operation.
	ScrapeAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_scrape_attempts_total",
			Help: "Scrape attempts by source and operation",
		},
		[]string{"source", "operation"},
	)

	// ScrapeFailures counts attempts that returned an error.
	ScrapeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_scrape_failures_total",
			Help: "Failed scrape attempts by source and operation",
		},
		[]string{"source", "operation"},
	)

	// LeagueTasks counts per-league task outcomes (ok, failed, skipped).
	LeagueTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_league_tasks_total",
			Help: "League task outcomes by operation",
		},
		[]string{"operation", "outcome"},
	)

	// RunDuration observes orchestrator run durations.
	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "athena_run_duration_seconds",
			Help:    "Orchestrator run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		},
		[]string{"operation"},
	)

	// OpenPages tracks browser tabs currently open.
	OpenPages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "athena_browser_open_pages",
			Help: "Browser pages currently open",
		},
	)

	// PagesOpened counts every browser page opened.
	PagesOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "athena_browser_pages_opened_total",
			Help: "Browser pages opened",
		},
	)
)

func init() {
	prometheus.MustRegister(ScrapeAttempts, ScrapeFailures)
	prometheus.MustRegister(LeagueTasks, RunDuration)
	prometheus.MustRegister(OpenPages, PagesOpened)
}

// Attempt records one scrape attempt and, when err is non-nil, a failure.
func Attempt(source, operation string, err error) {
	ScrapeAttempts.WithLabelValues(source, operation).Inc()
	if err != nil {
		ScrapeFailures.WithLabelValues(source, operation).Inc()
	}
}
