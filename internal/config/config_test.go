package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Appleby College", cfg.HomeSchool.Name)
	assert.Equal(t, "8080", cfg.RESTPort)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, "America/Toronto", cfg.Location.String())
	assert.True(t, cfg.EnableSchedules)

	sched := cfg.Scheduler()
	assert.Equal(t, cfg.Location, sched.Location)
	assert.Equal(t, "0 0 * * *", sched.DailySpec)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME_SCHOOL_ID", "67")
	t.Setenv("SCRAPE_CONCURRENCY", "8")
	t.Setenv("RETRY_BACKOFF", "500ms")
	t.Setenv("CISAA_RPS", "0.5")
	t.Setenv("ENABLE_SCHEDULES", "false")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, ,https://athena.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Upper Canada College", cfg.HomeSchool.Name)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.Backoff)
	assert.False(t, cfg.EnableSchedules)
	assert.Equal(t, []string{"http://localhost:3000", "https://athena.example"}, cfg.CORSAllowOrigins)

	cc := cfg.CISAA()
	assert.Equal(t, 0.5, cc.RPS)
	assert.Equal(t, 8, cc.Concurrency)
	assert.Equal(t, "/usr/bin/chromium", cfg.Browser().ExecPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"HOME_SCHOOL_ID", "9999"},
		{"SCHEDULE_TZ", "Mars/Olympus"},
		{"SCRAPE_CONCURRENCY", "0"},
		{"CISAA_RPS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
