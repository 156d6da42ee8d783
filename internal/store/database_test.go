package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreOrderedAndEmbedded(t *testing.T) {
	names, err := Migrations()
	require.NoError(t, err)
	require.Len(t, names, 5)

	assert.Equal(t, "migrations/001_create_sports.sql", names[0])
	assert.Equal(t, "migrations/005_create_scrape_jobs.sql", names[4])

	for _, name := range names {
		body, err := migrationFS.ReadFile(name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS"), name)
	}
}
