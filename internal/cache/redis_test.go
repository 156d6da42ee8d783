package cache

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLeagueKeys(t *testing.T) {
	keys := LeagueKeys("2860Y8N5D")
	assert.Contains(t, keys, "athena:standings:2860Y8N5D")
	assert.Contains(t, keys, "athena:games:2860Y8N5D")
	assert.Contains(t, keys, AllGamesKey())
	assert.NotContains(t, keys, SportsKey())
}

func startRedis(t *testing.T) *RedisCache {
	t.Helper()
	if os.Getenv("ATHENA_INTEGRATION") == "" {
		t.Skip("set ATHENA_INTEGRATION to run against a redis container")
	}
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	c, err := NewRedisCache(fmt.Sprintf("redis://%s:%s/0", host, port.Port()), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestJSONRoundTripAndInvalidation(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()

	var out []map[string]any
	assert.ErrorIs(t, c.GetJSON(ctx, GamesKey("L1"), &out), ErrMiss)

	in := []map[string]any{{"game_code": "G_66_67_2024_09_25_L1", "home_score": "3"}}
	require.NoError(t, c.SetJSON(ctx, GamesKey("L1"), in))
	require.NoError(t, c.SetJSON(ctx, GamesKey("L2"), in))
	require.NoError(t, c.GetJSON(ctx, GamesKey("L1"), &out))
	assert.Equal(t, in, out)

	require.NoError(t, c.InvalidateLeague(ctx, "L1"))
	assert.ErrorIs(t, c.GetJSON(ctx, GamesKey("L1"), &out), ErrMiss)
	assert.NoError(t, c.GetJSON(ctx, GamesKey("L2"), &out))
}
