package publisher

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScrapeEvent(t *testing.T) {
	msg := redis.XMessage{
		ID: "1-0",
		Values: map[string]interface{}{
			"data":      `{"run_id":"r1","operation":"set_games","entity":"games","league_code":"2860Y8N5D","count":4,"timestamp":"2024-10-01T12:00:00Z"}`,
			"timestamp": "1727784000",
		},
	}

	event, err := DecodeScrapeEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, ScrapeEvent{
		RunID:      "r1",
		Operation:  "set_games",
		Entity:     "games",
		LeagueCode: "2860Y8N5D",
		Count:      4,
		Timestamp:  time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC),
	}, event)

	_, err = DecodeScrapeEvent(redis.XMessage{ID: "2-0", Values: map[string]interface{}{}})
	assert.Error(t, err)

	_, err = DecodeScrapeEvent(redis.XMessage{ID: "3-0", Values: map[string]interface{}{"data": "{"}})
	assert.Error(t, err)
}
