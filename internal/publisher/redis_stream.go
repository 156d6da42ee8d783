package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScrapeStream is the stream every scrape event is appended to.
const ScrapeStream = "scrape.events"

// streamMaxLen caps the stream so it never grows unbounded.
const streamMaxLen = 1000

// ScrapeEvent announces one successful write of scraped records.
type ScrapeEvent struct {
	RunID      string    `json:"run_id"`
	Operation  string    `json:"operation"`
	Entity     string    `json:"entity"`
	LeagueCode string    `json:"league_code,omitempty"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
}

// RedisStreamPublisher publishes events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		stream: ScrapeStream,
	}
}

// PublishScrapeEvent appends event to the scrape stream
func (rsp *RedisStreamPublisher) PublishScrapeEvent(ctx context.Context, event ScrapeEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: rsp.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": event.Timestamp.Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publishing %s event: %w", event.Entity, err)
	}
	return nil
}

// DecodeScrapeEvent reads the event carried by one stream entry.
func DecodeScrapeEvent(msg redis.XMessage) (ScrapeEvent, error) {
	var event ScrapeEvent
	raw, ok := msg.Values["data"].(string)
	if !ok {
		return event, fmt.Errorf("stream entry %s has no data field", msg.ID)
	}
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return event, fmt.Errorf("decoding stream entry %s: %w", msg.ID, err)
	}
	return event, nil
}
