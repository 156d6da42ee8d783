package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by GetJSON when the key is absent.
var ErrMiss = errors.New("cache miss")

const keyPrefix = "athena:"

// SportsKey caches the sports list.
func SportsKey() string { return keyPrefix + "sports" }

// SportKey caches one sport.
func SportKey(leagueCode string) string { return keyPrefix + "sport:" + leagueCode }

// StandingsKey caches one league table.
func StandingsKey(leagueCode string) string { return keyPrefix + "standings:" + leagueCode }

// AllStandingsKey caches every standing.
func AllStandingsKey() string { return keyPrefix + "standings:all" }

// GamesKey caches the games of one league.
func GamesKey(leagueCode string) string { return keyPrefix + "games:" + leagueCode }

// AllGamesKey caches every game.
func AllGamesKey() string { return keyPrefix + "games:all" }

// RosterKey caches one roster document.
func RosterKey(docID string) string { return keyPrefix + "roster:" + docID }

// TeamCodeKey caches the home team's stats-site id in one league.
func TeamCodeKey(leagueCode string) string { return keyPrefix + "teamcode:" + leagueCode }

// LeagueKeys are the keys invalidated after a write to leagueCode.
func LeagueKeys(leagueCode string) []string {
	return []string{
		SportKey(leagueCode),
		StandingsKey(leagueCode),
		AllStandingsKey(),
		GamesKey(leagueCode),
		AllGamesKey(),
		TeamCodeKey(leagueCode),
	}
}

// RedisCache handles caching of read results
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis cache connection. ttl applies to
// SetJSON; zero keeps entries until invalidated.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewFromClient(client, ttl), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetJSON decodes the value at key into out.
func (rc *RedisCache) GetJSON(ctx context.Context, key string, out any) error {
	raw, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding cached %s: %w", key, err)
	}
	return nil
}

// SetJSON stores v at key as JSON with the cache TTL.
func (rc *RedisCache) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, raw, rc.ttl).Err()
}

// Delete removes keys
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}

// InvalidateLeague drops every cached read touching leagueCode, plus the
// sports list.
func (rc *RedisCache) InvalidateLeague(ctx context.Context, leagueCode string) error {
	keys := []string{SportsKey()}
	if leagueCode != "" {
		keys = append(keys, LeagueKeys(leagueCode)...)
	}
	return rc.Delete(ctx, keys...)
}

// InvalidateRoster drops one cached roster.
func (rc *RedisCache) InvalidateRoster(ctx context.Context, docID string) error {
	return rc.Delete(ctx, RosterKey(docID))
}
