// Package service holds the read side: cached accessors over the stored
// records, returned in their serialized map form.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/fortuna/athena/internal/cache"
)

// Cache is the JSON cache the read services consult first.
// *cache.RedisCache implements it.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) error
	SetJSON(ctx context.Context, key string, v any) error
}

// readThrough returns the cached value at key, or loads, caches and
// returns it. Cache failures fall back to load.
func readThrough[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	var cached T
	err := c.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("⚠️  Cache read %s failed: %v", key, err)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if err := c.SetJSON(ctx, key, v); err != nil {
		log.Printf("⚠️  Cache write %s failed: %v", key, err)
	}
	return v, nil
}

func toMaps[T interface{ ToMap() map[string]any }](records []T) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToMap())
	}
	return out
}
