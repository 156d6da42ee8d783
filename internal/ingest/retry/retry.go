// Package retry runs scrape attempts with a fixed attempt budget.
package retry

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/athena/internal/ingest/browser"
)

// Policy bounds how often an attempt is repeated.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
	Logger      *log.Logger
}

// DefaultPolicy is three attempts two seconds apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, Backoff: 2 * time.Second}
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.Backoff < 0 {
		p.Backoff = 0
	}
	if p.Logger == nil {
		p.Logger = log.Default()
	}
	return p
}

// Do calls attempt until it succeeds or the policy is exhausted. Exhaustion
// yields the zero value and false; the last error is only logged.
func Do[T any](ctx context.Context, policy Policy, label string, attempt func(ctx context.Context) (T, error)) (T, bool) {
	policy = policy.normalized()
	var zero T

	for i := 1; i <= policy.MaxAttempts; i++ {
		if ctx.Err() != nil {
			return zero, false
		}

		result, err := attempt(ctx)
		if err == nil {
			return result, true
		}

		policy.Logger.Printf("⚠️  %s: attempt %d/%d failed: %v", label, i, policy.MaxAttempts, err)

		if i == policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, false
		case <-time.After(policy.Backoff):
		}
	}

	policy.Logger.Printf("❌ %s: giving up after %d attempts", label, policy.MaxAttempts)
	return zero, false
}

// WithPage is Do where every attempt runs on its own page, closed after the
// attempt whatever its outcome.
func WithPage[T any](ctx context.Context, opener browser.PageOpener, policy Policy, label string, fn func(ctx context.Context, page browser.Page) (T, error)) (T, bool) {
	return Do(ctx, policy, label, func(ctx context.Context) (T, error) {
		var zero T

		page, err := opener.NewPage(ctx)
		if err != nil {
			return zero, err
		}
		defer page.Close()

		return fn(ctx, page)
	})
}
