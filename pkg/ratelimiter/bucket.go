package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Store persists bucket state.
type Store interface {
	// ConsumeTokens takes tokens from the bucket for key when enough are
	// available. A negative remaining value is the deficit of a denied
	// request; the bucket is left untouched in that case.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
	AllowN(ctx context.Context, key string, n int) (*Result, error)
}

// Result is the outcome of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit into the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait. Zero when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Bucket is a token bucket limiter backed by a Store.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket validates config and returns a limiter.
func NewBucket(store Store, config Config) (*Bucket, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: config}, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return nil, fmt.Errorf("consume tokens: %w", err)
	}

	return &Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Status reports the bucket state without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, 0, b.config)
	if err != nil {
		return nil, fmt.Errorf("bucket status: %w", err)
	}
	return &Result{Limit: b.config.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset refills the bucket for key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
