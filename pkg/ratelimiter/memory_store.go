package ratelimiter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// staleAfter is how long an untouched bucket survives cleanup.
const staleAfter = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore keeps buckets in process memory. It is not shared between
// instances and is lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState

	cleanupInterval time.Duration
	logger          *slog.Logger
	now             func() time.Time

	running        atomic.Bool
	bucketsCreated atomic.Int64
	bucketsRemoved atomic.Int64
}

// MemoryStoreStats is a snapshot of store counters.
type MemoryStoreStats struct {
	BucketsCreated int64
	BucketsRemoved int64
	ActiveBuckets  int
	IsRunning      bool
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale buckets are removed. Values <= 0
// disable the cleanup loop.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

func WithMemoryStoreLogger(logger *slog.Logger) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if logger != nil {
			ms.logger = logger
		}
	}
}

// WithClock replaces time.Now. Used by tests to step time deterministically.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucketState),
		cleanupInterval: 5 * time.Minute,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(ms)
	}

	return ms
}

func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
		ms.bucketsCreated.Add(1)
	}
	b.lastAccess = now

	// Cap the interval count so a long idle period cannot overflow the multiplication.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * config.RefillInterval)
		if b.tokens == config.Capacity {
			b.lastRefill = now
		}
	}

	resetAt = b.lastRefill.Add(config.RefillInterval)

	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}

	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.buckets, key)
	return nil
}

// Run returns an errgroup-compatible function that removes stale buckets
// until ctx is cancelled. Cancellation is a clean stop.
func (ms *MemoryStore) Run(ctx context.Context) func() error {
	return func() error {
		err := ms.Start(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
}

// Start blocks running the cleanup loop until ctx is done. With cleanup
// disabled it just waits for ctx.
func (ms *MemoryStore) Start(ctx context.Context) error {
	if !ms.running.CompareAndSwap(false, true) {
		return ErrStoreAlreadyRunning
	}
	defer ms.running.Store(false)

	if ms.cleanupInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ms.logger.InfoContext(ctx, "rate limiter cleanup started",
		slog.Duration("cleanup_interval", ms.cleanupInterval))

	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ms.logger.InfoContext(context.WithoutCancel(ctx), "rate limiter cleanup stopped")
			return ctx.Err()
		case <-ticker.C:
			ms.RemoveStale()
		}
	}
}

// RemoveStale drops buckets idle for longer than an hour and returns how
// many were removed.
func (ms *MemoryStore) RemoveStale() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	removed := 0
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(ms.buckets, key)
			removed++
		}
	}
	ms.bucketsRemoved.Add(int64(removed))
	return removed
}

func (ms *MemoryStore) Stats() MemoryStoreStats {
	ms.mu.Lock()
	active := len(ms.buckets)
	ms.mu.Unlock()

	return MemoryStoreStats{
		BucketsCreated: ms.bucketsCreated.Load(),
		BucketsRemoved: ms.bucketsRemoved.Load(),
		ActiveBuckets:  active,
		IsRunning:      ms.running.Load(),
	}
}
