// Package ratelimiter provides token bucket rate limiting over a pluggable store.
//
// A Bucket holds Capacity tokens per key. Every RefillInterval it regains
// RefillRate tokens, never exceeding Capacity. Each request consumes tokens;
// a request that would drive the bucket below zero is denied and consumes
// nothing.
//
// Usage:
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     60,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, clientip.GetIP(r))
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter().Seconds())))
//	}
//
// MemoryStore removes buckets that have not been touched for an hour. Run it
// under an errgroup to keep the cleanup loop alive:
//
//	g.Go(store.Run(ctx))
package ratelimiter
