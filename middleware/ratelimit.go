package middleware

import (
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/pkg/clientip"
	"github.com/dmitrymomot/passwords/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	Limiter ratelimiter.RateLimiter
	// Skip bypasses the middleware for matching requests.
	Skip func(r *http.Request) bool
	// KeyFunc picks the bucket key. Default: clientip.GetIP.
	KeyFunc func(r *http.Request) string
	// OnLimited writes the response for a denied request.
	// Default: plain 429.
	OnLimited func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result)
	Logger    *slog.Logger
}

// RateLimit limits requests per client IP.
func RateLimit(limiter ratelimiter.RateLimiter) Middleware {
	return RateLimitWithConfig(RateLimitConfig{Limiter: limiter})
}

// RateLimitWithConfig sets X-RateLimit-* headers on every checked response and
// Retry-After on denied ones. Limiter errors fail open.
func RateLimitWithConfig(cfg RateLimitConfig) Middleware {
	if cfg.Limiter == nil {
		panic("middleware: rate limiter is required")
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientip.GetIP
	}
	if cfg.OnLimited == nil {
		cfg.OnLimited = func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			res, err := cfg.Limiter.Allow(r.Context(), cfg.KeyFunc(r))
			if err != nil {
				cfg.Logger.WarnContext(r.Context(), "rate limiter unavailable",
					logger.Component("ratelimit"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter().Seconds()))))
				cfg.OnLimited(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
