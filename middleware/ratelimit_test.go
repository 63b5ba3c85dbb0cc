package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passwords/middleware"
	"github.com/dmitrymomot/passwords/pkg/ratelimiter"
)

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string) (*ratelimiter.Result, error) {
	return nil, errors.New("store down")
}

func (failingLimiter) AllowN(ctx context.Context, key string, n int) (*ratelimiter.Result, error) {
	return nil, errors.New("store down")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       2,
		RefillRate:     1,
		RefillInterval: time.Minute,
	})
	require.NoError(t, err)

	h := middleware.RateLimit(limiter)(okHandler())

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	w := do("192.0.2.1:1000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))

	w = do("192.0.2.1:1001")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do("192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// A different client has its own bucket.
	w = do("192.0.2.2:1000")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("custom response and key", func(t *testing.T) {
		t.Parallel()

		limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: time.Hour,
		})
		require.NoError(t, err)

		h := middleware.RateLimitWithConfig(middleware.RateLimitConfig{
			Limiter: limiter,
			KeyFunc: func(r *http.Request) string { return "everyone" },
			OnLimited: func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		})(okHandler())

		for i, want := range []int{http.StatusOK, http.StatusServiceUnavailable} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = "192.0.2.1:" + string(rune('1'+i))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, want, w.Code)
		}
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		h := middleware.RateLimitWithConfig(middleware.RateLimitConfig{
			Limiter: failingLimiter{},
			Skip:    func(r *http.Request) bool { return true },
		})(okHandler())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("limiter error fails open", func(t *testing.T) {
		t.Parallel()

		h := middleware.RateLimit(failingLimiter{})(okHandler())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nil limiter panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { middleware.RateLimit(nil) })
	})
}
