package health_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/passwords/core/health"
	"github.com/dmitrymomot/passwords/core/logger"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	health.Liveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	health.NoContent(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("entropy exhausted") }

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.Readiness(logger.Nop(), ok, ok)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.Readiness(logger.Nop())(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

		called := false
		after := func(context.Context) error { called = true; return nil }

		w := httptest.NewRecorder()
		health.Readiness(log, ok, fail, after)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, called)
		assert.Contains(t, buf.String(), "entropy exhausted")
		assert.Contains(t, buf.String(), "readiness check failed")
	})
}
