package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/middleware"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "INFO"},
		{"client error", http.StatusUnprocessableEntity, "WARN"},
		{"server error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.New(
				logger.WithJSONFormatter(),
				logger.WithOutput(&buf),
				logger.WithContextExtractors(middleware.RequestIDExtractor),
			)

			h := middleware.Chain(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("secret-body"))
				}),
				middleware.RequestID(),
				middleware.Logging(log),
			)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/passwords", nil))

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			entry := lines[0]
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/v1/passwords", entry["path"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.Equal(t, rec.Header().Get(middleware.DefaultRequestIDHeader), entry["request_id"])
			assert.NotContains(t, buf.String(), "secret-body")
		})
	}
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	h := middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger: log,
		Skip:   func(r *http.Request) bool { return true },
	})(http.NotFoundHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, buf.String())
}

func TestLoggingLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

	h := middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger:   log,
		LogLevel: slog.LevelDebug,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.EqualValues(t, http.StatusOK, lines[0]["status_code"])
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := middleware.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), nil, mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
