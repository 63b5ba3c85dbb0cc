package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/passwords/core/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Readiness answers "READY" when every check passes and 503 when any fails.
// Checks run in order and stop at the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				writeText(w, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
				return
			}
		}

		writeText(w, http.StatusOK, "READY")
	}
}
