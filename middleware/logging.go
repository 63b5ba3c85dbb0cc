package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/passwords/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip bypasses logging for matching requests (health checks).
	Skip func(r *http.Request) bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// LogLevel for successful requests. 4xx log at warn, 5xx at error.
	LogLevel slog.Level

	// SlowRequestThreshold logs slower requests at warn level. Default 5s.
	SlowRequestThreshold time.Duration
}

// Logging logs one record per request with method, path, status and latency.
// The request id is added by the logger's context extractor, see RequestIDExtractor.
func Logging(log *slog.Logger) Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates the logging middleware from cfg.
func LoggingWithConfig(cfg LoggingConfig) Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			latency := time.Since(start)

			level := cfg.LogLevel
			switch {
			case sw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case sw.status >= http.StatusBadRequest, latency > cfg.SlowRequestThreshold:
				level = max(level, slog.LevelWarn)
			}

			cfg.Logger.LogAttrs(r.Context(), level, "http request",
				logger.Component("http"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(sw.status),
				logger.Latency(latency),
			)
		})
	}
}

// statusWriter records the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
