package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/passwords/core/logger"
)

type requestIDContextKey struct{}

// DefaultRequestIDHeader is the header carrying the request id.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(r *http.Request) bool
	// Generator creates new ids. Default: UUID v4.
	Generator func() string
	// HeaderName defaults to DefaultRequestIDHeader.
	HeaderName string
	// UseExisting trusts an id already present on the incoming request.
	UseExisting bool
}

// RequestID assigns a fresh UUID to every request.
func RequestID() Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig stores the request id in the request context and echoes
// it in the response header.
func RequestIDWithConfig(cfg RequestIDConfig) Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var id string
			if cfg.UseExisting {
				id = r.Header.Get(cfg.HeaderName)
			}
			if id == "" {
				id = cfg.Generator()
			}

			w.Header().Set(cfg.HeaderName, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// GetRequestID returns the request id stored in ctx.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok && id != ""
}

// RequestIDExtractor adds the request id to records logged with a request context.
//
//	log := logger.New(logger.WithContextExtractors(middleware.RequestIDExtractor))
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := GetRequestID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}
