package passgen

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/passwords/core/config"
	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/core/server"
	"github.com/dmitrymomot/passwords/middleware"
	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/randsource"
	"github.com/dmitrymomot/passwords/pkg/ratelimiter"
)

// App wires the password service into an HTTP server.
type App struct {
	config    *Config
	logger    *slog.Logger
	source    randsource.Source
	generator password.Service
	server    *server.Server

	// Nil when rate limiting is disabled.
	limitStore *ratelimiter.MemoryStore
	limiter    ratelimiter.RateLimiter
}

type AppOption func(*App) error

// NewApp builds the application. Configuration is loaded from the environment
// unless WithConfig is given.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		app.config = &cfg
	}

	if app.logger == nil {
		app.logger = NewLogger(*app.config)
	}

	// One source for the whole process.
	if app.source == nil {
		app.source = randsource.New()
	}

	if app.generator == nil {
		gen, err := password.New(app.source, password.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.generator = gen
	}

	if app.config.RateLimit.Enabled && app.limiter == nil {
		app.limitStore = ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(app.logger))
		limiter, err := ratelimiter.NewBucket(app.limitStore, app.config.RateLimit.Bucket)
		if err != nil {
			return nil, err
		}
		app.limiter = limiter
	}

	if app.server == nil {
		srv, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = srv
	}

	return app, nil
}

// NewLogger builds the application logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(os.Stdout),
		logger.WithAttr(slog.String("service", cfg.AppName), slog.String("env", cfg.Env)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

// WithConfig uses cfg instead of loading configuration from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = &cfg
		return nil
	}
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = l
		return nil
	}
}

// WithSource replaces the process-wide random source.
func WithSource(src randsource.Source) AppOption {
	return func(app *App) error {
		if src == nil {
			return errors.New("random source cannot be nil")
		}
		app.source = src
		return nil
	}
}

// WithGenerator replaces the password generator built around the source.
func WithGenerator(gen password.Service) AppOption {
	return func(app *App) error {
		if gen == nil {
			return errors.New("password generator cannot be nil")
		}
		app.generator = gen
		return nil
	}
}

// WithRateLimiter replaces the in-memory per-IP limiter.
func WithRateLimiter(l ratelimiter.RateLimiter) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("rate limiter cannot be nil")
		}
		app.limiter = l
		return nil
	}
}

// WithServer replaces the HTTP server built from the configuration.
func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}

func (a *App) Config() Config              { return *a.config }
func (a *App) Logger() *slog.Logger        { return a.logger }
func (a *App) Generator() password.Service { return a.generator }
func (a *App) Server() *server.Server      { return a.server }

// Handler returns the HTTP handler with middleware applied.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	a.routes(mux)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: a.logger,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/health/live" || r.URL.Path == "/health/ready"
			},
		}),
	)
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting application",
		logger.Event("startup"),
		slog.String("alphabet_version", randsource.AlphabetVersion),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.Handler()))
	if a.limitStore != nil {
		g.Go(a.limitStore.Run(ctx))
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("application stopped with error", logger.Error(err))
		return err
	}

	a.logger.Info("application stopped")
	return nil
}
