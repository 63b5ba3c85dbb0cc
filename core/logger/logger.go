package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextExtractor pulls a single attribute out of a context.
// The boolean result reports whether the attribute is present.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type options struct {
	level      slog.Level
	json       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures the logger created by New.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text. This is the default.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level tagged with the service name.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.json = false
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level tagged with the service name.
func WithProduction(service string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.json = true
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// WithContextValue logs the context value stored under key as attribute name.
func WithContextValue(name string, key any) Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(name, v), true
	})
}

// WithContextExtractors registers extractors applied on every *Context call.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, e := range extractors {
			if e != nil {
				o.extractors = append(o.extractors, e)
			}
		}
	}
}

// New creates a slog.Logger. Defaults to text output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	if len(o.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: o.extractors}
	}

	return slog.New(h)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetAsDefault installs l as the slog package default.
func SetAsDefault(l *slog.Logger) {
	if l != nil {
		slog.SetDefault(l)
	}
}

// ParseLevel maps a textual level to slog.Level. Unknown values map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
