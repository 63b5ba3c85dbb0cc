package password

import "log/slog"

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report failures. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
