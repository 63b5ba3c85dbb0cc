package server

import (
	"crypto/tls"
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*Server)

// WithTLS serves HTTPS using config. Certificates must be present in config.
func WithTLS(config *tls.Config) Option {
	return func(s *Server) {
		s.tlsConfig = config
	}
}

// WithLogger sets the logger for lifecycle events. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdown = timeout
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.idleTimeout = timeout
	}
}

func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) {
		s.maxHeaderBytes = n
	}
}
