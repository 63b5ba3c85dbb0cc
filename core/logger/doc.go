// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers environment-specific presets, context-aware attribute extraction
// and a small set of attribute helpers used across the passwords service.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/passwords/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("passwords"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("passwords"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("passwords"))
//
// # Context-Aware Logging
//
// Extractors pull attributes out of the context passed to the *Context
// logging methods. The HTTP request id set by the middleware package is the
// typical example:
//
//	log := logger.New(
//		logger.WithProduction("passwords"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id, ok := middleware.GetRequestID(ctx)
//			if !ok {
//				return slog.Attr{}, false
//			}
//			return logger.RequestID(id), true
//		}),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil input, so they can be passed
// unconditionally:
//
//	log.Error("password generation failed",
//		logger.Error(err),
//		logger.Component("password"),
//	)
//
// Never log generated secrets. Log quotas and lengths instead.
package logger
