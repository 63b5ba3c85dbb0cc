// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: every dependency check passes
//   - NoContent: 204 for minimal overhead
//
// Usage:
//
//	mux.HandleFunc("GET /health/live", health.Liveness)
//	mux.Handle("GET /health/ready", health.Readiness(logger, checkSource))
//
// Dependency checks have the func(context.Context) error signature.
package health
