// Package middleware provides net/http middleware used by the passwords service.
//
// Middleware have the standard shape func(http.Handler) http.Handler and can
// be chained with Chain:
//
//	h := middleware.Chain(mux,
//		middleware.RequestID(),
//		middleware.Logging(log),
//	)
//
// The first middleware passed to Chain is the outermost one.
//
// Request bodies and response bodies are never logged: responses of this
// service carry generated secrets.
package middleware
