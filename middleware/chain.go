package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws[0] runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	// Wrap innermost first so the first middleware ends up outermost.
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			h = mws[i](h)
		}
	}
	return h
}
