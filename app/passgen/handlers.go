package passgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/passwords/core/health"
	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/middleware"
	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/randsource"
	"github.com/dmitrymomot/passwords/pkg/ratelimiter"
)

const maxBodyBytes = 4 << 10

type generateResponse struct {
	Password        string `json:"password"`
	Length          int    `json:"length"`
	AlphabetVersion string `json:"alphabet_version"`
}

type alphabetsResponse struct {
	Version string `json:"version"`
	Upper   string `json:"upper"`
	Lower   string `json:"lower"`
	Digits  string `json:"digits"`
	Symbols string `json:"symbols"`
}

func (a *App) routes(mux *http.ServeMux) {
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if a.limiter != nil {
		rl := middleware.RateLimitWithConfig(middleware.RateLimitConfig{
			Limiter: a.limiter,
			Logger:  a.logger,
			OnLimited: func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
				writeError(w, errTooManyRequests)
			},
		})
		limit = func(h http.HandlerFunc) http.Handler { return rl(h) }
	}

	mux.Handle("POST /v1/passwords", limit(a.handleGenerate))
	mux.Handle("GET /v1/passwords", limit(a.handleGenerateDefaults))
	mux.HandleFunc("GET /v1/alphabets", a.handleAlphabets)
	mux.HandleFunc("GET /health/live", health.Liveness)
	mux.Handle("GET /health/ready", health.Readiness(a.logger, a.checkSource))
}

// checkSource draws a single digit to prove the entropy source is readable.
func (a *App) checkSource(ctx context.Context) error {
	b, err := a.source.Digits(1)
	if err != nil {
		return err
	}
	if len(b) != 1 {
		return fmt.Errorf("random source returned %d bytes, want 1", len(b))
	}
	return nil
}

// handleGenerate generates a password from the JSON body. An empty body or
// null is the absent-parameters case.
func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var params *password.Parameters
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&params)
	switch {
	case errors.Is(err, io.EOF):
		// Empty body: absent parameters.
	case err != nil:
		writeError(w, errBadRequest.withMessage(err.Error()))
		return
	default:
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			writeError(w, errBadRequest.withMessage("request body must contain a single JSON value"))
			return
		}
	}

	a.generate(w, r, params)
}

// handleGenerateDefaults generates a password from the configured default
// quotas, overridden by the upper, lower, symbols and numbers query parameters.
func (a *App) handleGenerateDefaults(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r.URL.Query(), a.config.Password.Defaults())
	if err != nil {
		writeError(w, errBadRequest.withMessage(err.Error()))
		return
	}
	a.generate(w, r, &params)
}

func (a *App) generate(w http.ResponseWriter, r *http.Request, params *password.Parameters) {
	if params != nil && exceedsLimit(*params, a.config.Password.MaxLength) {
		writeError(w, errLengthExceeded.withMessage(
			fmt.Sprintf("total length must not exceed %d", a.config.Password.MaxLength)))
		return
	}

	pw, err := a.generator.Generate(r.Context(), params)
	switch {
	case errors.Is(err, password.ErrInvalidArgument):
		writeError(w, errInvalidArgument)
		return
	case err != nil:
		// The generator has already logged the cause.
		a.logger.DebugContext(r.Context(), "password request failed", logger.Error(err))
		writeError(w, errServiceFailure)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	writeJSON(w, http.StatusOK, generateResponse{
		Password:        pw,
		Length:          len(pw),
		AlphabetVersion: randsource.AlphabetVersion,
	})
}

func (a *App) handleAlphabets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, alphabetsResponse{
		Version: randsource.AlphabetVersion,
		Upper:   randsource.UpperAlphabet,
		Lower:   randsource.LowerAlphabet,
		Digits:  randsource.DigitAlphabet,
		Symbols: randsource.SymbolAlphabet,
	})
}

// exceedsLimit checks each quota before summing so huge values cannot overflow.
func exceedsLimit(p password.Parameters, limit int) bool {
	if limit <= 0 {
		return false
	}
	n := p.Normalize()
	for _, q := range []int{n.UpperCase, n.LowerCase, n.Symbols, n.Numbers} {
		if q > limit {
			return true
		}
	}
	return n.Total() > limit
}

func paramsFromQuery(q url.Values, defaults password.Parameters) (password.Parameters, error) {
	p := defaults
	fields := []struct {
		name string
		dst  *int
	}{
		{"upper", &p.UpperCase},
		{"lower", &p.LowerCase},
		{"symbols", &p.Symbols},
		{"numbers", &p.Numbers},
	}
	for _, f := range fields {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return password.Parameters{}, fmt.Errorf("invalid %s: %q", f.name, v)
		}
		*f.dst = n
	}
	return p, nil
}
