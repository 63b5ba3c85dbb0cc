package passgen

import (
	"encoding/json"
	"net/http"
)

// apiError is the JSON error body.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e apiError) withMessage(msg string) apiError {
	e.Message = msg
	return e
}

var (
	errBadRequest      = apiError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "malformed request"}
	errInvalidArgument = apiError{Status: http.StatusBadRequest, Code: "INVALID_ARGUMENT", Message: "password parameters are required"}
	errLengthExceeded  = apiError{Status: http.StatusUnprocessableEntity, Code: "LENGTH_EXCEEDED", Message: "requested password is too long"}
	errServiceFailure  = apiError{Status: http.StatusInternalServerError, Code: "SERVICE_FAILURE", Message: "failed to generate a password"}
	errTooManyRequests = apiError{Status: http.StatusTooManyRequests, Code: "TOO_MANY_REQUESTS", Message: "rate limit exceeded, retry later"}
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Headers are already sent; nothing useful to do with an encode error.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, e apiError) {
	writeJSON(w, e.Status, e)
}
