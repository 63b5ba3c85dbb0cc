package health

import (
	"io"
	"net/http"
)

// Liveness always answers 200 "ALIVE".
func Liveness(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ALIVE")
}

// NoContent answers 204 without a body.
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
