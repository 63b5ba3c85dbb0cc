package randsource

import "errors"

var (
	// ErrEntropyUnavailable indicates the secure random source could not be read.
	ErrEntropyUnavailable = errors.New("randsource: entropy unavailable")
)
