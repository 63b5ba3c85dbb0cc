package ratelimiter

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid rate limiter configuration")
	ErrInvalidTokenCount   = errors.New("invalid token count")
	ErrStoreAlreadyRunning = errors.New("memory store cleanup already running")
)
