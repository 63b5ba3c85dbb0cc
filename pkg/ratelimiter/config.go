package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes a token bucket.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"60"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

// DefaultConfig mirrors the envDefault tags: 60 requests per minute.
func DefaultConfig() Config {
	return Config{
		Capacity:       60,
		RefillRate:     60,
		RefillInterval: time.Minute,
	}
}

// Validate reports an ErrInvalidConfig for non-positive values.
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %s", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
