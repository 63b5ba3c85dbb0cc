package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParse wraps failures reported by the environment parser.
	ErrParse = errors.New("config: failed to parse environment")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (T value)
	loadMu     sync.Mutex
)

// Load populates cfg from the environment. The result is cached per type.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env is the normal case in containers.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParse, fmt.Errorf("%s: %w", key, err))
	}

	cache.Store(key, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
