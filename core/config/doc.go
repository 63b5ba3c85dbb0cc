// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (a
// missing file is not an error) and uses the caarlos0/env library for parsing
// environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/passwords/core/config"
//
//	type PasswordConfig struct {
//		Upper int `env:"PASSWORD_UPPER" envDefault:"4"`
//		Lower int `env:"PASSWORD_LOWER" envDefault:"8"`
//	}
//
//	func main() {
//		var cfg PasswordConfig
//
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process. Later calls for the
// same type copy the cached value, so environment changes after the first load
// are not observed. Different types are cached independently.
package config
