package password

// Config holds default quotas and request limits loaded from the environment.
type Config struct {
	UpperCase int `env:"PASSWORD_UPPER" envDefault:"4"`
	LowerCase int `env:"PASSWORD_LOWER" envDefault:"8"`
	Symbols   int `env:"PASSWORD_SYMBOLS" envDefault:"2"`
	Numbers   int `env:"PASSWORD_NUMBERS" envDefault:"2"`

	// MaxLength caps the total quota accepted from untrusted callers.
	MaxLength int `env:"PASSWORD_MAX_LENGTH" envDefault:"1024"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		UpperCase: 4,
		LowerCase: 8,
		Symbols:   2,
		Numbers:   2,
		MaxLength: 1024,
	}
}

// Defaults returns the configured quotas as Parameters.
func (c Config) Defaults() Parameters {
	return Parameters{
		UpperCase: c.UpperCase,
		LowerCase: c.LowerCase,
		Symbols:   c.Symbols,
		Numbers:   c.Numbers,
	}
}
