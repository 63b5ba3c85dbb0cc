package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passwords/core/config"
)

type quotaConfig struct {
	Upper int `env:"CFG_TEST_UPPER" envDefault:"4"`
	Lower int `env:"CFG_TEST_LOWER" envDefault:"8"`
}

type cachedConfig struct {
	Name string `env:"CFG_TEST_NAME" envDefault:"first"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_REQUIRED_SECRET,required"`
}

type badConfig struct {
	N int `env:"CFG_TEST_BAD_INT"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and environment", func(t *testing.T) {
		t.Setenv("CFG_TEST_LOWER", "12")

		var cfg quotaConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 4, cfg.Upper)
		assert.Equal(t, 12, cfg.Lower)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Name)

		t.Setenv("CFG_TEST_NAME", "second")

		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParse)
	})

	t.Run("reports invalid values", func(t *testing.T) {
		t.Setenv("CFG_TEST_BAD_INT", "not-a-number")

		var cfg badConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParse)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *quotaConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	type mustConfig struct {
		Secret string `env:"CFG_TEST_MUST_SECRET,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
