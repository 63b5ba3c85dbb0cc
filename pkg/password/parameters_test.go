package password_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/randsource"
)

func TestParametersNormalize(t *testing.T) {
	t.Parallel()

	p := password.Parameters{UpperCase: -5, LowerCase: 3, Symbols: 0, Numbers: -1}
	n := p.Normalize()

	assert.Equal(t, password.Parameters{LowerCase: 3}, n)
	assert.Equal(t, -5, p.UpperCase, "receiver is not modified")
}

func TestParametersTotalAndQuota(t *testing.T) {
	t.Parallel()

	p := password.Parameters{UpperCase: 2, LowerCase: -4, Symbols: 1, Numbers: 3}

	assert.Equal(t, 6, p.Total())
	assert.Equal(t, 2, p.Quota(randsource.ClassUpper))
	assert.Equal(t, 0, p.Quota(randsource.ClassLower))
	assert.Equal(t, 1, p.Quota(randsource.ClassSymbol))
	assert.Equal(t, 3, p.Quota(randsource.ClassDigit))
	assert.Equal(t, 0, p.Quota(randsource.ClassUnknown))

	assert.Zero(t, password.Parameters{}.Total())
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := password.DefaultConfig()
	assert.Equal(t, password.Parameters{UpperCase: 4, LowerCase: 8, Symbols: 2, Numbers: 2}, cfg.Defaults())
	assert.Equal(t, 1024, cfg.MaxLength)
}

func TestParametersLength(t *testing.T) {
	t.Parallel()

	n, err := password.Parameters{UpperCase: 1, LowerCase: 2, Symbols: -3, Numbers: 4}.Length()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	huge := password.Parameters{UpperCase: math.MaxInt, LowerCase: math.MaxInt, Symbols: 2}
	_, err = huge.Length()
	assert.ErrorIs(t, err, password.ErrLengthOverflow)
	assert.Equal(t, math.MaxInt, huge.Total())

	n, err = password.Parameters{UpperCase: math.MaxInt, LowerCase: -1}.Length()
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)
}
