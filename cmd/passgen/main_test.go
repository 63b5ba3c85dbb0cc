package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/randsource"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "-u", "2", "-l", "3", "-s", "1", "-n", "4", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, pw := range lines {
		require.Len(t, pw, 10)
		counts := make(map[randsource.Class]int)
		for i := 0; i < len(pw); i++ {
			counts[randsource.ClassOf(pw[i])]++
		}
		assert.Equal(t, 2, counts[randsource.ClassUpper])
		assert.Equal(t, 3, counts[randsource.ClassLower])
		assert.Equal(t, 1, counts[randsource.ClassSymbol])
		assert.Equal(t, 4, counts[randsource.ClassDigit])
	}
}

func TestGenerateCommandClampsNegative(t *testing.T) {
	out, err := run(t, "generate", "--upper=-3", "--lower=0", "--symbols=0", "--numbers=0")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestGenerateCommandLogsFailures(t *testing.T) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"generate", "--upper", "9223372036854775807", "--lower", "9223372036854775807", "--symbols", "2"})

	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, password.ErrServiceFailure)
	assert.ErrorIs(t, err, password.ErrLengthOverflow)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "failed to generate password")
}

func TestGenerateCommandRejectsBadCount(t *testing.T) {
	_, err := run(t, "generate", "--count", "0")
	assert.Error(t, err)

	_, err = run(t, "generate", "extra")
	assert.Error(t, err)
}

func TestGenerateOptionsParameters(t *testing.T) {
	cmd := newGenerateCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--lower", "1"}))

	opt := generateOptions{lower: 1}
	defaults := password.Parameters{UpperCase: 4, LowerCase: 8, Symbols: 2, Numbers: 2}

	got := opt.parameters(cmd.Flags(), defaults)
	assert.Equal(t, password.Parameters{UpperCase: 4, LowerCase: 1, Symbols: 2, Numbers: 2}, got)
}

func TestAlphabetsCommand(t *testing.T) {
	out, err := run(t, "alphabets")
	require.NoError(t, err)
	assert.Contains(t, out, "version: "+randsource.AlphabetVersion)
	assert.Contains(t, out, randsource.SymbolAlphabet)
	assert.Contains(t, out, randsource.DigitAlphabet)
}
