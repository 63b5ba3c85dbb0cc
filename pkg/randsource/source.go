package randsource

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"slices"
)

// Source grants access to cryptographically secure character sampling.
// Implementations must be safe for concurrent use.
type Source interface {
	// Upper returns n characters drawn uniformly from UpperAlphabet.
	Upper(n int) ([]byte, error)
	// Lower returns n characters drawn uniformly from LowerAlphabet.
	Lower(n int) ([]byte, error)
	// Symbols returns n characters drawn uniformly from SymbolAlphabet.
	Symbols(n int) ([]byte, error)
	// Digits returns n characters drawn uniformly from DigitAlphabet.
	Digits(n int) ([]byte, error)
	// Shuffle returns a uniformly random permutation of b as a new slice.
	Shuffle(b []byte) ([]byte, error)
}

// Crypto implements Source over crypto/rand.
type Crypto struct {
	reader io.Reader
}

var _ Source = (*Crypto)(nil)

// Option configures a Crypto source.
type Option func(*Crypto)

// WithReader replaces crypto/rand.Reader. The reader must be a CSPRNG and
// safe for concurrent use. Nil is ignored.
func WithReader(r io.Reader) Option {
	return func(c *Crypto) {
		if r != nil {
			c.reader = r
		}
	}
}

// New creates a Crypto source backed by crypto/rand.Reader.
func New(opts ...Option) *Crypto {
	c := &Crypto{reader: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Crypto) Upper(n int) ([]byte, error)   { return c.Sample(ClassUpper, n) }
func (c *Crypto) Lower(n int) ([]byte, error)   { return c.Sample(ClassLower, n) }
func (c *Crypto) Symbols(n int) ([]byte, error) { return c.Sample(ClassSymbol, n) }
func (c *Crypto) Digits(n int) ([]byte, error)  { return c.Sample(ClassDigit, n) }

// Sample returns n independent uniform draws from the alphabet of class.
// n <= 0 yields an empty slice without touching the reader.
func (c *Crypto) Sample(class Class, n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	alphabet := class.Alphabet()
	if alphabet == "" {
		return nil, fmt.Errorf("randsource: unknown class %d", class)
	}

	out := make([]byte, n)
	for i := range out {
		idx, err := c.intn(len(alphabet))
		if err != nil {
			return nil, err
		}
		out[i] = alphabet[idx]
	}
	return out, nil
}

// Shuffle performs a Fisher-Yates shuffle on a copy of b.
func (c *Crypto) Shuffle(b []byte) ([]byte, error) {
	out := slices.Clone(b)
	if out == nil {
		out = []byte{}
	}

	for i := len(out) - 1; i > 0; i-- {
		j, err := c.intn(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// intn returns a uniform value in [0, n). rand.Int rejects out-of-range
// draws, so there is no modulo bias.
func (c *Crypto) intn(n int) (int, error) {
	v, err := rand.Int(c.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return int(v.Int64()), nil
}
