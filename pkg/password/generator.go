package password

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/pkg/randsource"
)

// Service generates passwords. *Generator is the implementation.
type Service interface {
	Generate(ctx context.Context, params *Parameters) (string, error)
}

// Generator composes passwords from a shared randsource.Source.
// Safe for concurrent use.
type Generator struct {
	source randsource.Source
	logger *slog.Logger
}

var _ Service = (*Generator)(nil)

// New creates a Generator around source. A nil source is an invalid argument.
func New(source randsource.Source, opts ...Option) (*Generator, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	g := &Generator{
		source: source,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate builds a password from params. See the package documentation for
// the quota and error semantics.
func (g *Generator) Generate(ctx context.Context, params *Parameters) (string, error) {
	if params == nil {
		return "", fmt.Errorf("%w: nil parameters", ErrInvalidArgument)
	}

	quotas := params.Normalize()

	pw, err := g.safeGenerate(ctx, quotas)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to generate password",
			logger.Component("password"),
			logger.Error(err),
			logger.Count("length", quotas.Total()),
		)
		return "", &ServiceError{Cause: err}
	}

	return pw, nil
}

// safeGenerate converts a panic inside the source, or a failed allocation,
// into an error.
func (g *Generator) safeGenerate(ctx context.Context, quotas Parameters) (pw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("password generation panicked: %v", r)
		}
	}()
	return g.generate(ctx, quotas)
}

func (g *Generator) generate(ctx context.Context, quotas Parameters) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	total, err := quotas.Length()
	if err != nil {
		return "", err
	}
	if total == 0 {
		return "", nil
	}

	buf := make([]byte, 0, total)
	for _, class := range randsource.Classes() {
		n := quotas.Quota(class)
		if n == 0 {
			continue
		}
		chars, err := g.sample(class, n)
		if err != nil {
			return "", fmt.Errorf("sample %s characters: %w", class, err)
		}
		if len(chars) != n {
			return "", fmt.Errorf("sample %s characters: got %d, want %d", class, len(chars), n)
		}
		buf = append(buf, chars...)
	}

	mixed, err := g.mix(buf)
	if err != nil {
		return "", err
	}

	return string(mixed), nil
}

func (g *Generator) sample(class randsource.Class, n int) ([]byte, error) {
	switch class {
	case randsource.ClassUpper:
		return g.source.Upper(n)
	case randsource.ClassLower:
		return g.source.Lower(n)
	case randsource.ClassSymbol:
		return g.source.Symbols(n)
	case randsource.ClassDigit:
		return g.source.Digits(n)
	default:
		return nil, fmt.Errorf("unknown character class %d", class)
	}
}

// mix shuffles, reverses and shuffles again.
func (g *Generator) mix(b []byte) ([]byte, error) {
	out, err := g.source.Shuffle(b)
	if err != nil {
		return nil, fmt.Errorf("first shuffle: %w", err)
	}

	slices.Reverse(out)

	out, err = g.source.Shuffle(out)
	if err != nil {
		return nil, fmt.Errorf("second shuffle: %w", err)
	}

	if len(out) != len(b) {
		return nil, fmt.Errorf("shuffle changed length: got %d, want %d", len(out), len(b))
	}
	return out, nil
}
