package reference

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

const (
	numberPrefix       = "BK"
	numberSuffixLength = 6
	codeLength         = 8
	defaultMaxAttempts = 5
)

// alphabet omits 0/O and 1/I so codes survive being read over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Checker reports whether a reference is already taken by a persisted booking.
type Checker interface {
	BookingNumberExists(ctx context.Context, number string) (bool, error)
	ConfirmationCodeExists(ctx context.Context, code string) (bool, error)
}

type References struct {
	BookingNumber    string
	ConfirmationCode string
}

type Generator struct {
	checker     Checker
	maxAttempts int
	random      func(n int) (string, error)
}

type Option func(*Generator)

func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithRandom replaces the random source; used by tests to force collisions.
func WithRandom(fn func(n int) (string, error)) Option {
	return func(g *Generator) {
		if fn != nil {
			g.random = fn
		}
	}
}

func NewGenerator(checker Checker, opts ...Option) *Generator {
	g := &Generator{
		checker:     checker,
		maxAttempts: defaultMaxAttempts,
		random:      randomString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Assign returns a booking number (BK + yymmdd of createdAt + random suffix)
// and a confirmation code, each checked against persisted bookings. It fails
// with domain.ErrReferenceCollision once maxAttempts candidates were taken.
func (g *Generator) Assign(ctx context.Context, createdAt time.Time) (References, error) {
	number, err := g.unique(ctx, "booking number", func() (string, error) {
		suffix, err := g.random(numberSuffixLength)
		if err != nil {
			return "", err
		}
		return numberPrefix + createdAt.UTC().Format("060102") + "-" + suffix, nil
	}, g.checker.BookingNumberExists)
	if err != nil {
		return References{}, err
	}

	code, err := g.unique(ctx, "confirmation code", func() (string, error) {
		return g.random(codeLength)
	}, g.checker.ConfirmationCodeExists)
	if err != nil {
		return References{}, err
	}

	return References{BookingNumber: number, ConfirmationCode: code}, nil
}

func (g *Generator) unique(
	ctx context.Context,
	what string,
	next func() (string, error),
	exists func(ctx context.Context, v string) (bool, error),
) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate, err := next()
		if err != nil {
			return "", fmt.Errorf("generate %s: %w", what, err)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", what, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free %s after %d attempts", domain.ErrReferenceCollision, what, g.maxAttempts)
}

func randomString(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
