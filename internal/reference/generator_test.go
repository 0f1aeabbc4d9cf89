package reference

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type takenSet struct {
	numbers map[string]bool
	codes   map[string]bool
	err     error
}

func (s *takenSet) BookingNumberExists(_ context.Context, number string) (bool, error) {
	return s.numbers[number], s.err
}

func (s *takenSet) ConfirmationCodeExists(_ context.Context, code string) (bool, error) {
	return s.codes[code], s.err
}

// sequence returns the given values in order, one per call.
func sequence(values ...string) func(int) (string, error) {
	i := 0
	return func(int) (string, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	}
}

var createdAt = time.Date(2024, 11, 5, 14, 0, 0, 0, time.UTC)

func TestGenerator_Assign_Format(t *testing.T) {
	g := NewGenerator(&takenSet{})

	refs, err := g.Assign(context.Background(), createdAt)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BK241105-[A-HJ-NP-Z2-9]{6}$`), refs.BookingNumber)
	assert.Regexp(t, regexp.MustCompile(`^[A-HJ-NP-Z2-9]{8}$`), refs.ConfirmationCode)
}

func TestGenerator_Assign_RetriesOnCollision(t *testing.T) {
	checker := &takenSet{
		numbers: map[string]bool{"BK241105-AAAAAA": true},
		codes:   map[string]bool{"CCCCCCCC": true},
	}
	g := NewGenerator(checker, WithRandom(sequence("AAAAAA", "BBBBBB", "CCCCCCCC", "DDDDDDDD")))

	refs, err := g.Assign(context.Background(), createdAt)

	require.NoError(t, err)
	assert.Equal(t, "BK241105-BBBBBB", refs.BookingNumber)
	assert.Equal(t, "DDDDDDDD", refs.ConfirmationCode)
}

func TestGenerator_Assign_GivesUpAfterMaxAttempts(t *testing.T) {
	checker := &takenSet{numbers: map[string]bool{"BK241105-AAAAAA": true}}
	g := NewGenerator(checker, WithMaxAttempts(3), WithRandom(sequence("AAAAAA")))

	_, err := g.Assign(context.Background(), createdAt)

	assert.ErrorIs(t, err, domain.ErrReferenceCollision)
}

func TestGenerator_Assign_CheckerFailure(t *testing.T) {
	g := NewGenerator(&takenSet{err: errors.New("db down")})

	_, err := g.Assign(context.Background(), createdAt)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReferenceCollision)
}

func TestGenerator_Assign_Unique(t *testing.T) {
	g := NewGenerator(&takenSet{})
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		refs, err := g.Assign(context.Background(), createdAt)
		require.NoError(t, err)
		assert.False(t, seen[refs.ConfirmationCode], refs.ConfirmationCode)
		seen[refs.ConfirmationCode] = true
	}
}
