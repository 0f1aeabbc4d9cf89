package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// classify turns lock conflicts into domain.ErrConcurrencyConflict so the
// service layer can retry them.
func classify(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case serializationFailure, deadlockDetected:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConcurrencyConflict, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func pgDate(t time.Time) string { return domain.Midnight(t).Format(domain.DateLayout) }

type rowScanner interface {
	Scan(dest ...any) error
}
