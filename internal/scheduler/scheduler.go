package scheduler

import (
	"context"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	CancelAbandoned(ctx context.Context) ([]*domain.Booking, error)
	ReleaseOrphanedHolds(ctx context.Context) (int, error)
}

type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick cancels abandoned bookings first so their holds are released in the
// same pass when the inline release fails.
func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelAbandoned(ctx)
	if err != nil {
		s.logger.Error("failed to cancel abandoned bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range cancelled {
		s.logger.Info("booking abandoned",
			logger.String("booking_id", b.ID),
			logger.String("booking_number", b.BookingNumber),
			logger.String("user_id", b.Requester.UserID),
			logger.String("item", b.Item.String()),
		)
	}

	if _, err = s.bookingService.ReleaseOrphanedHolds(ctx); err != nil {
		s.logger.Error("failed to release orphaned holds",
			logger.String("error", err.Error()),
		)
	}
}
