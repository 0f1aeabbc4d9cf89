package ports

import (
	"context"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByHoldID(ctx context.Context, holdID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus, change domain.StatusChange) error
	MarkHoldReleased(ctx context.Context, id string) error
	ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Booking, error)
	ListUnreleasedHolds(ctx context.Context, limit int) ([]*domain.Booking, error)
	BookingNumberExists(ctx context.Context, number string) (bool, error)
	ConfirmationCodeExists(ctx context.Context, code string) (bool, error)
}
