package ports

import (
	"context"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, change domain.StatusChange)
	NotifyRefundComputed(ctx context.Context, b *domain.Booking)
}
