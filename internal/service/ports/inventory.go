package ports

import (
	"context"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

// InventoryStore owns capacity. CheckAndHold is all or nothing and is
// idempotent by request id; Release credits a hold back at most once.
type InventoryStore interface {
	CheckAndHold(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error)
	Confirm(ctx context.Context, holdID string) error
	Release(ctx context.Context, holdID string) (bool, error)
	QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error)
	PutSlot(ctx context.Context, s domain.SlotCapacity) error
	PutNight(ctx context.Context, n domain.NightlyRoomCapacity) error
}
