package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/cancellation"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type ListingService struct {
	catalog   ports.ListingCatalog
	inventory ports.InventoryStore
}

func NewListingService(catalog ports.ListingCatalog, inventory ports.InventoryStore) *ListingService {
	return &ListingService{
		catalog:   catalog,
		inventory: inventory,
	}
}

func (s *ListingService) CreateExcursion(ctx context.Context, e *domain.Excursion) (*domain.Excursion, error) {
	if err := prepareListing(&e.Listing); err != nil {
		return nil, err
	}
	if !e.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit_price must be positive", domain.ErrValidation)
	}
	for _, d := range e.GroupDiscounts {
		if d.MinGuests <= 0 || d.Percentage.IsNegative() || d.Percentage.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: group discount %q needs min_guests > 0 and a percentage in 0..100",
				domain.ErrValidation, d.Name)
		}
	}

	if err := s.catalog.SaveExcursion(ctx, e); err != nil {
		return nil, fmt.Errorf("save excursion: %w", err)
	}
	return e, nil
}

func (s *ListingService) CreateLodging(ctx context.Context, l *domain.Lodging) (*domain.Lodging, error) {
	if err := prepareListing(&l.Listing); err != nil {
		return nil, err
	}
	if len(l.RoomTypes) == 0 {
		return nil, fmt.Errorf("%w: at least one room type is required", domain.ErrValidation)
	}
	seen := make(map[string]bool, len(l.RoomTypes))
	for i := range l.RoomTypes {
		rt := &l.RoomTypes[i]
		if rt.ID == "" {
			rt.ID = uuid.New().String()
		}
		if seen[rt.ID] {
			return nil, fmt.Errorf("%w: duplicate room type %q", domain.ErrValidation, rt.ID)
		}
		seen[rt.ID] = true
		if !rt.BasePrice.IsPositive() || rt.MaxGuests < 0 {
			return nil, fmt.Errorf("%w: room type %q needs a positive base_price", domain.ErrValidation, rt.ID)
		}
	}

	if err := s.catalog.SaveLodging(ctx, l); err != nil {
		return nil, fmt.Errorf("save lodging: %w", err)
	}
	return l, nil
}

func prepareListing(l *domain.Listing) error {
	if l.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if l.OwnerID == "" {
		return fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	l.Currency = strings.ToUpper(l.Currency)
	if len(l.Currency) != 3 {
		return fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	}
	switch l.Status {
	case "":
		l.Status = domain.ListingStatusPublished
	case domain.ListingStatusDraft, domain.ListingStatusPublished, domain.ListingStatusArchived:
	default:
		return fmt.Errorf("%w: unknown listing status %q", domain.ErrValidation, l.Status)
	}
	for _, e := range l.Extras {
		if e.ID == "" || e.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: extras need an id and a non-negative unit_price", domain.ErrValidation)
		}
	}
	if err := cancellation.Validate(l.Policy); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (s *ListingService) GetExcursion(ctx context.Context, id string) (*domain.Excursion, error) {
	return s.catalog.GetExcursion(ctx, id)
}

func (s *ListingService) GetLodging(ctx context.Context, id string) (*domain.Lodging, error) {
	return s.catalog.GetLodging(ctx, id)
}

func (s *ListingService) List(ctx context.Context, kind domain.ItemKind) ([]*domain.Listing, error) {
	return s.catalog.List(ctx, kind)
}

// PutSlots loads or replaces departures of an excursion.
func (s *ListingService) PutSlots(ctx context.Context, excursionID string, slots []domain.SlotCapacity) error {
	if _, err := s.catalog.GetExcursion(ctx, excursionID); err != nil {
		return err
	}
	for _, slot := range slots {
		slot.ItemID = excursionID
		if err := s.inventory.PutSlot(ctx, slot); err != nil {
			return fmt.Errorf("put slot %s: %w", slot.SlotID, err)
		}
	}
	return nil
}

// PutNights loads or replaces nightly room capacity. Every room type must
// belong to the lodging.
func (s *ListingService) PutNights(ctx context.Context, lodgingID string, nights []domain.NightlyRoomCapacity) error {
	lodging, err := s.catalog.GetLodging(ctx, lodgingID)
	if err != nil {
		return err
	}
	for _, n := range nights {
		if _, ok := lodging.RoomType(n.RoomTypeID); !ok {
			return fmt.Errorf("%w: %s", domain.ErrRoomTypeNotFound, n.RoomTypeID)
		}
	}
	for _, n := range nights {
		n.ItemID = lodgingID
		if err = s.inventory.PutNight(ctx, n); err != nil {
			return fmt.Errorf("put night %s %s: %w", n.RoomTypeID, n.Date.Format(domain.DateLayout), err)
		}
	}
	return nil
}
