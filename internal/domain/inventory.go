package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SlotCapacity is one excursion departure.
type SlotCapacity struct {
	ItemID    string    `json:"item_id"`
	SlotID    string    `json:"slot_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Total     int       `json:"total"`
	Remaining int       `json:"remaining"`
}

func (s SlotCapacity) Dates() DateRange { return DateRange{Start: s.Start, End: s.End} }

// NightlyRoomCapacity is one room type on one night. Price, when set,
// overrides the room type's base price for that night.
type NightlyRoomCapacity struct {
	ItemID     string           `json:"item_id"`
	RoomTypeID string           `json:"room_type_id"`
	Date       time.Time        `json:"date"`
	Total      int              `json:"total"`
	Remaining  int              `json:"remaining"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// ValidateCapacity checks 0 <= remaining <= total.
func ValidateCapacity(total, remaining int) error {
	if total < 0 || remaining < 0 || remaining > total {
		return fmt.Errorf("%w: capacity must satisfy 0 <= remaining (%d) <= total (%d)",
			ErrValidation, remaining, total)
	}
	return nil
}

type HoldStatus string

const (
	HoldStatusHeld      HoldStatus = "held"
	HoldStatusConfirmed HoldStatus = "confirmed"
	HoldStatusReleased  HoldStatus = "released"
)

// HoldRequest asks for Quantity units on every cell the request covers:
// one slot for an excursion, every night of Dates for lodging. ID is the
// booking request's correlation id and makes the hold idempotent.
type HoldRequest struct {
	ID         string
	Item       ItemRef
	Dates      DateRange
	Quantity   int
	SlotID     string
	RoomTypeID string
}

func (r HoldRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: hold id is required", ErrValidation)
	}
	if r.Item.ID == "" {
		return fmt.Errorf("%w: item id is required", ErrValidation)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if err := r.Dates.Validate(); err != nil {
		return err
	}
	switch r.Item.Kind {
	case ItemKindExcursion:
	case ItemKindLodging:
		if r.RoomTypeID == "" {
			return fmt.Errorf("%w: room type is required for lodging", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown item kind %q", ErrValidation, r.Item.Kind)
	}
	return nil
}

type HeldNight struct {
	Date  time.Time        `json:"date"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// Hold is a capacity reservation made at booking creation.
type Hold struct {
	ID         string      `json:"id"`
	Item       ItemRef     `json:"item"`
	SlotID     string      `json:"slot_id,omitempty"`
	RoomTypeID string      `json:"room_type_id,omitempty"`
	Dates      DateRange   `json:"dates"`
	Quantity   int         `json:"quantity"`
	Nights     []HeldNight `json:"nights,omitempty"`
	Status     HoldStatus  `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// AvailabilityQuery filters windows by the capacity a booking would take:
// PartySize places on an excursion, Rooms rooms of lodging.
type AvailabilityQuery struct {
	Item       ItemRef
	Dates      DateRange
	PartySize  int
	Rooms      int
	RoomTypeID string
}

// Units is the capacity each returned window must still have, at least 1.
func (q AvailabilityQuery) Units() int {
	n := q.PartySize
	if q.Item.Kind == ItemKindLodging {
		n = q.Rooms
	}
	return max(n, 1)
}

// AvailabilityWindow is a bookable slot, or a room type free on every night
// of the query. Remaining and Total are minima over the covered cells.
type AvailabilityWindow struct {
	SlotID     string    `json:"slot_id,omitempty"`
	RoomTypeID string    `json:"room_type_id,omitempty"`
	Dates      DateRange `json:"dates"`
	Total      int       `json:"total"`
	Remaining  int       `json:"remaining"`
}
