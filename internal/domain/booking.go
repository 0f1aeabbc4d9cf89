package domain

import (
	"fmt"
	"time"
)

// Party describes who travels. Names are optional named participants or guests.
type Party struct {
	Adults   int      `json:"adults"`
	Children int      `json:"children"`
	Names    []string `json:"names,omitempty"`
}

func (p Party) Size() int { return p.Adults + p.Children }

func (p Party) Validate() error {
	if p.Adults < 0 || p.Children < 0 {
		return fmt.Errorf("%w: party counts cannot be negative", ErrValidation)
	}
	if p.Adults == 0 {
		return fmt.Errorf("%w: at least one adult is required", ErrValidation)
	}
	if len(p.Names) > p.Size() {
		return fmt.Errorf("%w: %d names given for a party of %d", ErrValidation, len(p.Names), p.Size())
	}
	return nil
}

// Reservation is the kind-specific part of a booking: either an
// ExcursionReservation or a LodgingReservation.
type Reservation interface {
	Kind() ItemKind
	PartySize() int
	// Units is the capacity taken from every cell the booking covers.
	Units() int
	isReservation()
}

type ExcursionReservation struct {
	SlotID string `json:"slot_id"`
	Party  Party  `json:"party"`
}

func (ExcursionReservation) Kind() ItemKind { return ItemKindExcursion }
func (r ExcursionReservation) PartySize() int { return r.Party.Size() }
func (r ExcursionReservation) Units() int { return r.Party.Size() }
func (ExcursionReservation) isReservation() {}

type LodgingReservation struct {
	RoomTypeID string `json:"room_type_id"`
	Rooms      int    `json:"rooms"`
	Party      Party  `json:"party"`
}

func (LodgingReservation) Kind() ItemKind { return ItemKindLodging }
func (r LodgingReservation) PartySize() int { return r.Party.Size() }
func (r LodgingReservation) Units() int { return r.Rooms }
func (LodgingReservation) isReservation() {}

// Requester is the identity supplied by the auth collaborator.
type Requester struct {
	UserID         string `json:"user_id"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

var ActorSystem = Actor{ID: "system", Role: "system"}

// StatusChange is one append-only audit entry.
type StatusChange struct {
	From   BookingStatus `json:"from"`
	To     BookingStatus `json:"to"`
	Actor  Actor         `json:"actor"`
	Reason string        `json:"reason,omitempty"`
	At     time.Time     `json:"at"`
}

type Booking struct {
	ID               string              `json:"id"`
	BookingNumber    string              `json:"booking_number"`
	ConfirmationCode string              `json:"confirmation_code"`
	Item             ItemRef             `json:"item"`
	Requester        Requester           `json:"requester"`
	Dates            DateRange           `json:"dates"`
	Reservation      Reservation         `json:"reservation"`
	Extras           []ExtraSelection    `json:"extras,omitempty"`
	HoldID           string              `json:"hold_id"`
	HoldReleased     bool                `json:"hold_released"`
	Pricing          PricingBreakdown    `json:"pricing"`
	Status           BookingStatus       `json:"status"`
	StatusHistory    []StatusChange      `json:"status_history"`
	Cancellation     *CancellationRecord `json:"cancellation,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	ConfirmedAt      *time.Time          `json:"confirmed_at,omitempty"`
	CancelledAt      *time.Time          `json:"cancelled_at,omitempty"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty"`
	NoShowAt         *time.Time          `json:"no_show_at,omitempty"`
}

// Stamp records the time of entering status.
func (b *Booking) Stamp(status BookingStatus, at time.Time) {
	t := at
	switch status {
	case BookingStatusConfirmed:
		b.ConfirmedAt = &t
	case BookingStatusCancelled:
		b.CancelledAt = &t
	case BookingStatusCompleted:
		b.CompletedAt = &t
	case BookingStatusNoShow:
		b.NoShowAt = &t
	}
	b.UpdatedAt = at
}

// CreateBookingInput is a booking request. RequestID is the correlation id
// used for the capacity hold; it is generated when empty.
type CreateBookingInput struct {
	RequestID  string
	Item       ItemRef
	Requester  Requester
	Dates      DateRange
	SlotID     string
	RoomTypeID string
	Rooms      int
	Party      Party
	Extras     []ExtraSelection
}

func (in CreateBookingInput) Validate() error {
	if in.Item.ID == "" {
		return fmt.Errorf("%w: item id is required", ErrValidation)
	}
	if in.Requester.UserID == "" {
		return fmt.Errorf("%w: requester is required", ErrValidation)
	}
	if err := in.Dates.Validate(); err != nil {
		return err
	}
	if err := in.Party.Validate(); err != nil {
		return err
	}
	for _, e := range in.Extras {
		if e.ServiceID == "" || e.Quantity <= 0 {
			return fmt.Errorf("%w: extras need a service id and a positive quantity", ErrValidation)
		}
	}
	switch in.Item.Kind {
	case ItemKindExcursion:
	case ItemKindLodging:
		if in.RoomTypeID == "" {
			return fmt.Errorf("%w: room type is required for lodging", ErrValidation)
		}
		if in.Rooms < 0 {
			return fmt.Errorf("%w: rooms cannot be negative", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown item kind %q", ErrValidation, in.Item.Kind)
	}
	return nil
}

// Reservation builds the kind-specific part of the booking.
func (in CreateBookingInput) Reservation() Reservation {
	if in.Item.Kind == ItemKindLodging {
		rooms := in.Rooms
		if rooms == 0 {
			rooms = 1
		}
		return LodgingReservation{RoomTypeID: in.RoomTypeID, Rooms: rooms, Party: in.Party}
	}
	return ExcursionReservation{SlotID: in.SlotID, Party: in.Party}
}

// ActiveStatuses are the statuses whose capacity hold is still in force.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusPaymentPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusInProgress,
}
