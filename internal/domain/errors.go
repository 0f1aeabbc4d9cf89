package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrHoldNotFound     = errors.New("hold not found")
	ErrSlotNotFound     = errors.New("no departure covers the requested dates")
	ErrRoomTypeNotFound = errors.New("room type not found")
)

var (
	ErrListingNotBookable   = errors.New("listing is not open for booking")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrImpossibleRequest    = errors.New("request exceeds total capacity")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrHoldReleased         = errors.New("hold already released")
)

var (
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
	ErrReferenceCollision  = errors.New("booking reference collision")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidPolicy = errors.New("invalid cancellation policy")
)

// CapacityError reports which cell rejected a hold.
type CapacityError struct {
	Err        error
	SlotID     string
	RoomTypeID string
	Date       time.Time
	Requested  int
	Remaining  int
	Total      int
}

func (e *CapacityError) Error() string {
	where := "slot " + e.SlotID
	if e.RoomTypeID != "" {
		where = fmt.Sprintf("room type %s on %s", e.RoomTypeID, e.Date.Format(DateLayout))
	}
	return fmt.Sprintf("%s: %s: requested %d, remaining %d of %d",
		e.Err, where, e.Requested, e.Remaining, e.Total)
}

func (e *CapacityError) Unwrap() error { return e.Err }

// TransitionError names the current and requested state of a rejected transition.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// IsRejection reports whether err is a business-rule rejection. Rejections
// must not be retried; anything else is an infrastructure failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrValidation, ErrInvalidPolicy,
		ErrListingNotFound, ErrBookingNotFound, ErrHoldNotFound, ErrSlotNotFound, ErrRoomTypeNotFound,
		ErrListingNotBookable, ErrInsufficientCapacity, ErrImpossibleRequest,
		ErrIllegalTransition, ErrHoldReleased,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
