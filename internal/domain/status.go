package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusPaymentPending BookingStatus = "payment_pending"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCheckedIn      BookingStatus = "checked_in"
	BookingStatusInProgress     BookingStatus = "in_progress"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusNoShow         BookingStatus = "no_show"
	BookingStatusRefunded       BookingStatus = "refunded"
)

// legalTransitions is the only source of allowed edges. payment_pending,
// checked_in, in_progress and refunded are set by downstream collaborators
// and have no outgoing edges here.
var legalTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:        {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:      {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusPaymentPending: {},
	BookingStatusCheckedIn:      {},
	BookingStatusInProgress:     {},
	BookingStatusCompleted:      {},
	BookingStatusCancelled:      {},
	BookingStatusNoShow:         {},
	BookingStatusRefunded:       {},
}

var terminalStatuses = map[BookingStatus]bool{
	BookingStatusCompleted: true,
	BookingStatusCancelled: true,
	BookingStatusNoShow:    true,
	BookingStatusRefunded:  true,
}

// AllStatuses lists every known status in lifecycle order.
var AllStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusPaymentPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusNoShow,
	BookingStatusRefunded,
}

func (s BookingStatus) IsKnown() bool {
	_, ok := legalTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool { return terminalStatuses[s] }

// CanTransitionTo reports whether s -> target is in the edge table. Unknown
// statuses on either side are never allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if !target.IsKnown() {
		return false
	}
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string { return string(s) }

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsKnown() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return status, nil
}
