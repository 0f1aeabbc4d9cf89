package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_CompletedCannotReturnToConfirmed(t *testing.T) {
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusConfirmed))
}

func TestBookingStatus_UnknownStatuses(t *testing.T) {
	unknown := BookingStatus("archived")

	assert.False(t, unknown.IsKnown())
	assert.False(t, unknown.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusPending.CanTransitionTo(unknown))
}

func TestBookingStatus_Terminal(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow, BookingStatusRefunded} {
		assert.True(t, s.IsTerminal(), s)
		for _, to := range AllStatuses {
			assert.False(t, s.CanTransitionTo(to), "%s -> %s", s, to)
		}
	}
	assert.False(t, BookingStatusPending.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("no_show")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusNoShow, s)

	_, err = ParseBookingStatus("lost")
	assert.ErrorIs(t, err, ErrValidation)
}
