package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(number, code string, createdAt time.Time) *domain.Booking {
	requester := domain.Actor{ID: "u1", Role: "traveler"}
	chatID := int64(4242)
	return &domain.Booking{
		ID:               uuid.NewString(),
		BookingNumber:    number,
		ConfirmationCode: code,
		Item:             domain.ItemRef{Kind: domain.ItemKindExcursion, ID: "ex-1"},
		Requester:        domain.Requester{UserID: "u1", TelegramChatID: &chatID},
		Dates:            stay("2030-06-01", "2030-06-04"),
		Reservation: domain.ExcursionReservation{
			SlotID: "dep-1",
			Party:  domain.Party{Adults: 2, Names: []string{"Nia", "Tendo"}},
		},
		HoldID: "hold-" + number,
		Pricing: domain.PricingBreakdown{
			Currency: "USD",
			Base:     decimal.NewFromInt(360),
			Total:    decimal.RequireFromString("446.04"),
		},
		Status: domain.BookingStatusPending,
		StatusHistory: []domain.StatusChange{
			{To: domain.BookingStatusPending, Actor: requester, At: createdAt},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	seedExcursion(t, db, "ex-1")
	repo := NewBookingRepo(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	b := newBooking("BK300601-AAAAAA", "AAAAAAAA", now)
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.BookingNumber, got.BookingNumber)
	assert.Equal(t, b.Reservation, got.Reservation)
	assert.Equal(t, int64(4242), *got.Requester.TelegramChatID)
	assert.True(t, got.Pricing.Total.Equal(b.Pricing.Total))
	require.Len(t, got.StatusHistory, 1)
	assert.Equal(t, domain.BookingStatusPending, got.StatusHistory[0].To)

	exists, err := repo.BookingNumberExists(ctx, b.BookingNumber)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ConfirmationCodeExists(ctx, "ZZZZZZZZ")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Create_ReferenceCollision(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	seedExcursion(t, db, "ex-1")
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newBooking("BK300601-AAAAAA", "AAAAAAAA", now)))

	err := repo.Create(ctx, newBooking("BK300601-AAAAAA", "BBBBBBBB", now))
	assert.ErrorIs(t, err, domain.ErrReferenceCollision)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	seedExcursion(t, db, "ex-1")
	repo := NewBookingRepo(db)
	now := time.Now().UTC()
	b := newBooking("BK300601-AAAAAA", "AAAAAAAA", now)
	require.NoError(t, repo.Create(ctx, b))

	later := now.Add(time.Hour)
	b.Status = domain.BookingStatusCancelled
	b.Stamp(domain.BookingStatusCancelled, later)
	b.Cancellation = &domain.CancellationRecord{
		Refund:      domain.Refund{Percentage: 100, Amount: decimal.RequireFromString("446.04"), DaysBeforeStart: 30},
		Currency:    "USD",
		Status:      domain.RefundStatusPending,
		CancelledBy: "u1",
		CancelledAt: later,
	}
	change := domain.StatusChange{
		From:   domain.BookingStatusPending,
		To:     domain.BookingStatusCancelled,
		Actor:  domain.Actor{ID: "u1", Role: "traveler"},
		Reason: "change of plans",
		At:     later,
	}
	require.NoError(t, repo.UpdateStatus(ctx, b, domain.BookingStatusPending, change))

	err := repo.UpdateStatus(ctx, b, domain.BookingStatusPending, change)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
	require.NotNil(t, got.Cancellation)
	assert.Equal(t, 100, got.Cancellation.Percentage)
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, "change of plans", got.StatusHistory[1].Reason)

	unreleased, err := repo.ListUnreleasedHolds(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unreleased, 1)

	require.NoError(t, repo.MarkHoldReleased(ctx, b.ID))
	unreleased, err = repo.ListUnreleasedHolds(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, unreleased)
}

func TestBookingRepository_ListPendingOlderThan(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	seedExcursion(t, db, "ex-1")
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	old := newBooking("BK300601-AAAAAA", "AAAAAAAA", now.Add(-2*time.Hour))
	fresh := newBooking("BK300601-BBBBBB", "BBBBBBBB", now)
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	pending, err := repo.ListPendingOlderThan(ctx, now.Add(-30*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, old.ID, pending[0].ID)

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, fresh.ID, mine[0].ID)
}
