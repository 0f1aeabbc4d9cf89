package notification

import (
	"context"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func booking() *domain.Booking {
	return &domain.Booking{
		BookingNumber:    "BK241201-7KQ2",
		ConfirmationCode: "H4TZP9QA",
		Dates: domain.NewDateRange(
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		),
		Pricing: domain.PricingBreakdown{Currency: "USD", Total: decimal.RequireFromString("557.5")},
	}
}

func TestCreatedText(t *testing.T) {
	text := createdText(booking())

	assert.Contains(t, text, "BK241201-7KQ2")
	assert.Contains(t, text, "H4TZP9QA")
	assert.Contains(t, text, "20 Dec 2024 to 23 Dec 2024")
	assert.Contains(t, text, "557.50 USD")
}

func TestStatusText(t *testing.T) {
	text := statusText(booking(), domain.StatusChange{
		From:   domain.BookingStatusConfirmed,
		To:     domain.BookingStatusNoShow,
		Reason: "guest did not arrive",
	})

	assert.Contains(t, text, "is now marked as no-show")
	assert.Contains(t, text, "Reason: guest did not arrive")
}

func TestRefundText(t *testing.T) {
	b := booking()
	b.Cancellation = &domain.CancellationRecord{
		Refund:   domain.Refund{Percentage: 10, Amount: decimal.RequireFromString("55.76"), DaysBeforeStart: 3},
		Currency: "USD",
	}

	assert.Contains(t, refundText(b), "55.76 USD (10%)")

	b.Cancellation.Refund = domain.Refund{DaysBeforeStart: 0}
	assert.Contains(t, refundText(b), "No refund applies 0 day(s) before start")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", log)

	require.NoError(t, err)
	chatID := int64(42)
	b := booking()
	b.Requester.TelegramChatID = &chatID
	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), b)
		n.NotifyRefundComputed(context.Background(), b)
	})
}
