package cancellation

import (
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

func tieredPolicy() domain.CancellationPolicy {
	return domain.CancellationPolicy{
		FreeCancellation: &domain.FreeCancellation{DaysBefore: 7},
		RefundTiers: []domain.RefundTier{
			{DaysBefore: 7, Percentage: 50},
			{DaysBefore: 1, Percentage: 10},
		},
	}
}

func TestComputeRefund_FreeCancellationWindow(t *testing.T) {
	p := domain.CancellationPolicy{FreeCancellation: &domain.FreeCancellation{DaysBefore: 7}}

	r, err := ComputeRefund(p, start, start.AddDate(0, 0, -10), decimal.NewFromInt(500), "USD")

	require.NoError(t, err)
	assert.Equal(t, 100, r.Percentage)
	assert.Equal(t, "500", r.Amount.String())
	assert.Equal(t, 10, r.DaysBeforeStart)
}

func TestComputeRefund_TierMatch(t *testing.T) {
	r, err := ComputeRefund(tieredPolicy(), start, start.AddDate(0, 0, -3), decimal.RequireFromString("557.55"), "USD")

	require.NoError(t, err)
	assert.Equal(t, 10, r.Percentage)
	assert.Equal(t, "55.76", r.Amount.String())
}

func TestComputeRefund_NoMatchingTier(t *testing.T) {
	r, err := ComputeRefund(tieredPolicy(), start, start.Add(-6*time.Hour), decimal.NewFromInt(500), "USD")

	require.NoError(t, err)
	assert.Equal(t, 1, r.DaysBeforeStart)
	assert.Equal(t, 10, r.Percentage)

	r, err = ComputeRefund(tieredPolicy(), start, start.Add(2*time.Hour), decimal.NewFromInt(500), "USD")

	require.NoError(t, err)
	assert.Equal(t, 0, r.Percentage)
	assert.True(t, r.Amount.IsZero())
}

func TestComputeRefund_EmptyPolicy(t *testing.T) {
	r, err := ComputeRefund(domain.CancellationPolicy{}, start, start.AddDate(0, 0, -30), decimal.NewFromInt(500), "USD")

	require.NoError(t, err)
	assert.Equal(t, 0, r.Percentage)
}

func TestRefundPercentage_NeverIncreasesAsStartNears(t *testing.T) {
	policies := []domain.CancellationPolicy{
		tieredPolicy(),
		{RefundTiers: []domain.RefundTier{{DaysBefore: 30, Percentage: 90}, {DaysBefore: 14, Percentage: 50}, {DaysBefore: 2, Percentage: 50}}},
		{FreeCancellation: &domain.FreeCancellation{DaysBefore: 2}, RefundTiers: []domain.RefundTier{{DaysBefore: 10, Percentage: 75}}},
	}

	for _, p := range policies {
		require.NoError(t, Validate(p))
		prev := 100
		for days := 60; days >= -5; days-- {
			pct := RefundPercentage(p, days)
			assert.LessOrEqual(t, pct, prev, "days=%d", days)
			prev = pct
		}
	}
}

func TestValidate_RejectsNonMonotonicPolicies(t *testing.T) {
	tests := []struct {
		name  string
		tiers []domain.RefundTier
	}{
		{"increasing percentage", []domain.RefundTier{{DaysBefore: 7, Percentage: 10}, {DaysBefore: 1, Percentage: 50}}},
		{"ascending days", []domain.RefundTier{{DaysBefore: 1, Percentage: 10}, {DaysBefore: 7, Percentage: 10}}},
		{"duplicate days", []domain.RefundTier{{DaysBefore: 3, Percentage: 10}, {DaysBefore: 3, Percentage: 5}}},
		{"over 100", []domain.RefundTier{{DaysBefore: 3, Percentage: 120}}},
		{"negative days", []domain.RefundTier{{DaysBefore: -1, Percentage: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.CancellationPolicy{RefundTiers: tt.tiers}

			assert.ErrorIs(t, Validate(p), domain.ErrInvalidPolicy)
			_, err := ComputeRefund(p, start, start.AddDate(0, 0, -5), decimal.NewFromInt(100), "USD")
			assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
		})
	}
}

func TestDaysUntil_RoundsUp(t *testing.T) {
	assert.Equal(t, 3, DaysUntil(start, start.Add(-49*time.Hour)))
	assert.Equal(t, 0, DaysUntil(start, start))
	assert.Equal(t, -1, DaysUntil(start, start.Add(25*time.Hour)))
}
