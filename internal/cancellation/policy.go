package cancellation

import (
	"fmt"
	"math"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// Validate rejects policy shapes that would make refunds grow as the start
// date nears: tiers must have strictly decreasing DaysBefore and
// non-increasing percentages within 0..100.
func Validate(p domain.CancellationPolicy) error {
	if p.FreeCancellation != nil && p.FreeCancellation.DaysBefore < 0 {
		return fmt.Errorf("%w: free cancellation days_before cannot be negative", domain.ErrInvalidPolicy)
	}
	for i, t := range p.RefundTiers {
		if t.DaysBefore < 0 {
			return fmt.Errorf("%w: tier %d days_before cannot be negative", domain.ErrInvalidPolicy, i)
		}
		if t.Percentage < 0 || t.Percentage > 100 {
			return fmt.Errorf("%w: tier %d percentage %d outside 0..100", domain.ErrInvalidPolicy, i, t.Percentage)
		}
		if i == 0 {
			continue
		}
		prev := p.RefundTiers[i-1]
		if t.DaysBefore >= prev.DaysBefore {
			return fmt.Errorf("%w: tier %d days_before %d must be below %d", domain.ErrInvalidPolicy, i, t.DaysBefore, prev.DaysBefore)
		}
		if t.Percentage > prev.Percentage {
			return fmt.Errorf("%w: tier %d refunds more than an earlier tier", domain.ErrInvalidPolicy, i)
		}
	}
	return nil
}

// DaysUntil is the lead time in days, rounded up. It is negative once start
// has passed.
func DaysUntil(start, now time.Time) int {
	return int(math.Ceil(start.Sub(now).Hours() / 24))
}

// RefundPercentage applies the policy to a lead time: 100 when the free
// cancellation window is met, otherwise the first tier whose DaysBefore fits,
// otherwise 0.
func RefundPercentage(p domain.CancellationPolicy, daysUntilStart int) int {
	if p.FreeCancellation != nil && daysUntilStart >= p.FreeCancellation.DaysBefore {
		return 100
	}
	for _, t := range p.RefundTiers {
		if t.DaysBefore <= daysUntilStart {
			return t.Percentage
		}
	}
	return 0
}

// ComputeRefund is the single refund formula for every cancellation path.
func ComputeRefund(p domain.CancellationPolicy, start, now time.Time, total decimal.Decimal, currency string) (domain.Refund, error) {
	if err := Validate(p); err != nil {
		return domain.Refund{}, err
	}
	days := DaysUntil(start, now)
	pct := RefundPercentage(p, days)
	return domain.Refund{
		Percentage:      pct,
		Amount:          domain.RoundMoney(domain.PercentOf(total, decimal.NewFromInt(int64(pct))), currency),
		DaysBeforeStart: days,
	}, nil
}
