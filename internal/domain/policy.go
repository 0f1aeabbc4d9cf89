package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FreeCancellation struct {
	DaysBefore int `json:"days_before"`
}

type RefundTier struct {
	DaysBefore int `json:"days_before"`
	Percentage int `json:"percentage"`
}

// CancellationPolicy is owned by the listing. Tiers are evaluated in order
// and the first tier whose DaysBefore is within the lead time wins.
type CancellationPolicy struct {
	FreeCancellation *FreeCancellation `json:"free_cancellation,omitempty"`
	RefundTiers      []RefundTier      `json:"refund_policy,omitempty"`
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
)

type Refund struct {
	Percentage      int             `json:"percentage"`
	Amount          decimal.Decimal `json:"amount"`
	DaysBeforeStart int             `json:"days_before_start"`
}

type CancellationRecord struct {
	Refund
	Currency    string       `json:"currency"`
	Status      RefundStatus `json:"status"`
	Reason      string       `json:"reason,omitempty"`
	CancelledBy string       `json:"cancelled_by"`
	CancelledAt time.Time    `json:"cancelled_at"`
}
