package domain

import "github.com/shopspring/decimal"

type AdjustmentKind string

const (
	AdjustmentPercentage AdjustmentKind = "percentage"
	AdjustmentFixed      AdjustmentKind = "fixed"
)

// Adjustment is one itemized discount or fee. Rate is a percentage for
// AdjustmentPercentage and a unit price for AdjustmentFixed.
type Adjustment struct {
	Name     string          `json:"name"`
	Kind     AdjustmentKind  `json:"kind"`
	Rate     decimal.Decimal `json:"rate"`
	Quantity int             `json:"quantity,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// PricingBreakdown is locked onto a booking at creation and never recomputed.
// Base is the amount after discounts.
type PricingBreakdown struct {
	Currency  string          `json:"currency"`
	Gross     decimal.Decimal `json:"gross"`
	Discounts []Adjustment    `json:"discounts"`
	Base      decimal.Decimal `json:"base"`
	Fees      []Adjustment    `json:"fees"`
	FeesTotal decimal.Decimal `json:"fees_total"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}
