package pricing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func gorillaTrek() *domain.Excursion {
	return &domain.Excursion{
		Listing: domain.Listing{
			ID:       "ex-1",
			Title:    "Bwindi gorilla trek",
			Status:   domain.ListingStatusPublished,
			Currency: "USD",
			Extras: []domain.ExtraService{
				{ID: "transfer", Name: "Airport transfer", UnitPrice: dec("40")},
			},
		},
		UnitPrice: dec("100"),
		GroupDiscounts: []domain.GroupDiscount{
			{Name: "group of five", MinGuests: 5, Percentage: dec("10")},
			{Name: "group of three", MinGuests: 3, Percentage: dec("5")},
		},
	}
}

func lakeLodge() *domain.Lodging {
	return &domain.Lodging{
		Listing: domain.Listing{
			ID:       "lo-1",
			Title:    "Lake Bunyonyi lodge",
			Status:   domain.ListingStatusPublished,
			Currency: "USD",
		},
		RoomTypes: []domain.RoomType{
			{ID: "double", Name: "Double", BasePrice: dec("250"), MaxGuests: 2},
		},
	}
}

func TestCalculator_PriceExcursion_GroupDiscount(t *testing.T) {
	c := NewCalculator()

	b, err := c.PriceExcursion(gorillaTrek(), 5, nil)

	require.NoError(t, err)
	assert.Equal(t, "500", b.Gross.String())
	require.Len(t, b.Discounts, 1)
	assert.Equal(t, "group of five", b.Discounts[0].Name)
	assert.Equal(t, "450", b.Base.String())
	require.Len(t, b.Fees, 1)
	assert.Equal(t, "22.5", b.Fees[0].Amount.String())
	assert.Equal(t, "85.05", b.Tax.String())
	assert.Equal(t, "557.55", b.Total.String())
}

func TestCalculator_PriceExcursion_FirstMatchingTierWins(t *testing.T) {
	c := NewCalculator()

	b, err := c.PriceExcursion(gorillaTrek(), 4, nil)

	require.NoError(t, err)
	require.Len(t, b.Discounts, 1)
	assert.Equal(t, "group of three", b.Discounts[0].Name)
	assert.Equal(t, "380", b.Base.String())
}

func TestCalculator_PriceExcursion_NoDiscountForSmallParty(t *testing.T) {
	c := NewCalculator()

	b, err := c.PriceExcursion(gorillaTrek(), 2, nil)

	require.NoError(t, err)
	assert.Empty(t, b.Discounts)
	assert.True(t, b.Base.Equal(b.Gross))
}

func TestCalculator_PriceExcursion_Extras(t *testing.T) {
	c := NewCalculator()

	b, err := c.PriceExcursion(gorillaTrek(), 2, []domain.ExtraSelection{{ServiceID: "transfer", Quantity: 2}})

	require.NoError(t, err)
	// base 200, platform fee 10, transfer 80, tax 18% of 290
	assert.Equal(t, "90", b.FeesTotal.String())
	assert.Equal(t, "52.2", b.Tax.String())
	assert.Equal(t, "342.2", b.Total.String())
}

func TestCalculator_PriceExcursion_UnknownExtra(t *testing.T) {
	c := NewCalculator()

	_, err := c.PriceExcursion(gorillaTrek(), 2, []domain.ExtraSelection{{ServiceID: "spa", Quantity: 1}})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculator_PriceLodging(t *testing.T) {
	c := NewCalculator()
	stay := domain.NewDateRange(day("2024-12-01"), day("2024-12-03"))

	b, err := c.PriceLodging(lakeLodge(), "double", stay, 1, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "500", b.Base.String())
	assert.Equal(t, "25", b.FeesTotal.String())
	assert.Equal(t, "94.5", b.Tax.String())
	assert.Equal(t, "619.5", b.Total.String())
}

func TestCalculator_PriceLodging_NightlyOverrideAndRooms(t *testing.T) {
	c := NewCalculator()
	stay := domain.NewDateRange(day("2024-12-24"), day("2024-12-26"))
	christmas := dec("400")

	b, err := c.PriceLodging(lakeLodge(), "double", stay, 2, []domain.HeldNight{
		{Date: day("2024-12-24")},
		{Date: day("2024-12-25"), Price: &christmas},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "1300", b.Base.String())
}

func TestCalculator_PriceLodging_UnknownRoomType(t *testing.T) {
	c := NewCalculator()
	stay := domain.NewDateRange(day("2024-12-01"), day("2024-12-02"))

	_, err := c.PriceLodging(lakeLodge(), "suite", stay, 1, nil, nil)

	assert.ErrorIs(t, err, domain.ErrRoomTypeNotFound)
}

type doubleOnWeekends struct{}

func (doubleOnWeekends) AdjustNightlyRate(_ *domain.Lodging, _ domain.RoomType, night time.Time, price decimal.Decimal) decimal.Decimal {
	if night.Weekday() == time.Saturday {
		return price.Mul(decimal.NewFromInt(2))
	}
	return price
}

func TestCalculator_PriceLodging_SeasonalAdjuster(t *testing.T) {
	c := NewCalculator(WithSeasonalAdjuster(doubleOnWeekends{}))
	// Fri 2024-12-06 and Sat 2024-12-07
	stay := domain.NewDateRange(day("2024-12-06"), day("2024-12-08"))

	b, err := c.PriceLodging(lakeLodge(), "double", stay, 1, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "750", b.Base.String())
}

func TestCalculator_ZeroDecimalCurrency(t *testing.T) {
	c := NewCalculator()
	trek := gorillaTrek()
	trek.Currency = "UGX"
	trek.UnitPrice = dec("33333")
	trek.GroupDiscounts = nil

	b, err := c.PriceExcursion(trek, 1, nil)

	require.NoError(t, err)
	// fee 1666.65 rounds to 1667, tax 18% of 35000 = 6300
	assert.Equal(t, "1667", b.FeesTotal.String())
	assert.Equal(t, "6300", b.Tax.String())
	assert.Equal(t, "41300", b.Total.String())
}

func TestCalculator_Deterministic(t *testing.T) {
	c := NewCalculator()
	extras := []domain.ExtraSelection{{ServiceID: "transfer", Quantity: 1}}

	first, err := c.PriceExcursion(gorillaTrek(), 6, extras)
	require.NoError(t, err)
	second, err := c.PriceExcursion(gorillaTrek(), 6, extras)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.JSONEq(t, string(a), string(b))
}

func TestCalculator_CustomRates(t *testing.T) {
	c := NewCalculator(WithPlatformFeePercent(dec("0")), WithTaxPercent(dec("10")))

	b, err := c.PriceExcursion(gorillaTrek(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, "110", b.Total.String())
}
