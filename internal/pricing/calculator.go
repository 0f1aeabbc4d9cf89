package pricing

import (
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

const platformFeeName = "platform fee"

var (
	DefaultPlatformFeePercent = decimal.NewFromInt(5)
	DefaultTaxPercent         = decimal.NewFromInt(18)
)

// NightlyRateAdjuster is the seasonal pricing hook. It receives the night's
// price (override or room base price) and returns the price to charge.
type NightlyRateAdjuster interface {
	AdjustNightlyRate(lodging *domain.Lodging, roomType domain.RoomType, night time.Time, price decimal.Decimal) decimal.Decimal
}

// NoSeasonalAdjustment leaves every nightly price unchanged.
type NoSeasonalAdjustment struct{}

func (NoSeasonalAdjustment) AdjustNightlyRate(_ *domain.Lodging, _ domain.RoomType, _ time.Time, price decimal.Decimal) decimal.Decimal {
	return price
}

// Calculator prices booking requests. It holds no mutable state and every
// method is a pure function of its arguments.
type Calculator struct {
	platformFeePercent decimal.Decimal
	taxPercent         decimal.Decimal
	seasonal           NightlyRateAdjuster
}

type Option func(*Calculator)

func WithPlatformFeePercent(pct decimal.Decimal) Option {
	return func(c *Calculator) { c.platformFeePercent = pct }
}

func WithTaxPercent(pct decimal.Decimal) Option {
	return func(c *Calculator) { c.taxPercent = pct }
}

func WithSeasonalAdjuster(a NightlyRateAdjuster) Option {
	return func(c *Calculator) {
		if a != nil {
			c.seasonal = a
		}
	}
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		platformFeePercent: DefaultPlatformFeePercent,
		taxPercent:         DefaultTaxPercent,
		seasonal:           NoSeasonalAdjustment{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PriceExcursion charges unit price per person and applies the first group
// discount tier, in listing order, whose minimum the party meets.
func (c *Calculator) PriceExcursion(item *domain.Excursion, partySize int, extras []domain.ExtraSelection) (domain.PricingBreakdown, error) {
	if partySize <= 0 {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: party size must be positive", domain.ErrValidation)
	}
	currency := item.Currency
	gross := domain.RoundMoney(item.UnitPrice.Mul(decimal.NewFromInt(int64(partySize))), currency)

	var discounts []domain.Adjustment
	for _, d := range item.GroupDiscounts {
		if partySize < d.MinGuests {
			continue
		}
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("group discount (%d+ guests)", d.MinGuests)
		}
		discounts = append(discounts, domain.Adjustment{
			Name:   name,
			Kind:   domain.AdjustmentPercentage,
			Rate:   d.Percentage,
			Amount: domain.RoundMoney(domain.PercentOf(gross, d.Percentage), currency),
		})
		break
	}

	return c.finish(&item.Listing, gross, discounts, extras)
}

// PriceLodging charges every night of the stay for each room. nightly holds
// per-night price overrides from inventory; a missing entry falls back to the
// room type's base price.
func (c *Calculator) PriceLodging(
	item *domain.Lodging,
	roomTypeID string,
	dates domain.DateRange,
	rooms int,
	nightly []domain.HeldNight,
	extras []domain.ExtraSelection,
) (domain.PricingBreakdown, error) {
	if err := dates.Validate(); err != nil {
		return domain.PricingBreakdown{}, err
	}
	if rooms <= 0 {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: rooms must be positive", domain.ErrValidation)
	}
	roomType, ok := item.RoomType(roomTypeID)
	if !ok {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: %s", domain.ErrRoomTypeNotFound, roomTypeID)
	}

	overrides := make(map[time.Time]decimal.Decimal, len(nightly))
	for _, n := range nightly {
		if n.Price != nil {
			overrides[domain.Midnight(n.Date)] = *n.Price
		}
	}

	perRoom := decimal.Zero
	for _, night := range dates.Dates() {
		price, ok := overrides[night]
		if !ok {
			price = roomType.BasePrice
		}
		perRoom = perRoom.Add(c.seasonal.AdjustNightlyRate(item, roomType, night, price))
	}
	gross := domain.RoundMoney(perRoom.Mul(decimal.NewFromInt(int64(rooms))), item.Currency)

	return c.finish(&item.Listing, gross, nil, extras)
}

func (c *Calculator) finish(
	listing *domain.Listing,
	gross decimal.Decimal,
	discounts []domain.Adjustment,
	extras []domain.ExtraSelection,
) (domain.PricingBreakdown, error) {
	currency := listing.Currency

	base := gross
	for _, d := range discounts {
		base = base.Sub(d.Amount)
	}

	fees := []domain.Adjustment{{
		Name:   platformFeeName,
		Kind:   domain.AdjustmentPercentage,
		Rate:   c.platformFeePercent,
		Amount: domain.RoundMoney(domain.PercentOf(base, c.platformFeePercent), currency),
	}}
	for _, sel := range extras {
		svc, ok := listing.Extra(sel.ServiceID)
		if !ok {
			return domain.PricingBreakdown{}, fmt.Errorf("%w: unknown extra service %q", domain.ErrValidation, sel.ServiceID)
		}
		if sel.Quantity <= 0 {
			return domain.PricingBreakdown{}, fmt.Errorf("%w: extra %q quantity must be positive", domain.ErrValidation, sel.ServiceID)
		}
		fees = append(fees, domain.Adjustment{
			Name:     svc.Name,
			Kind:     domain.AdjustmentFixed,
			Rate:     svc.UnitPrice,
			Quantity: sel.Quantity,
			Amount:   domain.RoundMoney(svc.UnitPrice.Mul(decimal.NewFromInt(int64(sel.Quantity))), currency),
		})
	}

	feesTotal := decimal.Zero
	for _, f := range fees {
		feesTotal = feesTotal.Add(f.Amount)
	}

	tax := domain.RoundMoney(domain.PercentOf(base.Add(feesTotal), c.taxPercent), currency)

	return domain.PricingBreakdown{
		Currency:  currency,
		Gross:     gross,
		Discounts: discounts,
		Base:      base,
		Fees:      fees,
		FeesTotal: feesTotal,
		TaxRate:   c.taxPercent,
		Tax:       tax,
		Total:     base.Add(feesTotal).Add(tax),
	}, nil
}
