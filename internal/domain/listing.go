package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ItemKind string

const (
	ItemKindExcursion ItemKind = "excursion"
	ItemKindLodging   ItemKind = "lodging"
)

func ParseItemKind(s string) (ItemKind, error) {
	switch k := ItemKind(s); k {
	case ItemKindExcursion, ItemKindLodging:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown item kind %q", ErrValidation, s)
	}
}

// ItemRef points at one bookable listing.
type ItemRef struct {
	Kind ItemKind `json:"kind"`
	ID   string   `json:"id"`
}

func (r ItemRef) String() string { return string(r.Kind) + "/" + r.ID }

type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusPublished ListingStatus = "published"
	ListingStatusArchived  ListingStatus = "archived"
)

// Listing holds what both inventory kinds share.
type Listing struct {
	ID       string             `json:"id"`
	OwnerID  string             `json:"owner_id"`
	Title    string             `json:"title"`
	Status   ListingStatus      `json:"status"`
	Currency string             `json:"currency"`
	Extras   []ExtraService     `json:"extras"`
	Policy   CancellationPolicy `json:"cancellation_policy"`
}

func (l *Listing) Bookable() bool { return l.Status == ListingStatusPublished }

func (l *Listing) Extra(id string) (ExtraService, bool) {
	for _, e := range l.Extras {
		if e.ID == id {
			return e, true
		}
	}
	return ExtraService{}, false
}

type ExtraService struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type ExtraSelection struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

type GroupDiscount struct {
	Name       string          `json:"name"`
	MinGuests  int             `json:"min_guests"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Excursion is a multi-day guided trip sold per person.
type Excursion struct {
	Listing
	UnitPrice      decimal.Decimal `json:"unit_price"`
	GroupDiscounts []GroupDiscount `json:"group_discounts"`
}

type RoomType struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	MaxGuests int             `json:"max_guests"`
}

// SeasonalRate is carried on lodging listings but only applied through a
// pricing.NightlyRateAdjuster.
type SeasonalRate struct {
	Name       string          `json:"name"`
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Lodging is sold per room per night.
type Lodging struct {
	Listing
	RoomTypes     []RoomType     `json:"room_types"`
	SeasonalRates []SeasonalRate `json:"seasonal_rates"`
}

func (l *Lodging) RoomType(id string) (RoomType, bool) {
	for _, rt := range l.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}
