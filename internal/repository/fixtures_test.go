package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(start, end string) domain.DateRange {
	return domain.NewDateRange(day(start), day(end))
}

func excursionFixture(id string) *domain.Excursion {
	return &domain.Excursion{
		Listing: domain.Listing{
			ID:       id,
			OwnerID:  "owner-1",
			Title:    "Murchison Falls safari",
			Status:   domain.ListingStatusPublished,
			Currency: "USD",
			Policy: domain.CancellationPolicy{
				FreeCancellation: &domain.FreeCancellation{DaysBefore: 7},
				RefundTiers:      []domain.RefundTier{{DaysBefore: 3, Percentage: 50}},
			},
		},
		UnitPrice:      decimal.NewFromInt(180),
		GroupDiscounts: []domain.GroupDiscount{{MinGuests: 4, Percentage: decimal.NewFromInt(10)}},
	}
}

func lodgingFixture(id string) *domain.Lodging {
	return &domain.Lodging{
		Listing: domain.Listing{
			ID:       id,
			OwnerID:  "owner-2",
			Title:    "Ssese islands cottages",
			Status:   domain.ListingStatusPublished,
			Currency: "USD",
		},
		RoomTypes: []domain.RoomType{{ID: "double", Name: "Double", BasePrice: decimal.NewFromInt(250), MaxGuests: 2}},
	}
}

func seedExcursion(t *testing.T, db *dbpg.DB, id string) {
	t.Helper()
	require.NoError(t, NewListingRepo(db).SaveExcursion(context.Background(), excursionFixture(id)))
}

func seedLodging(t *testing.T, db *dbpg.DB, id string) {
	t.Helper()
	require.NoError(t, NewListingRepo(db).SaveLodging(context.Background(), lodgingFixture(id)))
}
