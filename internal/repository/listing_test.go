package repository

import (
	"context"
	"testing"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewListingRepo(db)

	require.NoError(t, repo.SaveExcursion(ctx, excursionFixture("ex-1")))
	require.NoError(t, repo.SaveLodging(ctx, lodgingFixture("lo-1")))

	ex, err := repo.GetExcursion(ctx, "ex-1")
	require.NoError(t, err)
	assert.Equal(t, "Murchison Falls safari", ex.Title)
	assert.True(t, ex.UnitPrice.Equal(excursionFixture("ex-1").UnitPrice))
	require.NotNil(t, ex.Policy.FreeCancellation)
	assert.Equal(t, 7, ex.Policy.FreeCancellation.DaysBefore)

	lo, err := repo.GetLodging(ctx, "lo-1")
	require.NoError(t, err)
	_, ok := lo.RoomType("double")
	assert.True(t, ok)

	_, err = repo.GetLodging(ctx, "ex-1")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	listed, err := repo.List(ctx, domain.ItemKindExcursion)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestListingRepository_KindIsFixed(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewListingRepo(db)
	require.NoError(t, repo.SaveExcursion(ctx, excursionFixture("shared-id")))

	err := repo.SaveLodging(ctx, lodgingFixture("shared-id"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingRepository_RejectsInvalidPolicyOnRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewListingRepo(db)
	ex := excursionFixture("ex-1")
	ex.Policy.RefundTiers = []domain.RefundTier{{DaysBefore: 1, Percentage: 10}, {DaysBefore: 5, Percentage: 50}}
	require.NoError(t, repo.SaveExcursion(ctx, ex))

	_, err := repo.GetExcursion(ctx, "ex-1")

	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}
