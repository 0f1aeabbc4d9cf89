package inventory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// newRedisStore returns a store and a fresh item id so runs never share keys.
func newRedisStore(t *testing.T, kind domain.ItemKind) (*Redis, domain.ItemRef) {
	t.Helper()
	store := NewRedis(getRedisClient(t), clock.NewFixed(day("2024-11-01")))
	return store, domain.ItemRef{Kind: kind, ID: "test-" + uuid.NewString()}
}

func TestRedis_ConcurrentHoldsNeverOversell(t *testing.T) {
	store, item := newRedisStore(t, domain.ItemKindExcursion)
	ctx := context.Background()
	require.NoError(t, store.PutSlot(ctx, domain.SlotCapacity{
		ItemID: item.ID, SlotID: "dep-1", Start: day("2024-12-01"), End: day("2024-12-04"), Total: 2, Remaining: 2,
	}))

	var (
		wg       sync.WaitGroup
		ok       atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.CheckAndHold(ctx, domain.HoldRequest{
				ID: fmt.Sprintf("%s-%d", item.ID, i), Item: item, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 1,
			})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrInsufficientCapacity):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(2), ok.Load())
	assert.Equal(t, int32(8), rejected.Load())

	windows, err := store.QueryAvailability(ctx, domain.AvailabilityQuery{Item: item, Dates: stay("2024-12-01", "2024-12-04")})
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestRedis_LodgingHoldIsAllOrNothing(t *testing.T) {
	store, item := newRedisStore(t, domain.ItemKindLodging)
	ctx := context.Background()
	for d, remaining := range map[string]int{"2024-12-01": 2, "2024-12-02": 0} {
		require.NoError(t, store.PutNight(ctx, domain.NightlyRoomCapacity{
			ItemID: item.ID, RoomTypeID: "double", Date: day(d), Total: 2, Remaining: remaining,
		}))
	}

	_, err := store.CheckAndHold(ctx, domain.HoldRequest{
		ID: item.ID + "-r1", Item: item, RoomTypeID: "double", Dates: stay("2024-12-01", "2024-12-03"), Quantity: 1,
	})

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, day("2024-12-02"), capErr.Date)

	nights, err := store.nights(ctx, item.ID, "double", stay("2024-12-01", "2024-12-02"))
	require.NoError(t, err)
	require.Len(t, nights, 1)
	assert.Equal(t, 2, nights[0].Remaining)
}

func TestRedis_HoldConfirmRelease(t *testing.T) {
	store, item := newRedisStore(t, domain.ItemKindLodging)
	ctx := context.Background()
	price := decimal.NewFromInt(320)
	for _, d := range []string{"2024-12-01", "2024-12-02"} {
		require.NoError(t, store.PutNight(ctx, domain.NightlyRoomCapacity{
			ItemID: item.ID, RoomTypeID: "double", Date: day(d), Total: 3, Remaining: 3, Price: &price,
		}))
	}
	req := domain.HoldRequest{
		ID: item.ID + "-r1", Item: item, RoomTypeID: "double", Dates: stay("2024-12-01", "2024-12-03"), Quantity: 2,
	}

	h, err := store.CheckAndHold(ctx, req)
	require.NoError(t, err)
	require.Len(t, h.Nights, 2)
	assert.True(t, h.Nights[1].Price.Equal(price))

	again, err := store.CheckAndHold(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, h.ID, again.ID)

	require.NoError(t, store.Confirm(ctx, h.ID))

	released, err := store.Release(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, released)
	released, err = store.Release(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, released)

	nights, err := store.nights(ctx, item.ID, "double", req.Dates)
	require.NoError(t, err)
	for _, n := range nights {
		assert.Equal(t, 3, n.Remaining)
	}
	assert.ErrorIs(t, store.Confirm(ctx, h.ID), domain.ErrHoldReleased)
}

func TestRedis_ImpossibleRequest(t *testing.T) {
	store, item := newRedisStore(t, domain.ItemKindExcursion)
	ctx := context.Background()
	require.NoError(t, store.PutSlot(ctx, domain.SlotCapacity{
		ItemID: item.ID, SlotID: "dep-1", Start: day("2024-12-01"), End: day("2024-12-04"), Total: 8, Remaining: 8,
	}))

	_, err := store.CheckAndHold(ctx, domain.HoldRequest{
		ID: item.ID + "-r1", Item: item, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 9,
	})

	assert.ErrorIs(t, err, domain.ErrImpossibleRequest)
}

func TestRedis_Release_Unknown(t *testing.T) {
	store, item := newRedisStore(t, domain.ItemKindExcursion)

	_, err := store.Release(context.Background(), item.ID)

	assert.ErrorIs(t, err, domain.ErrHoldNotFound)
}
