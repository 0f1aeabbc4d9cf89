package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	trek  = domain.ItemRef{Kind: domain.ItemKindExcursion, ID: "trek"}
	lodge = domain.ItemRef{Kind: domain.ItemKindLodging, ID: "lodge"}
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

func newMemory(t *testing.T) *Memory {
	t.Helper()
	return NewMemory(clock.NewFixed(day("2024-11-01")))
}

func seedSlot(t *testing.T, m *Memory, slotID, start, end string, total int) {
	t.Helper()
	require.NoError(t, m.PutSlot(context.Background(), domain.SlotCapacity{
		ItemID: trek.ID, SlotID: slotID, Start: day(start), End: day(end), Total: total, Remaining: total,
	}))
}

func seedNights(t *testing.T, m *Memory, roomTypeID string, total int, dates ...string) {
	t.Helper()
	for _, d := range dates {
		require.NoError(t, m.PutNight(context.Background(), domain.NightlyRoomCapacity{
			ItemID: lodge.ID, RoomTypeID: roomTypeID, Date: day(d), Total: total, Remaining: total,
		}))
	}
}

func TestMemory_ConcurrentHoldsNeverOversell(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 2)

	var (
		wg       sync.WaitGroup
		ok       atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
				ID: fmt.Sprintf("req-%d", i), Item: trek, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 1,
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
	assert.Equal(t, int32(1), rejected.Load())
	slot, _ := m.Slot(trek.ID, "dep-1")
	assert.Equal(t, 0, slot.Remaining)
}

func TestMemory_ConcurrentMultiNightHolds(t *testing.T) {
	m := newMemory(t)
	seedNights(t, m, "double", 5, "2024-12-01", "2024-12-02", "2024-12-03", "2024-12-04")

	ranges := []domain.DateRange{
		stay("2024-12-01", "2024-12-03"),
		stay("2024-12-02", "2024-12-05"),
		stay("2024-12-01", "2024-12-05"),
		stay("2024-12-03", "2024-12-04"),
	}

	var (
		wg   sync.WaitGroup
		held sync.Map
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := ranges[i%len(ranges)]
			h, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
				ID: fmt.Sprintf("req-%d", i), Item: lodge, RoomTypeID: "double", Dates: r, Quantity: 1,
			})
			if err == nil {
				held.Store(h.ID, h.Dates)
			}
		}(i)
	}
	wg.Wait()

	taken := make(map[time.Time]int)
	held.Range(func(_, v any) bool {
		for _, d := range v.(domain.DateRange).Dates() {
			taken[d]++
		}
		return true
	})
	for _, d := range []string{"2024-12-01", "2024-12-02", "2024-12-03", "2024-12-04"} {
		n, _ := m.Night(lodge.ID, "double", day(d))
		assert.LessOrEqual(t, taken[day(d)], 5, d)
		assert.Equal(t, 5-taken[day(d)], n.Remaining, d)
	}
}

func TestMemory_CheckAndHold_LodgingIsAllOrNothing(t *testing.T) {
	m := newMemory(t)
	seedNights(t, m, "double", 2, "2024-12-01", "2024-12-02")
	require.NoError(t, m.PutNight(context.Background(), domain.NightlyRoomCapacity{
		ItemID: lodge.ID, RoomTypeID: "double", Date: day("2024-12-03"), Total: 2, Remaining: 0,
	}))

	_, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: lodge, RoomTypeID: "double", Dates: stay("2024-12-01", "2024-12-04"), Quantity: 1,
	})

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.Equal(t, day("2024-12-03"), capErr.Date)
	for _, d := range []string{"2024-12-01", "2024-12-02"} {
		n, _ := m.Night(lodge.ID, "double", day(d))
		assert.Equal(t, 2, n.Remaining, d)
	}
}

func TestMemory_CheckAndHold_MissingNight(t *testing.T) {
	m := newMemory(t)
	seedNights(t, m, "double", 2, "2024-12-01")

	_, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: lodge, RoomTypeID: "double", Dates: stay("2024-12-01", "2024-12-03"), Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestMemory_CheckAndHold_ImpossibleRequest(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 8)

	_, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: trek, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 12,
	})

	assert.ErrorIs(t, err, domain.ErrImpossibleRequest)
	assert.False(t, errors.Is(err, domain.ErrInsufficientCapacity))
}

func TestMemory_CheckAndHold_NoCoveringSlot(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 8)

	_, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: trek, Dates: stay("2024-12-03", "2024-12-06"), Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestMemory_CheckAndHold_FallsThroughToNextSlot(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-late", "2024-11-30", "2024-12-05", 4)
	seedSlot(t, m, "dep-early", "2024-11-29", "2024-12-04", 1)

	h, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: trek, Dates: stay("2024-12-01", "2024-12-03"), Quantity: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "dep-late", h.SlotID)
}

func TestMemory_CheckAndHold_IdempotentByRequestID(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 5)
	req := domain.HoldRequest{ID: "r1", Item: trek, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 2}

	first, err := m.CheckAndHold(context.Background(), req)
	require.NoError(t, err)
	second, err := m.CheckAndHold(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	slot, _ := m.Slot(trek.ID, "dep-1")
	assert.Equal(t, 3, slot.Remaining)
}

func TestMemory_CheckAndHold_CarriesNightlyPrices(t *testing.T) {
	m := newMemory(t)
	price := decimal.NewFromInt(400)
	seedNights(t, m, "double", 2, "2024-12-24")
	require.NoError(t, m.PutNight(context.Background(), domain.NightlyRoomCapacity{
		ItemID: lodge.ID, RoomTypeID: "double", Date: day("2024-12-25"), Total: 2, Remaining: 2, Price: &price,
	}))

	h, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: lodge, RoomTypeID: "double", Dates: stay("2024-12-24", "2024-12-26"), Quantity: 1,
	})

	require.NoError(t, err)
	require.Len(t, h.Nights, 2)
	assert.Nil(t, h.Nights[0].Price)
	require.NotNil(t, h.Nights[1].Price)
	assert.True(t, h.Nights[1].Price.Equal(price))
}

func TestMemory_Release_IsIdempotent(t *testing.T) {
	m := newMemory(t)
	seedNights(t, m, "double", 3, "2024-12-01", "2024-12-02")
	h, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: lodge, RoomTypeID: "double", Dates: stay("2024-12-01", "2024-12-03"), Quantity: 2,
	})
	require.NoError(t, err)

	released, err := m.Release(context.Background(), h.ID)
	require.NoError(t, err)
	assert.True(t, released)

	released, err = m.Release(context.Background(), h.ID)
	require.NoError(t, err)
	assert.False(t, released)

	for _, d := range []string{"2024-12-01", "2024-12-02"} {
		n, _ := m.Night(lodge.ID, "double", day(d))
		assert.Equal(t, 3, n.Remaining, d)
	}
}

func TestMemory_Release_Unknown(t *testing.T) {
	m := newMemory(t)

	_, err := m.Release(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrHoldNotFound)
}

func TestMemory_Confirm(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 5)
	h, err := m.CheckAndHold(context.Background(), domain.HoldRequest{
		ID: "r1", Item: trek, Dates: stay("2024-12-01", "2024-12-04"), Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, m.Confirm(context.Background(), h.ID))
	require.NoError(t, m.Confirm(context.Background(), h.ID))

	_, err = m.Release(context.Background(), h.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Confirm(context.Background(), h.ID), domain.ErrHoldReleased)
}

func TestMemory_QueryAvailability_Excursion(t *testing.T) {
	m := newMemory(t)
	seedSlot(t, m, "dep-1", "2024-12-01", "2024-12-04", 5)
	seedSlot(t, m, "dep-2", "2024-12-10", "2024-12-13", 2)
	seedSlot(t, m, "dep-3", "2025-01-10", "2025-01-13", 9)

	windows, err := m.QueryAvailability(context.Background(), domain.AvailabilityQuery{
		Item: trek, Dates: stay("2024-12-01", "2024-12-31"), PartySize: 3,
	})

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "dep-1", windows[0].SlotID)
	assert.Equal(t, 5, windows[0].Remaining)
}

func TestMemory_QueryAvailability_LodgingExcludesPartialStays(t *testing.T) {
	m := newMemory(t)
	seedNights(t, m, "double", 2, "2024-12-01", "2024-12-02")
	seedNights(t, m, "single", 4, "2024-12-01")

	windows, err := m.QueryAvailability(context.Background(), domain.AvailabilityQuery{
		Item: lodge, Dates: stay("2024-12-01", "2024-12-03"), Rooms: 1,
	})

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "double", windows[0].RoomTypeID)
	assert.Equal(t, 2, windows[0].Remaining)
}

func TestMemory_PutSlot_RejectsInvalidCapacity(t *testing.T) {
	m := newMemory(t)

	err := m.PutSlot(context.Background(), domain.SlotCapacity{
		ItemID: trek.ID, SlotID: "dep-1", Start: day("2024-12-01"), End: day("2024-12-02"), Total: 2, Remaining: 3,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
