package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	slotKeyPrefix   = "inv:slot:"
	slotIndexPrefix = "inv:slots:"
	nightKeyPrefix  = "inv:night:"
	roomIndexPrefix = "inv:rooms:"
	holdKeyPrefix   = "inv:hold:"
)

const (
	holdCreated    = 1
	holdExists     = 0
	cellMissing    = -1
	cellImpossible = -2
	cellShort      = -3
)

// holdScript checks every cell and only then takes qty from all of them.
// KEYS[1] is the hold, KEYS[2..] the capacity cells.
var holdScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return {0}
end

local qty = tonumber(ARGV[1])
for i = 2, #KEYS do
	local total = redis.call('HGET', KEYS[i], 'total')
	if not total then
		return {-1, i - 2}
	end
	total = tonumber(total)
	local remaining = tonumber(redis.call('HGET', KEYS[i], 'remaining'))
	if total < qty then
		return {-2, i - 2, remaining, total}
	end
	if remaining < qty then
		return {-3, i - 2, remaining, total}
	end
end

for i = 2, #KEYS do
	redis.call('HINCRBY', KEYS[i], 'remaining', -qty)
end
redis.call('HSET', KEYS[1], 'status', ARGV[2], 'payload', ARGV[3])
return {1}
`)

var confirmScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status == ARGV[2] then
	return -2
end
redis.call('HSET', KEYS[1], 'status', ARGV[1])
return 1
`)

// releaseScript flips the hold to released and returns its units, capped at
// each cell's total. A second call is a no-op.
var releaseScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status == ARGV[2] then
	return 0
end

local qty = tonumber(ARGV[1])
for i = 2, #KEYS do
	local total = redis.call('HGET', KEYS[i], 'total')
	if total then
		local restored = tonumber(redis.call('HGET', KEYS[i], 'remaining')) + qty
		if restored > tonumber(total) then
			restored = tonumber(total)
		end
		redis.call('HSET', KEYS[i], 'remaining', restored)
	end
end
redis.call('HSET', KEYS[1], 'status', ARGV[2])
return 1
`)

// Redis is an InventoryStore backed by a single Redis node. Each capacity
// cell is a hash with total and remaining; holds are taken by Lua scripts so
// a multi-night hold is checked and applied in one atomic step.
type Redis struct {
	client *redis.Client
	clock  clock.Clock
}

func NewRedis(client *redis.Client, clk clock.Clock) *Redis {
	return &Redis{client: client, clock: clk}
}

func slotKey(itemID, slotID string) string {
	return slotKeyPrefix + itemID + ":" + slotID
}

func nightCellKey(itemID, roomTypeID string, date time.Time) string {
	return nightKeyPrefix + itemID + ":" + roomTypeID + ":" + date.Format(domain.DateLayout)
}

func holdKey(id string) string { return holdKeyPrefix + id }

func (r *Redis) PutSlot(ctx context.Context, s domain.SlotCapacity) error {
	if err := domain.ValidateCapacity(s.Total, s.Remaining); err != nil {
		return err
	}
	s.Start, s.End = domain.Midnight(s.Start), domain.Midnight(s.End)
	if err := s.Dates().Validate(); err != nil {
		return err
	}

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, slotKey(s.ItemID, s.SlotID),
			"total", s.Total,
			"remaining", s.Remaining,
			"start", s.Start.Format(domain.DateLayout),
			"end", s.End.Format(domain.DateLayout),
		)
		p.ZAdd(ctx, slotIndexPrefix+s.ItemID, redis.Z{Score: float64(s.Start.Unix()), Member: s.SlotID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put slot: %w", err)
	}
	return nil
}

func (r *Redis) PutNight(ctx context.Context, n domain.NightlyRoomCapacity) error {
	if err := domain.ValidateCapacity(n.Total, n.Remaining); err != nil {
		return err
	}
	key := nightCellKey(n.ItemID, n.RoomTypeID, domain.Midnight(n.Date))

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, "total", n.Total, "remaining", n.Remaining)
		if n.Price != nil {
			p.HSet(ctx, key, "price", n.Price.String())
		} else {
			p.HDel(ctx, key, "price")
		}
		p.SAdd(ctx, roomIndexPrefix+n.ItemID, n.RoomTypeID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put night: %w", err)
	}
	return nil
}

func (r *Redis) CheckAndHold(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Dates = domain.NewDateRange(req.Dates.Start, req.Dates.End)

	existing, err := r.hold(ctx, req.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrHoldNotFound) {
		return nil, err
	}

	if req.Item.Kind == domain.ItemKindExcursion {
		return r.holdSlot(ctx, req)
	}
	return r.holdNights(ctx, req)
}

func (r *Redis) holdSlot(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error) {
	slots, err := r.slots(ctx, req.Item.ID)
	if err != nil {
		return nil, err
	}

	var rejection *domain.CapacityError
	found := false
	for _, s := range slots {
		if (req.SlotID != "" && s.SlotID != req.SlotID) || !s.Dates().Contains(req.Dates) {
			continue
		}
		found = true

		h := &domain.Hold{
			ID:        req.ID,
			Item:      req.Item,
			SlotID:    s.SlotID,
			Dates:     req.Dates,
			Quantity:  req.Quantity,
			Status:    domain.HoldStatusHeld,
			CreatedAt: r.clock.Now(),
		}
		res, err := r.runHold(ctx, h, []string{slotKey(req.Item.ID, s.SlotID)})
		if err != nil {
			return nil, err
		}
		switch res.code {
		case holdCreated:
			return h, nil
		case holdExists:
			return r.hold(ctx, req.ID)
		case cellMissing:
			continue
		}
		next := &domain.CapacityError{
			Err:       domain.ErrInsufficientCapacity,
			SlotID:    s.SlotID,
			Date:      s.Start,
			Requested: req.Quantity,
			Remaining: res.remaining,
			Total:     res.total,
		}
		if res.code == cellImpossible {
			next.Err = domain.ErrImpossibleRequest
		}
		rejection = preferRejection(rejection, next)
	}

	if !found || rejection == nil {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrSlotNotFound, req.Item, req.Dates)
	}
	return nil, rejection
}

func (r *Redis) holdNights(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error) {
	dates := req.Dates.Dates()
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = nightCellKey(req.Item.ID, req.RoomTypeID, d)
	}

	cells, err := r.hashes(ctx, keys)
	if err != nil {
		return nil, err
	}
	nights := make([]domain.HeldNight, len(dates))
	for i, d := range dates {
		nights[i] = domain.HeldNight{Date: d}
		if raw, ok := cells[i]["price"]; ok {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("redis night %s price: %w", keys[i], err)
			}
			nights[i].Price = &price
		}
	}

	h := &domain.Hold{
		ID:         req.ID,
		Item:       req.Item,
		RoomTypeID: req.RoomTypeID,
		Dates:      req.Dates,
		Quantity:   req.Quantity,
		Nights:     nights,
		Status:     domain.HoldStatusHeld,
		CreatedAt:  r.clock.Now(),
	}
	res, err := r.runHold(ctx, h, keys)
	if err != nil {
		return nil, err
	}
	switch res.code {
	case holdCreated:
		return h, nil
	case holdExists:
		return r.hold(ctx, req.ID)
	}

	e := &domain.CapacityError{
		Err:        domain.ErrInsufficientCapacity,
		RoomTypeID: req.RoomTypeID,
		Date:       dates[res.cell],
		Requested:  req.Quantity,
		Remaining:  res.remaining,
		Total:      res.total,
	}
	if res.code == cellImpossible {
		e.Err = domain.ErrImpossibleRequest
	}
	return nil, e
}

type holdResult struct {
	code      int64
	cell      int
	remaining int
	total     int
}

func (r *Redis) runHold(ctx context.Context, h *domain.Hold, cellKeys []string) (holdResult, error) {
	payload, err := json.Marshal(h)
	if err != nil {
		return holdResult{}, fmt.Errorf("encode hold: %w", err)
	}

	keys := append([]string{holdKey(h.ID)}, cellKeys...)
	vals, err := holdScript.Run(ctx, r.client, keys, h.Quantity, string(domain.HoldStatusHeld), payload).Int64Slice()
	if err != nil {
		return holdResult{}, fmt.Errorf("redis hold script: %w", err)
	}

	res := holdResult{code: vals[0]}
	if len(vals) > 1 {
		res.cell = int(vals[1])
	}
	if len(vals) > 3 {
		res.remaining, res.total = int(vals[2]), int(vals[3])
	}
	return res, nil
}

func (r *Redis) hold(ctx context.Context, id string) (*domain.Hold, error) {
	vals, err := r.client.HMGet(ctx, holdKey(id), "status", "payload").Result()
	if err != nil {
		return nil, fmt.Errorf("redis get hold: %w", err)
	}
	status, _ := vals[0].(string)
	payload, _ := vals[1].(string)
	if payload == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrHoldNotFound, id)
	}

	var h domain.Hold
	if err := json.Unmarshal([]byte(payload), &h); err != nil {
		return nil, fmt.Errorf("decode hold %s: %w", id, err)
	}
	h.Status = domain.HoldStatus(status)
	return &h, nil
}

func (r *Redis) cellKeys(h *domain.Hold) []string {
	if h.SlotID != "" {
		return []string{slotKey(h.Item.ID, h.SlotID)}
	}
	dates := h.Dates.Dates()
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = nightCellKey(h.Item.ID, h.RoomTypeID, d)
	}
	return keys
}

func (r *Redis) Confirm(ctx context.Context, holdID string) error {
	res, err := confirmScript.Run(ctx, r.client, []string{holdKey(holdID)},
		string(domain.HoldStatusConfirmed), string(domain.HoldStatusReleased)).Int()
	if err != nil {
		return fmt.Errorf("redis confirm script: %w", err)
	}
	switch res {
	case -1:
		return fmt.Errorf("%w: %s", domain.ErrHoldNotFound, holdID)
	case -2:
		return fmt.Errorf("%w: %s", domain.ErrHoldReleased, holdID)
	}
	return nil
}

func (r *Redis) Release(ctx context.Context, holdID string) (bool, error) {
	h, err := r.hold(ctx, holdID)
	if err != nil {
		return false, err
	}

	keys := append([]string{holdKey(holdID)}, r.cellKeys(h)...)
	res, err := releaseScript.Run(ctx, r.client, keys, h.Quantity, string(domain.HoldStatusReleased)).Int()
	if err != nil {
		return false, fmt.Errorf("redis release script: %w", err)
	}
	if res == -1 {
		return false, fmt.Errorf("%w: %s", domain.ErrHoldNotFound, holdID)
	}
	return res == 1, nil
}

func (r *Redis) QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	if err := q.Dates.Validate(); err != nil {
		return nil, err
	}
	q.Dates = domain.NewDateRange(q.Dates.Start, q.Dates.End)
	need := q.Units()

	if q.Item.Kind == domain.ItemKindExcursion {
		slots, err := r.slots(ctx, q.Item.ID)
		if err != nil {
			return nil, err
		}
		var out []domain.AvailabilityWindow
		for _, s := range slots {
			if !s.Dates().Overlaps(q.Dates) || s.Remaining < need {
				continue
			}
			out = append(out, domain.AvailabilityWindow{
				SlotID:    s.SlotID,
				Dates:     s.Dates(),
				Total:     s.Total,
				Remaining: s.Remaining,
			})
		}
		return out, nil
	}

	roomTypes, err := r.client.SMembers(ctx, roomIndexPrefix+q.Item.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis room types: %w", err)
	}
	sort.Strings(roomTypes)

	var out []domain.AvailabilityWindow
	for _, id := range roomTypes {
		if q.RoomTypeID != "" && id != q.RoomTypeID {
			continue
		}
		nights, err := r.nights(ctx, q.Item.ID, id, q.Dates)
		if err != nil {
			return nil, err
		}
		if w, ok := roomWindow(id, q.Dates, nights, need); ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// slots returns an item's departures ordered by start date.
func (r *Redis) slots(ctx context.Context, itemID string) ([]domain.SlotCapacity, error) {
	ids, err := r.client.ZRange(ctx, slotIndexPrefix+itemID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis slot index: %w", err)
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = slotKey(itemID, id)
	}
	hashes, err := r.hashes(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SlotCapacity, 0, len(ids))
	for i, h := range hashes {
		if len(h) == 0 {
			continue
		}
		s := domain.SlotCapacity{ItemID: itemID, SlotID: ids[i]}
		if s.Total, err = strconv.Atoi(h["total"]); err != nil {
			return nil, fmt.Errorf("redis slot %s total: %w", ids[i], err)
		}
		if s.Remaining, err = strconv.Atoi(h["remaining"]); err != nil {
			return nil, fmt.Errorf("redis slot %s remaining: %w", ids[i], err)
		}
		if s.Start, err = time.Parse(domain.DateLayout, h["start"]); err != nil {
			return nil, fmt.Errorf("redis slot %s start: %w", ids[i], err)
		}
		if s.End, err = time.Parse(domain.DateLayout, h["end"]); err != nil {
			return nil, fmt.Errorf("redis slot %s end: %w", ids[i], err)
		}
		out = append(out, s)
	}
	return out, nil
}

// nights stops at the first missing night; callers treat a short result as
// unavailable.
func (r *Redis) nights(ctx context.Context, itemID, roomTypeID string, dates domain.DateRange) ([]domain.NightlyRoomCapacity, error) {
	days := dates.Dates()
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = nightCellKey(itemID, roomTypeID, d)
	}
	hashes, err := r.hashes(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NightlyRoomCapacity, 0, len(days))
	for i, h := range hashes {
		if len(h) == 0 {
			break
		}
		n := domain.NightlyRoomCapacity{ItemID: itemID, RoomTypeID: roomTypeID, Date: days[i]}
		if n.Total, err = strconv.Atoi(h["total"]); err != nil {
			return nil, fmt.Errorf("redis night %s total: %w", keys[i], err)
		}
		if n.Remaining, err = strconv.Atoi(h["remaining"]); err != nil {
			return nil, fmt.Errorf("redis night %s remaining: %w", keys[i], err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *Redis) hashes(ctx context.Context, keys []string) ([]map[string]string, error) {
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, k := range keys {
			cmds[i] = p.HGetAll(ctx, k)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis read cells: %w", err)
	}

	out := make([]map[string]string, len(keys))
	for i, c := range cmds {
		out[i] = c.Val()
	}
	return out, nil
}
