package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

type slotCell struct {
	mu  sync.Mutex
	cap domain.SlotCapacity
}

type nightCell struct {
	mu  sync.Mutex
	cap domain.NightlyRoomCapacity
}

type memoryHold struct {
	hold   domain.Hold
	slot   *slotCell
	nights []*nightCell
}

// Memory is an InventoryStore kept in process memory. Every cell has its own
// mutex; multi-night holds lock their cells in date order so concurrent
// requests for overlapping stays cannot deadlock.
type Memory struct {
	mu     sync.RWMutex
	slots  map[string][]*slotCell
	nights map[string]*nightCell

	holdsMu sync.Mutex
	holds   map[string]*memoryHold

	clock clock.Clock
}

func NewMemory(clk clock.Clock) *Memory {
	return &Memory{
		slots:  make(map[string][]*slotCell),
		nights: make(map[string]*nightCell),
		holds:  make(map[string]*memoryHold),
		clock:  clk,
	}
}

func nightKey(itemID, roomTypeID string, date time.Time) string {
	return itemID + "|" + roomTypeID + "|" + date.Format(domain.DateLayout)
}

// PutSlot adds a departure or overwrites its capacity.
func (m *Memory) PutSlot(_ context.Context, s domain.SlotCapacity) error {
	if err := domain.ValidateCapacity(s.Total, s.Remaining); err != nil {
		return err
	}
	s.Start, s.End = domain.Midnight(s.Start), domain.Midnight(s.End)
	if err := s.Dates().Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.slots[s.ItemID] {
		if c.cap.SlotID == s.SlotID {
			c.mu.Lock()
			c.cap = s
			c.mu.Unlock()
			return nil
		}
	}
	cells := append(m.slots[s.ItemID], &slotCell{cap: s})
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].cap.Start.Before(cells[j].cap.Start) })
	m.slots[s.ItemID] = cells
	return nil
}

// PutNight adds a room-type/date cell or overwrites its capacity and price.
func (m *Memory) PutNight(_ context.Context, n domain.NightlyRoomCapacity) error {
	if err := domain.ValidateCapacity(n.Total, n.Remaining); err != nil {
		return err
	}
	n.Date = domain.Midnight(n.Date)
	key := nightKey(n.ItemID, n.RoomTypeID, n.Date)

	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.nights[key]; ok {
		c.mu.Lock()
		c.cap = n
		c.mu.Unlock()
		return nil
	}
	m.nights[key] = &nightCell{cap: n}
	return nil
}

// Slot returns a snapshot of one departure.
func (m *Memory) Slot(itemID, slotID string) (domain.SlotCapacity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.slots[itemID] {
		if c.cap.SlotID == slotID {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.cap, true
		}
	}
	return domain.SlotCapacity{}, false
}

// Night returns a snapshot of one room-type/date cell.
func (m *Memory) Night(itemID, roomTypeID string, date time.Time) (domain.NightlyRoomCapacity, bool) {
	m.mu.RLock()
	c, ok := m.nights[nightKey(itemID, roomTypeID, domain.Midnight(date))]
	m.mu.RUnlock()
	if !ok {
		return domain.NightlyRoomCapacity{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cap, true
}

func (m *Memory) CheckAndHold(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Dates = domain.NewDateRange(req.Dates.Start, req.Dates.End)

	m.holdsMu.Lock()
	if existing, ok := m.holds[req.ID]; ok {
		h := existing.hold
		m.holdsMu.Unlock()
		return &h, nil
	}
	m.holdsMu.Unlock()

	var (
		held *memoryHold
		err  error
	)
	switch req.Item.Kind {
	case domain.ItemKindExcursion:
		held, err = m.holdSlot(req)
	default:
		held, err = m.holdNights(req)
	}
	if err != nil {
		return nil, err
	}

	m.holdsMu.Lock()
	if existing, ok := m.holds[req.ID]; ok {
		// a duplicate request with the same id won the race; undo ours
		h := existing.hold
		m.holdsMu.Unlock()
		m.restore(held)
		return &h, nil
	}
	m.holds[req.ID] = held
	m.holdsMu.Unlock()

	h := held.hold
	return &h, nil
}

func (m *Memory) holdSlot(req domain.HoldRequest) (*memoryHold, error) {
	m.mu.RLock()
	var candidates []*slotCell
	for _, c := range m.slots[req.Item.ID] {
		if req.SlotID != "" && c.cap.SlotID != req.SlotID {
			continue
		}
		if c.cap.Dates().Contains(req.Dates) {
			candidates = append(candidates, c)
		}
	}
	m.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrSlotNotFound, req.Item, req.Dates)
	}

	var rejection *domain.CapacityError
	for _, c := range candidates {
		c.mu.Lock()
		if c.cap.Remaining >= req.Quantity {
			c.cap.Remaining -= req.Quantity
			slot := c.cap
			c.mu.Unlock()
			return &memoryHold{
				hold: domain.Hold{
					ID:        req.ID,
					Item:      req.Item,
					SlotID:    slot.SlotID,
					Dates:     req.Dates,
					Quantity:  req.Quantity,
					Status:    domain.HoldStatusHeld,
					CreatedAt: m.clock.Now(),
				},
				slot: c,
			}, nil
		}
		rejection = preferRejection(rejection, slotRejection(c.cap, req.Quantity))
		c.mu.Unlock()
	}
	return nil, rejection
}

func slotRejection(s domain.SlotCapacity, qty int) *domain.CapacityError {
	e := &domain.CapacityError{
		Err:       domain.ErrInsufficientCapacity,
		SlotID:    s.SlotID,
		Date:      s.Start,
		Requested: qty,
		Remaining: s.Remaining,
		Total:     s.Total,
	}
	if s.Total < qty {
		e.Err = domain.ErrImpossibleRequest
	}
	return e
}

// preferRejection keeps an insufficient-capacity rejection over an
// impossible-request one: the request is only impossible if every candidate
// is too small.
func preferRejection(current, next *domain.CapacityError) *domain.CapacityError {
	if current == nil || current.Err == domain.ErrImpossibleRequest {
		return next
	}
	return current
}

func (m *Memory) holdNights(req domain.HoldRequest) (*memoryHold, error) {
	dates := req.Dates.Dates()
	cells := make([]*nightCell, 0, len(dates))

	m.mu.RLock()
	for _, d := range dates {
		c, ok := m.nights[nightKey(req.Item.ID, req.RoomTypeID, d)]
		if !ok {
			m.mu.RUnlock()
			return nil, &domain.CapacityError{
				Err:        domain.ErrInsufficientCapacity,
				RoomTypeID: req.RoomTypeID,
				Date:       d,
				Requested:  req.Quantity,
			}
		}
		cells = append(cells, c)
	}
	m.mu.RUnlock()

	lockNights(cells)
	defer unlockNights(cells)

	for _, c := range cells {
		if c.cap.Remaining < req.Quantity {
			e := &domain.CapacityError{
				Err:        domain.ErrInsufficientCapacity,
				RoomTypeID: req.RoomTypeID,
				Date:       c.cap.Date,
				Requested:  req.Quantity,
				Remaining:  c.cap.Remaining,
				Total:      c.cap.Total,
			}
			if c.cap.Total < req.Quantity {
				e.Err = domain.ErrImpossibleRequest
			}
			return nil, e
		}
	}

	nights := make([]domain.HeldNight, 0, len(cells))
	for _, c := range cells {
		c.cap.Remaining -= req.Quantity
		nights = append(nights, domain.HeldNight{Date: c.cap.Date, Price: c.cap.Price})
	}

	return &memoryHold{
		hold: domain.Hold{
			ID:         req.ID,
			Item:       req.Item,
			RoomTypeID: req.RoomTypeID,
			Dates:      req.Dates,
			Quantity:   req.Quantity,
			Nights:     nights,
			Status:     domain.HoldStatusHeld,
			CreatedAt:  m.clock.Now(),
		},
		nights: cells,
	}, nil
}

// lockNights expects cells in ascending date order.
func lockNights(cells []*nightCell) {
	for _, c := range cells {
		c.mu.Lock()
	}
}

func unlockNights(cells []*nightCell) {
	for i := len(cells) - 1; i >= 0; i-- {
		cells[i].mu.Unlock()
	}
}

func (m *Memory) Confirm(ctx context.Context, holdID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.holdsMu.Lock()
	defer m.holdsMu.Unlock()

	h, ok := m.holds[holdID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrHoldNotFound, holdID)
	}
	switch h.hold.Status {
	case domain.HoldStatusReleased:
		return fmt.Errorf("%w: %s", domain.ErrHoldReleased, holdID)
	case domain.HoldStatusHeld:
		h.hold.Status = domain.HoldStatusConfirmed
	}
	return nil
}

// Release returns the held capacity once. Later calls report false and leave
// capacity untouched.
func (m *Memory) Release(ctx context.Context, holdID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.holdsMu.Lock()
	h, ok := m.holds[holdID]
	if !ok {
		m.holdsMu.Unlock()
		return false, fmt.Errorf("%w: %s", domain.ErrHoldNotFound, holdID)
	}
	if h.hold.Status == domain.HoldStatusReleased {
		m.holdsMu.Unlock()
		return false, nil
	}
	h.hold.Status = domain.HoldStatusReleased
	m.holdsMu.Unlock()

	m.restore(h)
	return true, nil
}

func (m *Memory) restore(h *memoryHold) {
	qty := h.hold.Quantity
	if h.slot != nil {
		h.slot.mu.Lock()
		h.slot.cap.Remaining = min(h.slot.cap.Total, h.slot.cap.Remaining+qty)
		h.slot.mu.Unlock()
		return
	}
	lockNights(h.nights)
	for _, c := range h.nights {
		c.cap.Remaining = min(c.cap.Total, c.cap.Remaining+qty)
	}
	unlockNights(h.nights)
}

func (m *Memory) QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Dates.Validate(); err != nil {
		return nil, err
	}
	q.Dates = domain.NewDateRange(q.Dates.Start, q.Dates.End)
	need := q.Units()

	if q.Item.Kind == domain.ItemKindExcursion {
		return m.slotWindows(q, need), nil
	}
	return m.nightWindows(q, need), nil
}

func (m *Memory) slotWindows(q domain.AvailabilityQuery, need int) []domain.AvailabilityWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.AvailabilityWindow
	for _, c := range m.slots[q.Item.ID] {
		c.mu.Lock()
		s := c.cap
		c.mu.Unlock()
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
	return out
}

func (m *Memory) nightWindows(q domain.AvailabilityQuery, need int) []domain.AvailabilityWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	roomTypes := make(map[string]struct{})
	for _, c := range m.nights {
		if c.cap.ItemID == q.Item.ID && (q.RoomTypeID == "" || c.cap.RoomTypeID == q.RoomTypeID) {
			roomTypes[c.cap.RoomTypeID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(roomTypes))
	for id := range roomTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []domain.AvailabilityWindow
	for _, id := range ids {
		cells := make([]domain.NightlyRoomCapacity, 0, q.Dates.Nights())
		for _, d := range q.Dates.Dates() {
			c, ok := m.nights[nightKey(q.Item.ID, id, d)]
			if !ok {
				break
			}
			c.mu.Lock()
			cells = append(cells, c.cap)
			c.mu.Unlock()
		}
		if w, ok := roomWindow(id, q.Dates, cells, need); ok {
			out = append(out, w)
		}
	}
	return out
}

// roomWindow builds a window when every night of dates has a cell with at
// least need rooms left.
func roomWindow(roomTypeID string, dates domain.DateRange, cells []domain.NightlyRoomCapacity, need int) (domain.AvailabilityWindow, bool) {
	if len(cells) != dates.Nights() || len(cells) == 0 {
		return domain.AvailabilityWindow{}, false
	}
	w := domain.AvailabilityWindow{
		RoomTypeID: roomTypeID,
		Dates:      dates,
		Total:      cells[0].Total,
		Remaining:  cells[0].Remaining,
	}
	for _, c := range cells {
		w.Total = min(w.Total, c.Total)
		w.Remaining = min(w.Remaining, c.Remaining)
	}
	if w.Remaining < need {
		return domain.AvailabilityWindow{}, false
	}
	return w, true
}
