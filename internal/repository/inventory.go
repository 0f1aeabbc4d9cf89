package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// InventoryRepository keeps capacity in excursion_slots and room_nights.
// Every decrement is a conditional UPDATE inside a transaction; lodging
// nights are locked in date order before they are touched.
type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	clock    clock.Clock
}

func NewInventoryRepo(db *dbpg.DB, clk clock.Clock) *InventoryRepository {
	return &InventoryRepository{
		db:       db,
		strategy: defaultStrategy(),
		clock:    clk,
	}
}

func (r *InventoryRepository) PutSlot(ctx context.Context, s domain.SlotCapacity) error {
	if err := domain.ValidateCapacity(s.Total, s.Remaining); err != nil {
		return err
	}
	if err := s.Dates().Validate(); err != nil {
		return err
	}

	query := `INSERT INTO excursion_slots (item_id, slot_id, start_date, end_date, total, remaining)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (item_id, slot_id) DO UPDATE
			  SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			      total = EXCLUDED.total, remaining = EXCLUDED.remaining`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		s.ItemID, s.SlotID, pgDate(s.Start), pgDate(s.End), s.Total, s.Remaining)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

func (r *InventoryRepository) PutNight(ctx context.Context, n domain.NightlyRoomCapacity) error {
	if err := domain.ValidateCapacity(n.Total, n.Remaining); err != nil {
		return err
	}

	query := `INSERT INTO room_nights (item_id, room_type_id, night, total, remaining, price)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (item_id, room_type_id, night) DO UPDATE
			  SET total = EXCLUDED.total, remaining = EXCLUDED.remaining, price = EXCLUDED.price`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		n.ItemID, n.RoomTypeID, pgDate(n.Date), n.Total, n.Remaining, decimal.NullDecimal{
			Decimal: derefDecimal(n.Price),
			Valid:   n.Price != nil,
		})
	if err != nil {
		return fmt.Errorf("upsert room night: %w", err)
	}
	return nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (r *InventoryRepository) CheckAndHold(ctx context.Context, req domain.HoldRequest) (*domain.Hold, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Dates = domain.NewDateRange(req.Dates.Start, req.Dates.End)

	existing, err := r.getHold(ctx, req.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrHoldNotFound) {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	h := &domain.Hold{
		ID:         req.ID,
		Item:       req.Item,
		RoomTypeID: req.RoomTypeID,
		Dates:      req.Dates,
		Quantity:   req.Quantity,
		Status:     domain.HoldStatusHeld,
		CreatedAt:  r.clock.Now(),
	}
	if req.Item.Kind == domain.ItemKindExcursion {
		h.SlotID, err = r.takeSlot(ctx, tx, req)
	} else {
		h.Nights, err = r.takeNights(ctx, tx, req)
	}
	if err != nil {
		return nil, err
	}

	nights, err := json.Marshal(h.Nights)
	if err != nil {
		return nil, fmt.Errorf("encode nights: %w", err)
	}
	query := `INSERT INTO inventory_holds
			  (id, item_kind, item_id, slot_id, room_type_id, start_date, end_date, quantity, nights, status, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $11)`
	if _, err = tx.ExecContext(ctx, query,
		h.ID, h.Item.Kind, h.Item.ID, h.SlotID, h.RoomTypeID,
		pgDate(h.Dates.Start), pgDate(h.Dates.End), h.Quantity, string(nights), h.Status, h.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			// a duplicate request committed first; ours rolls back
			_ = tx.Rollback()
			return r.getHold(ctx, req.ID)
		}
		return nil, classify("insert hold", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, classify("commit hold", err)
	}
	return h, nil
}

// takeSlot decrements the first departure, by start date, that covers the
// request and still has room.
func (r *InventoryRepository) takeSlot(ctx context.Context, tx *sql.Tx, req domain.HoldRequest) (string, error) {
	query := `SELECT slot_id, start_date, total, remaining
			  FROM excursion_slots
			  WHERE item_id = $1 AND start_date <= $2 AND end_date >= $3
			    AND ($4 = '' OR slot_id = $4)
			  ORDER BY start_date, slot_id`
	rows, err := tx.QueryContext(ctx, query, req.Item.ID, pgDate(req.Dates.Start), pgDate(req.Dates.End), req.SlotID)
	if err != nil {
		return "", classify("select slots", err)
	}
	var candidates []domain.SlotCapacity
	for rows.Next() {
		var s domain.SlotCapacity
		if err = rows.Scan(&s.SlotID, &s.Start, &s.Total, &s.Remaining); err != nil {
			rows.Close()
			return "", fmt.Errorf("scan slot: %w", err)
		}
		candidates = append(candidates, s)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return "", classify("select slots", err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s %s", domain.ErrSlotNotFound, req.Item, req.Dates)
	}

	update := `UPDATE excursion_slots
			   SET remaining = remaining - $3
			   WHERE item_id = $1 AND slot_id = $2 AND remaining >= $3
			   RETURNING remaining`
	var rejection *domain.CapacityError
	for _, s := range candidates {
		var left int
		err = tx.QueryRowContext(ctx, update, req.Item.ID, s.SlotID, req.Quantity).Scan(&left)
		if err == nil {
			return s.SlotID, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return "", classify("decrement slot", err)
		}

		next := &domain.CapacityError{
			Err:       domain.ErrInsufficientCapacity,
			SlotID:    s.SlotID,
			Date:      domain.Midnight(s.Start),
			Requested: req.Quantity,
			Remaining: s.Remaining,
			Total:     s.Total,
		}
		if s.Total < req.Quantity {
			next.Err = domain.ErrImpossibleRequest
		}
		if rejection == nil || rejection.Err == domain.ErrImpossibleRequest {
			rejection = next
		}
	}
	return "", rejection
}

// takeNights locks every night of the stay in date order, checks all of them
// and only then decrements.
func (r *InventoryRepository) takeNights(ctx context.Context, tx *sql.Tx, req domain.HoldRequest) ([]domain.HeldNight, error) {
	lock := `SELECT night, total, remaining, price
			 FROM room_nights
			 WHERE item_id = $1 AND room_type_id = $2 AND night >= $3 AND night < $4
			 ORDER BY night
			 FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lock, req.Item.ID, req.RoomTypeID, pgDate(req.Dates.Start), pgDate(req.Dates.End))
	if err != nil {
		return nil, classify("lock room nights", err)
	}
	cells := make(map[time.Time]domain.NightlyRoomCapacity)
	for rows.Next() {
		var (
			n     domain.NightlyRoomCapacity
			price decimal.NullDecimal
		)
		if err = rows.Scan(&n.Date, &n.Total, &n.Remaining, &price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan room night: %w", err)
		}
		n.Date = domain.Midnight(n.Date)
		if price.Valid {
			p := price.Decimal
			n.Price = &p
		}
		cells[n.Date] = n
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, classify("lock room nights", err)
	}

	nights := make([]domain.HeldNight, 0, req.Dates.Nights())
	for _, d := range req.Dates.Dates() {
		n, ok := cells[d]
		if !ok || n.Remaining < req.Quantity {
			e := &domain.CapacityError{
				Err:        domain.ErrInsufficientCapacity,
				RoomTypeID: req.RoomTypeID,
				Date:       d,
				Requested:  req.Quantity,
				Remaining:  n.Remaining,
				Total:      n.Total,
			}
			if ok && n.Total < req.Quantity {
				e.Err = domain.ErrImpossibleRequest
			}
			return nil, e
		}
		nights = append(nights, domain.HeldNight{Date: d, Price: n.Price})
	}

	update := `UPDATE room_nights
			   SET remaining = remaining - $3
			   WHERE item_id = $1 AND room_type_id = $2 AND night >= $4 AND night < $5
			     AND remaining >= $3`
	res, err := tx.ExecContext(ctx, update, req.Item.ID, req.RoomTypeID, req.Quantity,
		pgDate(req.Dates.Start), pgDate(req.Dates.End))
	if err != nil {
		return nil, classify("decrement room nights", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("room nights rows affected: %w", err)
	}
	if int(n) != len(nights) {
		return nil, fmt.Errorf("decrement room nights: %w", domain.ErrConcurrencyConflict)
	}
	return nights, nil
}

func (r *InventoryRepository) getHold(ctx context.Context, id string) (*domain.Hold, error) {
	query := `SELECT id, item_kind, item_id, COALESCE(slot_id, ''), COALESCE(room_type_id, ''),
			         start_date, end_date, quantity, nights, status, created_at
			  FROM inventory_holds
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	var (
		h      domain.Hold
		nights []byte
	)
	if err = row.Scan(
		&h.ID, &h.Item.Kind, &h.Item.ID, &h.SlotID, &h.RoomTypeID,
		&h.Dates.Start, &h.Dates.End, &h.Quantity, &nights, &h.Status, &h.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrHoldNotFound, id)
		}
		return nil, fmt.Errorf("scan hold: %w", err)
	}
	h.Dates = domain.NewDateRange(h.Dates.Start, h.Dates.End)
	if err = json.Unmarshal(nights, &h.Nights); err != nil {
		return nil, fmt.Errorf("decode hold nights: %w", err)
	}
	return &h, nil
}

func (r *InventoryRepository) Confirm(ctx context.Context, holdID string) error {
	query := `UPDATE inventory_holds SET status = $3, updated_at = $4
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		holdID, domain.HoldStatusHeld, domain.HoldStatusConfirmed, r.clock.Now())
	if err != nil {
		return fmt.Errorf("confirm hold: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm hold rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	h, err := r.getHold(ctx, holdID)
	if err != nil {
		return err
	}
	if h.Status == domain.HoldStatusReleased {
		return fmt.Errorf("%w: %s", domain.ErrHoldReleased, holdID)
	}
	return nil
}

// Release flips the hold to released and credits its units back in the same
// transaction. The status guard makes a second call a no-op.
func (r *InventoryRepository) Release(ctx context.Context, holdID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE inventory_holds SET status = $2, updated_at = $3
			  WHERE id = $1 AND status <> $2
			  RETURNING item_kind, item_id, COALESCE(slot_id, ''), COALESCE(room_type_id, ''),
			            start_date, end_date, quantity`
	var h domain.Hold
	err = tx.QueryRowContext(ctx, query, holdID, domain.HoldStatusReleased, r.clock.Now()).Scan(
		&h.Item.Kind, &h.Item.ID, &h.SlotID, &h.RoomTypeID, &h.Dates.Start, &h.Dates.End, &h.Quantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		if _, err = r.getHold(ctx, holdID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, classify("release hold", err)
	}

	if h.Item.Kind == domain.ItemKindExcursion {
		_, err = tx.ExecContext(ctx, `UPDATE excursion_slots
			SET remaining = LEAST(total, remaining + $3)
			WHERE item_id = $1 AND slot_id = $2`,
			h.Item.ID, h.SlotID, h.Quantity)
	} else {
		_, err = tx.ExecContext(ctx, `UPDATE room_nights
			SET remaining = LEAST(total, remaining + $3)
			WHERE (item_id, room_type_id, night) IN (
				SELECT item_id, room_type_id, night FROM room_nights
				WHERE item_id = $1 AND room_type_id = $2 AND night >= $4 AND night < $5
				ORDER BY night
				FOR UPDATE)`,
			h.Item.ID, h.RoomTypeID, h.Quantity, pgDate(h.Dates.Start), pgDate(h.Dates.End))
	}
	if err != nil {
		return false, classify("restore capacity", err)
	}

	if err = tx.Commit(); err != nil {
		return false, classify("commit release", err)
	}
	return true, nil
}

func (r *InventoryRepository) QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	if err := q.Dates.Validate(); err != nil {
		return nil, err
	}
	if q.Item.Kind == domain.ItemKindExcursion {
		return r.slotWindows(ctx, q)
	}
	return r.roomWindows(ctx, q)
}

func (r *InventoryRepository) slotWindows(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	query := `SELECT slot_id, start_date, end_date, total, remaining
			  FROM excursion_slots
			  WHERE item_id = $1 AND start_date < $3 AND end_date > $2 AND remaining >= $4
			  ORDER BY start_date, slot_id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		q.Item.ID, pgDate(q.Dates.Start), pgDate(q.Dates.End), q.Units())
	if err != nil {
		return nil, fmt.Errorf("query slot availability: %w", err)
	}
	defer rows.Close()

	var res []domain.AvailabilityWindow
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err = rows.Scan(&w.SlotID, &w.Dates.Start, &w.Dates.End, &w.Total, &w.Remaining); err != nil {
			return nil, fmt.Errorf("scan slot availability: %w", err)
		}
		w.Dates = domain.NewDateRange(w.Dates.Start, w.Dates.End)
		res = append(res, w)
	}
	return res, rows.Err()
}

func (r *InventoryRepository) roomWindows(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	dates := domain.NewDateRange(q.Dates.Start, q.Dates.End)
	query := `SELECT room_type_id, MIN(total), MIN(remaining)
			  FROM room_nights
			  WHERE item_id = $1 AND night >= $2 AND night < $3
			    AND ($4 = '' OR room_type_id = $4)
			  GROUP BY room_type_id
			  HAVING COUNT(*) = $5 AND MIN(remaining) >= $6
			  ORDER BY room_type_id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		q.Item.ID, pgDate(dates.Start), pgDate(dates.End), q.RoomTypeID, dates.Nights(), q.Units())
	if err != nil {
		return nil, fmt.Errorf("query room availability: %w", err)
	}
	defer rows.Close()

	var res []domain.AvailabilityWindow
	for rows.Next() {
		w := domain.AvailabilityWindow{Dates: dates}
		if err = rows.Scan(&w.RoomTypeID, &w.Total, &w.Remaining); err != nil {
			return nil, fmt.Errorf("scan room availability: %w", err)
		}
		res = append(res, w)
	}
	return res, rows.Err()
}
