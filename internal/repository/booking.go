package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, booking_number, confirmation_code, item_kind, item_id, user_id, telegram_chat_id,
	start_date, end_date, COALESCE(slot_id, ''), COALESCE(room_type_id, ''), rooms, party, extras,
	hold_id, hold_released, pricing, status, cancellation,
	created_at, updated_at, confirmed_at, cancelled_at, completed_at, no_show_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts a booking with its initial history. A clash on the booking
// number or confirmation code is reported as domain.ErrReferenceCollision.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	slotID, roomTypeID, rooms, party := reservationColumns(b.Reservation)
	partyJSON, err := json.Marshal(party)
	if err != nil {
		return fmt.Errorf("encode party: %w", err)
	}
	extras := b.Extras
	if extras == nil {
		extras = []domain.ExtraSelection{}
	}
	extrasJSON, err := json.Marshal(extras)
	if err != nil {
		return fmt.Errorf("encode extras: %w", err)
	}
	pricingJSON, err := json.Marshal(b.Pricing)
	if err != nil {
		return fmt.Errorf("encode pricing: %w", err)
	}

	query := `INSERT INTO bookings (id, booking_number, confirmation_code, item_kind, item_id, user_id, telegram_chat_id,
			      start_date, end_date, slot_id, room_type_id, rooms, party, extras, hold_id, hold_released,
			      pricing, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, $15, $16,
			      $17, $18, $19, $20)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.BookingNumber, b.ConfirmationCode, b.Item.Kind, b.Item.ID, b.Requester.UserID,
		nullInt64(b.Requester.TelegramChatID), pgDate(b.Dates.Start), pgDate(b.Dates.End),
		slotID, roomTypeID, rooms, string(partyJSON), string(extrasJSON), b.HoldID, b.HoldReleased,
		string(pricingJSON), b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if pgErr.Constraint == "bookings_hold_id_key" {
				return fmt.Errorf("insert booking: hold %s already booked: %w", b.HoldID, domain.ErrConcurrencyConflict)
			}
			return fmt.Errorf("insert booking: %w", domain.ErrReferenceCollision)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	for _, change := range b.StatusHistory {
		if err = insertHistory(ctx, tx, b.ID, change); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertHistory(ctx context.Context, tx *sql.Tx, bookingID string, c domain.StatusChange) error {
	query := `INSERT INTO booking_status_history (booking_id, from_status, to_status, actor_id, actor_role, reason, changed_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query,
		bookingID, c.From, c.To, c.Actor.ID, c.Actor.Role, c.Reason, c.At,
	); err != nil {
		return fmt.Errorf("insert status history: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	if err = r.loadHistory(ctx, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByHoldID finds the booking created for a capacity hold. The hold id is
// the request's correlation id, so this is how a retried request finds its
// earlier result.
func (r *BookingRepository) GetByHoldID(ctx context.Context, holdID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hold_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, holdID)
	if err != nil {
		return nil, fmt.Errorf("get booking by hold: %w", err)
	}
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	if err = r.loadHistory(ctx, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, "list bookings by user", query, userID)
}

// ListPendingOlderThan returns bookings still pending that were created
// before cutoff, oldest first.
func (r *BookingRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND created_at < $2
			  ORDER BY created_at
			  LIMIT $3`
	return r.list(ctx, "list abandoned bookings", query, domain.BookingStatusPending, cutoff, limit)
}

// ListUnreleasedHolds returns cancelled bookings whose capacity was never
// handed back.
func (r *BookingRepository) ListUnreleasedHolds(ctx context.Context, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND hold_released = FALSE
			  ORDER BY updated_at
			  LIMIT $2`
	return r.list(ctx, "list unreleased holds", query, domain.BookingStatusCancelled, limit)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = r.loadHistory(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *BookingRepository) loadHistory(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Booking, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query := `SELECT booking_id, from_status, to_status, actor_id, actor_role, reason, changed_at
			  FROM booking_status_history
			  WHERE booking_id = ANY($1)
			  ORDER BY booking_id, id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load status history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID string
			c         domain.StatusChange
		)
		if err = rows.Scan(&bookingID, &c.From, &c.To, &c.Actor.ID, &c.Actor.Role, &c.Reason, &c.At); err != nil {
			return fmt.Errorf("scan status history: %w", err)
		}
		if b, ok := byID[bookingID]; ok {
			b.StatusHistory = append(b.StatusHistory, c)
		}
	}
	return rows.Err()
}

// UpdateStatus persists a transition. The row is only written while it is
// still in status from; otherwise the call fails with
// domain.ErrConcurrencyConflict and nothing changes.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus, change domain.StatusChange) error {
	var cancellation any
	if b.Cancellation != nil {
		raw, err := json.Marshal(b.Cancellation)
		if err != nil {
			return fmt.Errorf("encode cancellation: %w", err)
		}
		cancellation = string(raw)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, cancellation = $4, hold_released = $5, updated_at = $6,
			      confirmed_at = $7, cancelled_at = $8, completed_at = $9, no_show_at = $10
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query,
		b.ID, from, b.Status, cancellation, b.HoldReleased, b.UpdatedAt,
		nullTime(b.ConfirmedAt), nullTime(b.CancelledAt), nullTime(b.CompletedAt), nullTime(b.NoShowAt),
	)
	if err != nil {
		return classify("update booking status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		var exists bool
		if err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, b.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("booking %s left %s: %w", b.ID, from, domain.ErrConcurrencyConflict)
	}

	if err = insertHistory(ctx, tx, b.ID, change); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return classify("commit status", err)
	}
	return nil
}

func (r *BookingRepository) MarkHoldReleased(ctx context.Context, id string) error {
	query := `UPDATE bookings SET hold_released = TRUE WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("mark hold released: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark hold released rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) BookingNumberExists(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_number = $1)`, number)
}

func (r *BookingRepository) ConfirmationCodeExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE confirmation_code = $1)`, code)
}

func (r *BookingRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return false, fmt.Errorf("check reference: %w", err)
	}
	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan reference check: %w", err)
	}
	return ok, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                                  domain.Booking
		chatID                             sql.NullInt64
		slotID, roomTypeID                 string
		rooms                              int
		party, extras, pricing             []byte
		cancellation                       []byte
		confirmed, cancelled, done, noShow sql.NullTime
	)
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.ConfirmationCode, &b.Item.Kind, &b.Item.ID, &b.Requester.UserID, &chatID,
		&b.Dates.Start, &b.Dates.End, &slotID, &roomTypeID, &rooms, &party, &extras,
		&b.HoldID, &b.HoldReleased, &pricing, &b.Status, &cancellation,
		&b.CreatedAt, &b.UpdatedAt, &confirmed, &cancelled, &done, &noShow,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	b.Dates = domain.NewDateRange(b.Dates.Start, b.Dates.End)
	if chatID.Valid {
		id := chatID.Int64
		b.Requester.TelegramChatID = &id
	}

	var p domain.Party
	if err = json.Unmarshal(party, &p); err != nil {
		return nil, fmt.Errorf("decode party: %w", err)
	}
	if b.Item.Kind == domain.ItemKindLodging {
		b.Reservation = domain.LodgingReservation{RoomTypeID: roomTypeID, Rooms: rooms, Party: p}
	} else {
		b.Reservation = domain.ExcursionReservation{SlotID: slotID, Party: p}
	}

	if err = json.Unmarshal(extras, &b.Extras); err != nil {
		return nil, fmt.Errorf("decode extras: %w", err)
	}
	if err = json.Unmarshal(pricing, &b.Pricing); err != nil {
		return nil, fmt.Errorf("decode pricing: %w", err)
	}
	if len(cancellation) > 0 {
		b.Cancellation = &domain.CancellationRecord{}
		if err = json.Unmarshal(cancellation, b.Cancellation); err != nil {
			return nil, fmt.Errorf("decode cancellation: %w", err)
		}
	}

	b.ConfirmedAt = timePtr(confirmed)
	b.CancelledAt = timePtr(cancelled)
	b.CompletedAt = timePtr(done)
	b.NoShowAt = timePtr(noShow)
	return &b, nil
}

func reservationColumns(res domain.Reservation) (slotID, roomTypeID string, rooms int, party domain.Party) {
	switch r := res.(type) {
	case domain.ExcursionReservation:
		return r.SlotID, "", 0, r.Party
	case domain.LodgingReservation:
		return "", r.RoomTypeID, r.Rooms, r.Party
	}
	return "", "", 0, domain.Party{}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
