package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/cancellation"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ListingRepository stores excursions and lodgings in one table. Shared
// listing fields are columns; prices, extras, room types and the
// cancellation policy live in the details document.
type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ListingRepository) SaveExcursion(ctx context.Context, e *domain.Excursion) error {
	return r.save(ctx, domain.ItemKindExcursion, &e.Listing, e)
}

func (r *ListingRepository) SaveLodging(ctx context.Context, l *domain.Lodging) error {
	return r.save(ctx, domain.ItemKindLodging, &l.Listing, l)
}

func (r *ListingRepository) save(ctx context.Context, kind domain.ItemKind, l *domain.Listing, details any) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	query := `INSERT INTO listings (id, kind, owner_id, title, status, currency, details, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			  ON CONFLICT (id) DO UPDATE
			  SET owner_id = EXCLUDED.owner_id, title = EXCLUDED.title, status = EXCLUDED.status,
			      currency = EXCLUDED.currency, details = EXCLUDED.details, updated_at = EXCLUDED.updated_at
			  WHERE listings.kind = EXCLUDED.kind`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		l.ID, kind, l.OwnerID, l.Title, l.Status, l.Currency, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert listing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: listing %s already exists with another kind", domain.ErrValidation, l.ID)
	}
	return nil
}

func (r *ListingRepository) GetExcursion(ctx context.Context, id string) (*domain.Excursion, error) {
	var e domain.Excursion
	if err := r.get(ctx, domain.ItemKindExcursion, id, &e.Listing, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ListingRepository) GetLodging(ctx context.Context, id string) (*domain.Lodging, error) {
	var l domain.Lodging
	if err := r.get(ctx, domain.ItemKindLodging, id, &l.Listing, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// get decodes the details document into out and then overwrites the shared
// fields from their columns, which are authoritative.
func (r *ListingRepository) get(ctx context.Context, kind domain.ItemKind, id string, l *domain.Listing, out any) error {
	query := `SELECT id, owner_id, title, status, currency, details
			  FROM listings
			  WHERE id = $1 AND kind = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, kind)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	var (
		cols    domain.Listing
		details []byte
	)
	if err = row.Scan(&cols.ID, &cols.OwnerID, &cols.Title, &cols.Status, &cols.Currency, &details); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s %s", domain.ErrListingNotFound, kind, id)
		}
		return fmt.Errorf("scan listing: %w", err)
	}
	if err = json.Unmarshal(details, out); err != nil {
		return fmt.Errorf("decode listing %s: %w", id, err)
	}

	l.ID, l.OwnerID, l.Title, l.Status, l.Currency = cols.ID, cols.OwnerID, cols.Title, cols.Status, cols.Currency
	if err = cancellation.Validate(l.Policy); err != nil {
		return fmt.Errorf("listing %s: %w", id, err)
	}
	return nil
}

// List returns the shared fields of every listing of one kind.
func (r *ListingRepository) List(ctx context.Context, kind domain.ItemKind) ([]*domain.Listing, error) {
	query := `SELECT id, owner_id, title, status, currency
			  FROM listings
			  WHERE kind = $1
			  ORDER BY title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err = rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Status, &l.Currency); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
