package ports

import (
	"context"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

type ListingCatalog interface {
	GetExcursion(ctx context.Context, id string) (*domain.Excursion, error)
	GetLodging(ctx context.Context, id string) (*domain.Lodging, error)
	SaveExcursion(ctx context.Context, e *domain.Excursion) error
	SaveLodging(ctx context.Context, l *domain.Lodging) error
	List(ctx context.Context, kind domain.ItemKind) ([]*domain.Listing, error)
}
