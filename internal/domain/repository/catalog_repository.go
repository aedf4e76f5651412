package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// CatalogRepository is the persistence contract shared by creams,
// toppings and products. A duplicate name returns domainerrors.ErrNameTaken.
type CatalogRepository[T entity.Cataloged] interface {
	Create(ctx context.Context, item T) error
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	// FindByIDs returns the matching items in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error)
	List(ctx context.Context, q listing.Query) ([]T, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type (
	CreamRepository   = CatalogRepository[*entity.Cream]
	ToppingRepository = CatalogRepository[*entity.Topping]
	ProductRepository = CatalogRepository[*entity.Product]
)
