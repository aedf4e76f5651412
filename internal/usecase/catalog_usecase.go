package usecase

import (
	"context"
	"io"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// Photo is an uploaded image.
type Photo struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// CatalogUsecase manages one catalog kind.
type CatalogUsecase[T entity.Cataloged] interface {
	// Create stores a new item owned by the calling admin.
	Create(ctx context.Context, caller Caller, item T) (T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, params listing.Params) (listing.Page[T], error)
	Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error

	// UploadPhoto stores the image and points the item's photo at it.
	UploadPhoto(ctx context.Context, id uuid.UUID, photo Photo) (T, error)
}

type (
	CreamUsecase   = CatalogUsecase[*entity.Cream]
	ToppingUsecase = CatalogUsecase[*entity.Topping]
	ProductUsecase = CatalogUsecase[*entity.Product]
)
