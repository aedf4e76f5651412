package impl

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements CatalogUsecase for one catalog kind.
type catalogService[T entity.Cataloged] struct {
	repo     repository.CatalogRepository[T]
	userRepo repository.UserRepository
	lists    *ListCache
	photos   service.PhotoStorage
	schema   *listing.Schema
	logger   *slog.Logger
}

// CatalogServiceParams holds the dependencies shared by the catalog services.
type CatalogServiceParams struct {
	fx.In

	CreamRepo   repository.CreamRepository
	ToppingRepo repository.ToppingRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Lists       *ListCache
	Photos      service.PhotoStorage
	Logger      *slog.Logger
}

// NewCreamService is the constructor for the cream catalog.
func NewCreamService(params CatalogServiceParams) usecase.CreamUsecase {
	return newCatalogService(params, params.CreamRepo, creamSchema)
}

// NewToppingService is the constructor for the topping catalog.
func NewToppingService(params CatalogServiceParams) usecase.ToppingUsecase {
	return newCatalogService(params, params.ToppingRepo, toppingSchema)
}

// NewProductService is the constructor for the product catalog.
func NewProductService(params CatalogServiceParams) usecase.ProductUsecase {
	return newCatalogService(params, params.ProductRepo, productSchema)
}

func newCatalogService[T entity.Cataloged](
	params CatalogServiceParams,
	repo repository.CatalogRepository[T],
	schema *listing.Schema,
) *catalogService[T] {
	return &catalogService[T]{
		repo:     repo,
		userRepo: params.UserRepo,
		lists:    params.Lists,
		photos:   params.Photos,
		schema:   schema,
		logger:   params.Logger,
	}
}

func (srv *catalogService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("resource", srv.schema.Resource))
}

// Create stores the item with the calling admin as its owner.
func (srv *catalogService[T]) Create(ctx context.Context, caller usecase.Caller, item T) (T, error) {
	var zero T

	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return zero, errors.Wrap(err, "failed to find caller")
	}
	if user.AdminID == nil {
		return zero, domainerrors.ErrForbidden
	}

	fields := item.Item()
	fields.ID = uuid.Nil
	fields.AdminID = *user.AdminID

	if err := srv.repo.Create(ctx, item); err != nil {
		return zero, err
	}
	srv.log(ctx).Info("Catalog item created", slog.Any("id", fields.ID), slog.String("name", fields.Name))

	return item, nil
}

func (srv *catalogService[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return srv.repo.FindByID(ctx, id)
}

func (srv *catalogService[T]) List(ctx context.Context, params listing.Params) (listing.Page[T], error) {
	return cachedList(ctx, srv.lists, srv.schema, params, srv.repo.List)
}

func (srv *catalogService[T]) Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (T, error) {
	var zero T
	if patch.IsEmpty() {
		return zero, domainerrors.ErrEmptyPatch
	}

	item, err := srv.repo.Update(ctx, id, patch)
	if err != nil {
		return zero, notFoundAsBadRequest(err)
	}

	return item, nil
}

func (srv *catalogService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return notFoundAsBadRequest(err)
	}
	srv.log(ctx).Info("Catalog item deleted", slog.Any("id", id))

	return nil
}

func (srv *catalogService[T]) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return domainerrors.ErrMissingIDs
	}

	deleted, err := srv.repo.DeleteMany(ctx, ids)
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Catalog items deleted", slog.Int("requested", len(ids)), slog.Int64("deleted", deleted))

	return nil
}

// UploadPhoto stores the image under <resource>/<id>/ and links it.
func (srv *catalogService[T]) UploadPhoto(ctx context.Context, id uuid.UUID, photo usecase.Photo) (T, error) {
	var zero T

	if _, err := srv.repo.FindByID(ctx, id); err != nil {
		return zero, notFoundAsBadRequest(err)
	}

	ext := strings.ToLower(path.Ext(photo.Filename))
	contentType := photo.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			contentType = byExt
		}
	}
	if !strings.HasPrefix(contentType, "image/") {
		return zero, domainerrors.ErrValidationFailed.WithMessage("photo must be an image")
	}

	key := srv.schema.Resource + "/" + id.String() + "/" + uuid.NewString() + ext
	url, err := srv.photos.Put(ctx, key, contentType, photo.Body)
	if err != nil {
		srv.log(ctx).Error("Photo upload failed", slog.Any("id", id), slog.Any("error", err))

		return zero, domainerrors.ErrPhotoUploadFailed.WrapMessage(err.Error())
	}

	item, err := srv.repo.Update(ctx, id, entity.CatalogPatch{Photo: &url})
	if err != nil {
		if delErr := srv.photos.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Orphaned photo left in storage", slog.String("key", key), slog.Any("error", delErr))
		}

		return zero, notFoundAsBadRequest(err)
	}

	return item, nil
}
