package postgres

import (
	"context"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"
	"scoop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// catalogRepository is shared by the cream, topping and product tables.
type catalogRepository[E entity.Cataloged, M any] struct {
	db         *gorm.DB
	concurrent bool
	resource   string
	toDomain   func(*M) E
	fromDomain func(E) *M
	// extraColumns maps the kind-specific patch fields to columns.
	extraColumns func(entity.CatalogPatch, map[string]any)
}

// NewCreamRepository is the constructor for the creams table.
func NewCreamRepository(db *gorm.DB) repository.CreamRepository {
	return newCreamRepository(db, true)
}

func newCreamRepository(db *gorm.DB, concurrent bool) repository.CreamRepository {
	return &catalogRepository[*entity.Cream, model.CreamModel]{
		db:           db,
		concurrent:   concurrent,
		resource:     "cream",
		toDomain:     toCreamDomain,
		fromDomain:   fromCreamDomain,
		extraColumns: amountColumns,
	}
}

// NewToppingRepository is the constructor for the toppings table.
func NewToppingRepository(db *gorm.DB) repository.ToppingRepository {
	return newToppingRepository(db, true)
}

func newToppingRepository(db *gorm.DB, concurrent bool) repository.ToppingRepository {
	return &catalogRepository[*entity.Topping, model.ToppingModel]{
		db:           db,
		concurrent:   concurrent,
		resource:     "topping",
		toDomain:     toToppingDomain,
		fromDomain:   fromToppingDomain,
		extraColumns: amountColumns,
	}
}

// NewProductRepository is the constructor for the products table.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return newProductRepository(db, true)
}

func newProductRepository(db *gorm.DB, concurrent bool) repository.ProductRepository {
	return &catalogRepository[*entity.Product, model.ProductModel]{
		db:         db,
		concurrent: concurrent,
		resource:   "product",
		toDomain:   toProductDomain,
		fromDomain: fromProductDomain,
		extraColumns: func(patch entity.CatalogPatch, updates map[string]any) {
			if patch.Size != nil {
				updates["size"] = *patch.Size
			}
			if patch.Description != nil {
				updates["description"] = *patch.Description
			}
		},
	}
}

func amountColumns(patch entity.CatalogPatch, updates map[string]any) {
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
}

func (repo *catalogRepository[E, M]) notFound() error {
	return domainerrors.ErrNotFound.WithMessage(repo.resource + " not found")
}

func (repo *catalogRepository[E, M]) writeError(err error, action string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrNameTaken.WrapMessage(repo.resource + " name already exists")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid " + repo.resource + " data")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to "+action+" "+repo.resource)
}

// Create persists the item and copies back its generated columns.
func (repo *catalogRepository[E, M]) Create(ctx context.Context, item E) error {
	row := repo.fromDomain(item)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return repo.writeError(err, "create")
	}

	*item.Item() = *repo.toDomain(row).Item()

	return nil
}

func (repo *catalogRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (E, error) {
	var (
		zero E
		row  M
	)
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if isRecordNotFound(err) {
			return zero, repo.notFound()
		}

		return zero, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.resource)
	}

	return repo.toDomain(&row), nil
}

func (repo *catalogRepository[E, M]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]E, error) {
	if len(ids) == 0 {
		return []E{}, nil
	}

	var rows []M
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.resource+"s")
	}

	return mapSlice(rows, repo.toDomain), nil
}

func (repo *catalogRepository[E, M]) List(ctx context.Context, q listing.Query) ([]E, int64, error) {
	rows, total, err := listPage[M](ctx, repo.db, repo.concurrent, q, nil)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list "+repo.resource+"s")
	}

	return mapSlice(rows, repo.toDomain), total, nil
}

// Update applies the non-nil patch fields and returns the stored row.
func (repo *catalogRepository[E, M]) Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (E, error) {
	var zero E

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if patch.Available != nil {
		updates["available"] = *patch.Available
	}
	if patch.Photo != nil {
		updates["photo"] = *patch.Photo
	}
	repo.extraColumns(patch, updates)
	if len(updates) == 0 {
		return zero, domainerrors.ErrEmptyPatch
	}

	result := repo.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return zero, repo.writeError(result.Error, "update")
	}
	if result.RowsAffected == 0 {
		return zero, repo.notFound()
	}

	return repo.FindByID(ctx, id)
}

func (repo *catalogRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.resource)
	}
	if result.RowsAffected == 0 {
		return repo.notFound()
	}

	return nil
}

func (repo *catalogRepository[E, M]) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(new(M))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.resource+"s")
	}

	return result.RowsAffected, nil
}
