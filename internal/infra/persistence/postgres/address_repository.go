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
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db         *gorm.DB
	concurrent bool
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return newAddressRepository(db, true)
}

func newAddressRepository(db *gorm.DB, concurrent bool) repository.AddressRepository {
	return &addressRepository{db: db, concurrent: concurrent}
}

// Create persists a new address entity to the database.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAddressExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FirstOrCreate returns the address stored for the pair, inserting it
// when absent. A concurrent insert of the same pair is read back.
func (repo *addressRepository) FirstOrCreate(ctx context.Context, house, square string) (*entity.Address, error) {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "house"}, {Name: "square"}},
			DoNothing: true,
		}).
		Create(&model.AddressModel{House: house, Square: square}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	return repo.FindByPair(ctx, house, square)
}

// FindByID retrieves a single address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) FindByPair(ctx context.Context, house, square string) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("house = ? AND square = ?", house, square).
		First(&addressM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) List(ctx context.Context, q listing.Query) ([]*entity.Address, int64, error) {
	rows, total, err := listPage[model.AddressModel](ctx, repo.db, repo.concurrent, q, nil)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	return mapSlice(rows, toAddressDomain), total, nil
}

// Update modifies an existing address; moving onto an existing pair fails.
func (repo *addressRepository) Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error) {
	updates := map[string]any{}
	if patch.House != nil {
		updates["house"] = *patch.House
	}
	if patch.Square != nil {
		updates["square"] = *patch.Square
	}
	if len(updates) == 0 {
		return nil, domainerrors.ErrEmptyPatch
	}

	result := repo.db.WithContext(ctx).Model(&model.AddressModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrAddressExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrAddressNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes an address by its ID. Addresses still held by a client are refused.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBadRequest.WithMessage("Address is in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAddressNotFound
	}

	return nil
}
