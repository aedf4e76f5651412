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

var clientPreloads = map[string]string{
	repository.IncludeAddress: "Address",
	repository.IncludeMembers: "Members",
}

var errClientNotFound = domainerrors.ErrNotFound.WithMessage("Client not found")

type clientRepository struct {
	db         *gorm.DB
	concurrent bool
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return newClientRepository(db, true)
}

func newClientRepository(db *gorm.DB, concurrent bool) repository.ClientRepository {
	return &clientRepository{db: db, concurrent: concurrent}
}

func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := &model.ClientModel{ID: client.ID, UserID: client.UserID, AddressID: client.AddressID}
	if err := repo.db.WithContext(ctx).Omit("Address", "Members").Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user is already a client")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound.WrapMessage("invalid address reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.db.WithContext(ctx).
		Scopes(preloadAll(clientPreloads, includes)).
		Where("id = ?", id).
		First(&clientM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, errClientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find client")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) List(ctx context.Context, q listing.Query) ([]*entity.Client, int64, error) {
	rows, total, err := listPage[model.ClientModel](ctx, repo.db, repo.concurrent, q, preloadAll(clientPreloads, q.Includes))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list clients")
	}

	return mapSlice(rows, toClientDomain), total, nil
}

func (repo *clientRepository) SetAddress(ctx context.Context, id, addressID uuid.UUID) error {
	return repo.set(ctx, id, "address_id", addressID)
}

func (repo *clientRepository) SetUser(ctx context.Context, id, userID uuid.UUID) error {
	return repo.set(ctx, id, "user_id", userID)
}

func (repo *clientRepository) set(ctx context.Context, id uuid.UUID, column string, value uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.ClientModel{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBadRequest.WrapMessage("invalid " + column)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client "+column)
	}
	if result.RowsAffected == 0 {
		return errClientNotFound
	}

	return nil
}
