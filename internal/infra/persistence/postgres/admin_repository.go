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

type adminRepository struct {
	db         *gorm.DB
	concurrent bool
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return newAdminRepository(db, true)
}

func newAdminRepository(db *gorm.DB, concurrent bool) repository.AdminRepository {
	return &adminRepository{db: db, concurrent: concurrent}
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := &model.AdminModel{ID: admin.ID, UserID: admin.UserID}
	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user is already an admin")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adminM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrNotFound.WithMessage("Admin not found")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) List(ctx context.Context, q listing.Query) ([]*entity.Admin, int64, error) {
	rows, total, err := listPage[model.AdminModel](ctx, repo.db, repo.concurrent, q, nil)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list admins")
	}

	return mapSlice(rows, toAdminDomain), total, nil
}
