package postgres

import (
	"context"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/repository"
	"scoop/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// Ensure inserts the role when missing and returns the stored row.
// Concurrent callers race on the unique name and both read the winner.
func (repo *roleRepository) Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	if !name.IsValid() {
		return nil, domainerrors.ErrRoleNotFound.WrapMessage("unknown role " + name.String())
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&model.RoleModel{Name: name.String()}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return repo.FindByName(ctx, name)
}

func (repo *roleRepository) FindByName(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name.String()).First(&roleM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.RoleRecord, error) {
	var rows []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list roles")
	}

	return mapSlice(rows, toRoleDomain), nil
}
