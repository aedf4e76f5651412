// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/plugin/dbresolver"
)

// userPreloads maps include names onto GORM association names.
var userPreloads = map[string]string{
	repository.IncludeRole:   "Role",
	repository.IncludeAdmin:  "Admin",
	repository.IncludeClient: "Client",
	repository.IncludeMember: "Member",
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db         *gorm.DB
	concurrent bool
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return newUserRepository(db, true)
}

func newUserRepository(db *gorm.DB, concurrent bool) repository.UserRepository {
	return &userRepository{db: db, concurrent: concurrent}
}

func preloadAll(names map[string]string, includes []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, include := range includes {
			if association, ok := names[include]; ok {
				db = db.Preload(association)
			}
		}

		return db
	}
}

// Create persists a new user and copies back the generated columns.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Role", "Admin", "Client", "Member").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNameTaken.WrapMessage("user name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleNotFound.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by ID, preloading the requested relations.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Scopes(preloadAll(userPreloads, includes)).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByName retrieves a user by login name together with its role. It
// reads from the primary so an account can sign in right after creation
// even when replicas lag.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Role").
		Where("name = ?", name).
		First(&userM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by name")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) List(ctx context.Context, q listing.Query) ([]*entity.User, int64, error) {
	rows, total, err := listPage[model.UserModel](ctx, repo.db, repo.concurrent, q, preloadAll(userPreloads, q.Includes))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return mapSlice(rows, toUserDomain), total, nil
}

// Update applies the patch. The password must already be hashed.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}
	if len(updates) == 0 {
		return nil, domainerrors.ErrEmptyPatch
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrNameTaken.WrapMessage("user name already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return repo.FindByID(ctx, id, repository.IncludeRole)
}

// LinkSubRole rewrites the role id and every sub-role pointer, clearing
// the ones left nil.
func (repo *userRepository) LinkSubRole(ctx context.Context, id uuid.UUID, link repository.SubRoleLink) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]any{
		"role_id":   link.RoleID,
		"admin_id":  link.AdminID,
		"client_id": link.ClientID,
		"member_id": link.MemberID,
	})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link user sub-role")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// Delete removes the user; its sub-role row cascades.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.UserModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete users")
	}

	return result.RowsAffected, nil
}
