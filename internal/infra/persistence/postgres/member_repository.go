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

var errMemberNotFound = domainerrors.ErrNotFound.WithMessage("Member not found")

type memberRepository struct {
	db         *gorm.DB
	concurrent bool
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return newMemberRepository(db, true)
}

func newMemberRepository(db *gorm.DB, concurrent bool) repository.MemberRepository {
	return &memberRepository{db: db, concurrent: concurrent}
}

func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := &model.MemberModel{
		ID:           member.ID,
		UserID:       member.UserID,
		ClientID:     member.ClientID,
		Relationship: member.Relationship,
	}
	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user is already a member")
		}
		if isForeignKeyConstraintViolation(err) {
			return errClientNotFound.WrapMessage("invalid client reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&memberM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errMemberNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find member")
	}

	return toMemberDomain(&memberM), nil
}

func (repo *memberRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Member, error) {
	if len(ids) == 0 {
		return []*entity.Member{}, nil
	}

	var rows []model.MemberModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find members")
	}

	return mapSlice(rows, toMemberDomain), nil
}

func (repo *memberRepository) List(ctx context.Context, q listing.Query) ([]*entity.Member, int64, error) {
	rows, total, err := listPage[model.MemberModel](ctx, repo.db, repo.concurrent, q, nil)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list members")
	}

	return mapSlice(rows, toMemberDomain), total, nil
}

func (repo *memberRepository) Update(ctx context.Context, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error) {
	updates := map[string]any{}
	if patch.Relationship != nil {
		updates["relationship"] = *patch.Relationship
	}
	if patch.ClientID != nil {
		updates["client_id"] = *patch.ClientID
	}
	if len(updates) == 0 {
		return nil, domainerrors.ErrEmptyPatch
	}

	result := repo.db.WithContext(ctx).Model(&model.MemberModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, errClientNotFound.WrapMessage("invalid client reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return nil, errMemberNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *memberRepository) SetUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.MemberModel{}).Where("id = ?", id).Update("user_id", userID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member user")
	}
	if result.RowsAffected == 0 {
		return errMemberNotFound
	}

	return nil
}

func (repo *memberRepository) UserIDsByClient(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("client_id = ?", clientID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list member users")
	}

	return ids, nil
}
