package impl

import (
	"context"
	"strings"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
)

// createAccount hashes the password and inserts a user holding role.
// Sub-role pointers are linked by the caller once the sub-role exists.
func createAccount(
	ctx context.Context,
	repos repository.RepositoryFactory,
	hasher service.PasswordHasher,
	account usecase.Account,
	role entity.Role,
) (*entity.User, error) {
	name := strings.TrimSpace(account.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("name must be a string and not empty")
	}

	hash, err := hashPassword(hasher, account.Password)
	if err != nil {
		return nil, err
	}

	roleRecord, err := repos.RoleRepo().Ensure(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure role")
	}

	user := &entity.User{
		Name:     name,
		Password: hash,
		RoleID:   roleRecord.ID,
		Role:     roleRecord,
	}
	if err := repos.UserRepo().Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func hashPassword(hasher service.PasswordHasher, password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("password must be a string and not empty")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

// hashPatch replaces a plain-text password in patch with its hash.
func hashPatch(hasher service.PasswordHasher, patch entity.UserPatch) (entity.UserPatch, error) {
	if patch.Password == nil {
		return patch, nil
	}

	hash, err := hashPassword(hasher, *patch.Password)
	if err != nil {
		return patch, err
	}
	patch.Password = &hash

	return patch, nil
}

// deleteUsers removes the given users. Client users take their members'
// users with them so no member account outlives its client.
func deleteUsers(ctx context.Context, repos repository.RepositoryFactory, ids []uuid.UUID) (int64, error) {
	targets := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		user, err := repos.UserRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				continue
			}

			return 0, err
		}

		if user.ClientID != nil {
			memberUsers, err := repos.MemberRepo().UserIDsByClient(ctx, *user.ClientID)
			if err != nil {
				return 0, err
			}
			targets = append(targets, memberUsers...)
		}
		targets = append(targets, user.ID)
	}

	if len(targets) == 0 {
		return 0, nil
	}

	return repos.UserRepo().DeleteMany(ctx, targets)
}

// callerUser loads the caller's user row with its sub-role pointers.
func callerUser(ctx context.Context, users repository.UserRepository, caller usecase.Caller) (*entity.User, error) {
	user, err := users.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidAccessToken
		}

		return nil, errors.Wrap(err, "failed to load caller")
	}

	return user, nil
}
