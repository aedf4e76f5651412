// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/policy"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	lists     *ListCache
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Lists     *ListCache
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		lists:     params.Lists,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.User], error) {
	if err := policy.Authorize(caller.Role, policy.UserList, false); err != nil {
		return listing.Page[*entity.User]{}, err
	}

	return cachedList(ctx, srv.lists, userSchema, params, srv.userRepo.List)
}

func (srv *userService) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID, includes []string) (*entity.User, error) {
	if err := policy.Authorize(caller.Role, policy.UserRead, id == caller.UserID); err != nil {
		return nil, err
	}
	if err := userSchema.CheckIncludes(includes); err != nil {
		return nil, err
	}

	return srv.userRepo.FindByID(ctx, id, includes...)
}

func (srv *userService) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	if err := policy.Authorize(caller.Role, policy.UserUpdate, id == caller.UserID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	patch, err := hashPatch(srv.hasher, patch)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}
	srv.log(ctx).Info("User updated", slog.Any("user_id", id), slog.Any("by", caller.UserID))

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	if err := policy.Authorize(caller.Role, policy.UserDelete, id == caller.UserID); err != nil {
		return err
	}

	var deleted int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		deleted, err = deleteUsers(ctx, repos, []uuid.UUID{id})

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("user_id", id), slog.Any("error", err))

		return err
	}
	if deleted == 0 {
		return notFoundAsBadRequest(domainerrors.ErrUserNotFound)
	}
	srv.log(ctx).Info("User deleted", slog.Any("user_id", id), slog.Int64("rows", deleted))

	return nil
}

func (srv *userService) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	if err := policy.Authorize(caller.Role, policy.UserDeleteMany, false); err != nil {
		return err
	}
	if len(ids) == 0 {
		return domainerrors.ErrMissingIDs
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		deleted, err := deleteUsers(ctx, repos, ids)
		if err != nil {
			return err
		}
		srv.log(ctx).Info("Users deleted", slog.Int("requested", len(ids)), slog.Int64("rows", deleted))

		return nil
	})
}
