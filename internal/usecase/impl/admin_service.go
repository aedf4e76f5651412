package impl

import (
	"context"
	"log/slog"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type adminService struct {
	txManager repository.TransactionManager
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	lists     *ListCache
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdminRepo repository.AdminRepository
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Lists     *ListCache
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		adminRepo: params.AdminRepo,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		lists:     params.Lists,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create inserts the user and its admin row in one transaction.
func (srv *adminService) Create(ctx context.Context, account usecase.Account) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		user, err = createAdmin(ctx, repos, srv.hasher, account)

		return err
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Admin created", slog.Any("user_id", user.ID), slog.Any("admin_id", user.AdminID))

	return user, nil
}

func createAdmin(
	ctx context.Context,
	repos repository.RepositoryFactory,
	hasher service.PasswordHasher,
	account usecase.Account,
) (*entity.User, error) {
	user, err := createAccount(ctx, repos, hasher, account, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{UserID: user.ID}
	if err := repos.AdminRepo().Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	link := repository.SubRoleLink{RoleID: user.RoleID, AdminID: &admin.ID}
	if err := repos.UserRepo().LinkSubRole(ctx, user.ID, link); err != nil {
		return nil, errors.Wrap(err, "failed to link admin")
	}
	user.AdminID = &admin.ID
	user.Admin = admin

	return user, nil
}

func (srv *adminService) List(ctx context.Context, params listing.Params) (listing.Page[*entity.Admin], error) {
	return cachedList(ctx, srv.lists, adminSchema, params, srv.adminRepo.List)
}

func (srv *adminService) Get(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return srv.adminRepo.FindByID(ctx, id)
}

// Delete removes the admin's user; the admin row cascades. Catalog items
// keep their owner id.
func (srv *adminService) Delete(ctx context.Context, id uuid.UUID) error {
	admin, err := srv.adminRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundAsBadRequest(err)
	}

	if err := srv.userRepo.Delete(ctx, admin.UserID); err != nil {
		return notFoundAsBadRequest(err)
	}
	srv.log(ctx).Info("Admin deleted", slog.Any("admin_id", id), slog.Any("user_id", admin.UserID))

	return nil
}
