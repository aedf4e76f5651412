package impl

import (
	"context"
	"log/slog"

	"scoop/config"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSeedAdminName     = "Test Admin"
	defaultSeedAdminPassword = "123"
)

type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	seed      config.SeedConfig
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	var seed config.SeedConfig
	if params.Config.Seed != nil {
		seed = *params.Config.Seed
	}
	if seed.AdminName == "" {
		seed.AdminName = defaultSeedAdminName
	}
	if seed.AdminPassword == "" {
		seed.AdminPassword = defaultSeedAdminPassword
	}

	return &seedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		seed:      seed,
		logger:    params.Logger,
	}
}

// Seed ensures every role, the default address and the seed admin exist.
// It is safe to run on every start.
func (srv *seedService) Seed(ctx context.Context) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, role := range entity.AllRoles {
			if _, err := repos.RoleRepo().Ensure(ctx, role); err != nil {
				return errors.Wrapf(err, "failed to ensure role %s", role)
			}
		}

		if srv.seed.DefaultHouse != "" && srv.seed.DefaultSquare != "" {
			if _, err := repos.AddressRepo().FirstOrCreate(ctx, srv.seed.DefaultHouse, srv.seed.DefaultSquare); err != nil {
				return errors.Wrap(err, "failed to ensure default address")
			}
		}

		_, err := repos.UserRepo().FindByName(ctx, srv.seed.AdminName)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, domainerrors.ErrUserNotFound):
			return errors.Wrap(err, "failed to look up seed admin")
		}

		user, err := createAdmin(ctx, repos, srv.hasher, usecase.Account{
			Name:     srv.seed.AdminName,
			Password: srv.seed.AdminPassword,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create seed admin")
		}
		srv.logger.Info("Seed admin created", slog.Any("user_id", user.ID), slog.String("name", user.Name))

		return nil
	})
}
