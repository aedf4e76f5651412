package main

import (
	"context"
	"log/slog"
	"os"

	"scoop/config"
	"scoop/internal/delivery"
	"scoop/internal/delivery/api"
	"scoop/internal/delivery/api/middleware"
	"scoop/internal/delivery/api/router/handler"
	"scoop/internal/domain/lifecycle"
	"scoop/internal/domain/service"
	"scoop/internal/infra/auth"
	"scoop/internal/infra/cache"
	logs "scoop/internal/infra/log"
	"scoop/internal/infra/metrics"
	"scoop/internal/infra/persistence/postgres"
	"scoop/internal/infra/pubsub"
	"scoop/internal/infra/qrcode"
	"scoop/internal/infra/storage"
	"scoop/internal/usecase"
	"scoop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Seeder usecase.SeedUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewQueryCache,
		metrics.New,
		newMetricsRecorder,
	)
}

func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewAdminRepository,
			postgres.NewClientRepository,
			postgres.NewMemberRepository,
			postgres.NewAddressRepository,
			postgres.NewCreamRepository,
			postgres.NewToppingRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			qrcode.NewPickupCodeService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewListCache,
			impl.NewSessionService,
			impl.NewCreamService,
			impl.NewToppingService,
			impl.NewProductService,
			impl.NewUserService,
			impl.NewAdminService,
			impl.NewClientService,
			impl.NewMemberService,
			impl.NewAddressService,
			impl.NewRoleService,
			impl.NewSeedService,
			impl.NewServiceOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCreamHandler,
			handler.NewToppingHandler,
			handler.NewProductHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewClientHandler,
			handler.NewMemberHandler,
			handler.NewAddressHandler,
			handler.NewRoleHandler,
			handler.NewServiceOrderHandler,
			handler.NewPhotoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seed runs after the database hook has migrated the schema.
func seed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.Seeder.Seed(ctx); err != nil {
				return err
			}
			params.Logger.Info("Seed data ensured")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
