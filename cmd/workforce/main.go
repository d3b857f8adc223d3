package main

import (
	"context"
	"log/slog"
	"os"

	"workforce/config"
	"workforce/internal/delivery"
	"workforce/internal/delivery/http"
	"workforce/internal/delivery/http/middleware"
	"workforce/internal/delivery/http/router/handler"
	"workforce/internal/delivery/worker"
	"workforce/internal/domain/repository"
	"workforce/internal/domain/service"
	"workforce/internal/infra/docstore"
	logs "workforce/internal/infra/log"
	"workforce/internal/infra/persistence/document"
	"workforce/internal/infra/pubsub"
	"workforce/internal/infra/storage"
	"workforce/internal/usecase"
	"workforce/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
			restoreDocument,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		docstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			document.NewUserRepository,
			document.NewWorkerRepository,
			document.NewOrderRepository,
			document.NewMessageRepository,
			document.NewStatsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			storage.NewObjectStorage,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserService,
			newWorkerService,
			newOrderService,
			impl.NewMessageService,
			impl.NewStatsService,
			newBackupService,
		),
	)
}

// newUserService wires the configured super admin into the user usecase.
func newUserService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	workerRepo repository.WorkerRepository,
	statsRepo repository.StatsRepository,
) usecase.UserUsecase {
	return impl.NewUserService(userRepo, workerRepo, statsRepo, cfg.Admin.SuperAdminID)
}

func newWorkerService(
	cfg *config.Config,
	workerRepo repository.WorkerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.WorkerUsecase {
	return impl.NewWorkerService(workerRepo, publisher, logger, cfg.Admin.SuperAdminID)
}

func newOrderService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	workerRepo repository.WorkerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return impl.NewOrderService(orderRepo, workerRepo, publisher, logger, cfg.Admin.SuperAdminID)
}

func newBackupService(
	cfg *config.Config,
	store *docstore.Store,
	remote service.ObjectStorage,
	logger *slog.Logger,
) usecase.BackupUsecase {
	return impl.NewBackupService(store, remote, cfg.ShortDomain(), cfg.Backup.ObjectName, logger)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewWorkerHandler,
			handler.NewOrderHandler,
			handler.NewMessageHandler,
			handler.NewStatsHandler,
			handler.NewSiteHandler,
		),
	)
}

// restoreDocument pulls the latest remote backup before the store opens.
// A missing remote object means a fresh install; remote failures fall back
// to whatever the local document holds.
func restoreDocument(
	ctx context.Context,
	backup usecase.BackupUsecase,
	store *docstore.Store,
	logger *slog.Logger,
) error {
	if err := backup.Restore(ctx); err != nil {
		logger.Warn("Restore from remote storage failed, continuing with local document",
			slog.Any("error", err))
	}

	return store.Initialize()
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
