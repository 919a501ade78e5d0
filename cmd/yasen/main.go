package main

import (
	"context"
	"log/slog"
	"os"

	"yasen/config"
	"yasen/internal/delivery"
	"yasen/internal/delivery/http"
	httpmiddleware "yasen/internal/delivery/http/middleware"
	"yasen/internal/delivery/http/router/handler"
	deliverymiddleware "yasen/internal/delivery/middleware"
	"yasen/internal/infra/ai"
	"yasen/internal/infra/auth"
	logs "yasen/internal/infra/log"
	"yasen/internal/infra/notification"
	"yasen/internal/infra/persistence/postgres"
	"yasen/internal/infra/storage"
	"yasen/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVerificationCodeRepository,
			postgres.NewTransactionManager,
			postgres.NewProjectRepository,
			postgres.NewMeasurementRepository,
			postgres.NewPhotoRepository,
			postgres.NewCatalogRepository,
			postgres.NewChatRepository,
			postgres.NewWorkOrderRepository,
			postgres.NewRecordingRepository,
			postgres.NewStatsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCodeHasher,
			auth.NewJWTService,
			ai.NewClient,
			storage.New,
			notification.NewSMSRuService,
			notification.NewTelegramService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProjectService,
			impl.NewMeasurementService,
			impl.NewPhotoService,
			impl.NewCatalogService,
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewAssistantService,
			impl.NewAgentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewAdminMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewLoggerMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProjectHandler,
			handler.NewMeasurementHandler,
			handler.NewPhotoHandler,
			handler.NewCatalogHandler,
			handler.NewNotificationHandler,
			handler.NewAdminHandler,
			handler.NewAssistantHandler,
			handler.NewAgentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
