package main

import (
	"context"
	"log/slog"
	"os"

	"stampcard/config"
	"stampcard/internal/delivery"
	"stampcard/internal/delivery/api"
	"stampcard/internal/delivery/api/middleware"
	"stampcard/internal/delivery/api/router/handler"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/service"
	"stampcard/internal/infra/auth"
	"stampcard/internal/infra/cache"
	logs "stampcard/internal/infra/log"
	"stampcard/internal/infra/persistence/postgres"
	"stampcard/internal/infra/pubsub"
	"stampcard/internal/infra/qrcode"
	"stampcard/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

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
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewStaffGrantRepository,
			postgres.NewCustomerRepository,
			postgres.NewLedgerRepository,
			postgres.NewActivityRepository,
			postgres.NewReportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			qrcode.NewTokenGenerator,
			pubsub.NewEventPublisher,
			cache.NewReportCache,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(constants.DefaultQRCodeSize, constants.DefaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPermissionService,
			impl.NewCustomerService,
			impl.NewStampService,
			impl.NewRedemptionService,
			impl.NewReportService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewStampHandler,
			handler.NewRedemptionHandler,
			handler.NewSettingsHandler,
			handler.NewReportHandler,
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
