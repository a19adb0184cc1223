package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"clubefast/config"
	"clubefast/internal/delivery"
	"clubefast/internal/delivery/api"
	"clubefast/internal/delivery/api/middleware"
	"clubefast/internal/delivery/api/router/handler"
	"clubefast/internal/domain/points"
	"clubefast/internal/domain/service"
	"clubefast/internal/infra/auth"
	"clubefast/internal/infra/export"
	logs "clubefast/internal/infra/log"
	"clubefast/internal/infra/persistence/postgres"
	"clubefast/internal/infra/pubsub"
	"clubefast/internal/infra/qrcode"
	"clubefast/internal/infra/storage"
	"clubefast/internal/infra/vision"
	"clubefast/internal/usecase/impl"

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
		postgres.Module,
		pubsub.Module,
		vision.Module,
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
		storage.NewInvoiceImageStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			export.NewRedemptionExporter,
			newQRCodeService,
			newCalculator,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newCalculator() *points.Calculator {
	return points.NewCalculator(time.Now)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewInvoiceService,
			impl.NewCatalogService,
			impl.NewRedemptionService,
			impl.NewDashboardService,
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
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewInvoiceHandler,
			handler.NewCatalogHandler,
			handler.NewRedemptionHandler,
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
