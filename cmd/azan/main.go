package main

import (
	"context"
	"log/slog"
	"os"

	"azan/config"
	"azan/internal/delivery"
	"azan/internal/delivery/api"
	"azan/internal/delivery/api/router/handler"
	"azan/internal/delivery/ticker"
	"azan/internal/domain/clock"
	"azan/internal/infra/broadcast"
	logs "azan/internal/infra/log"
	"azan/internal/infra/notification"
	"azan/internal/infra/persistence/postgres"
	"azan/internal/usecase/impl"

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
		newClockResolver,
	)
}

// newClockResolver builds the local calendar from the configured UTC offset
func newClockResolver(cfg *config.Config) *clock.Resolver {
	return clock.NewResolver(cfg.Clock.OffsetMinutes(), nil)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewTriggerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.NewReporter,
			logs.NewErrorReporter,
		),
		notification.Module,
		broadcast.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewTriggerService,
			impl.NewDeviceService,
			impl.NewAnnouncementService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRealtimeHandler,
			handler.NewDeviceHandler,
			handler.NewTriggerHandler,
			handler.NewAnnouncementHandler,
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
			fx.Annotate(
				ticker.NewTicker,
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
