package broadcast

import (
	"context"
	"log/slog"

	"azan/config"
	"azan/internal/domain/constants"
	"azan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// localBroadcaster publishes straight to the in-process hub.
type localBroadcaster struct {
	*Hub
}

// BroadcasterParams holds dependencies for Broadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

// NewBroadcaster creates a Broadcaster based on configuration
func NewBroadcaster(params BroadcasterParams) (service.Broadcaster, error) {
	cfg := params.Config.Broadcast
	logger := params.Logger

	var broadcaster service.Broadcaster

	switch cfg.Provider {
	case constants.BroadcastProviderLocal, "":
		logger.Info("Using in-process realtime hub")

		broadcaster = localBroadcaster{Hub: params.Hub}

	case constants.BroadcastProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis realtime relay",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("channel", cfg.Redis.Channel),
		)

		relay := NewRedisRelay(cfg.Redis, params.Hub, logger)
		params.Lc.Append(fx.Hook{
			OnStart: relay.Start,
		})
		broadcaster = relay

	case constants.BroadcastProviderGoogle:
		if cfg.PubSub == nil || cfg.PubSub.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.PubSub.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		exporter, err := NewGoogleExporter(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, params.Hub, logger)
		if err != nil {
			return nil, err
		}
		broadcaster = exporter

	default:
		return nil, errors.Errorf("unknown broadcast provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Broadcaster")

			err := broadcaster.Close()
			_ = params.Hub.Close()

			return err
		},
	})

	return broadcaster, nil
}

// Module provides the realtime broadcast FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		NewBroadcaster,
	),
)
