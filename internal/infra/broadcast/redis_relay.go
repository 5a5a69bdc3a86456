package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"azan/config"
	"azan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRelay publishes frames to a Redis channel; every instance subscribes
// to that channel and hands the frames to its local hub.
type RedisRelay struct {
	client  *redis.Client
	channel string
	hub     *Hub
	logger  *slog.Logger

	mu     sync.Mutex
	sub    *redis.PubSub
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisRelay creates a relay broadcaster over Redis pub/sub.
func NewRedisRelay(cfg *config.RedisConfig, hub *Hub, logger *slog.Logger) *RedisRelay {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisRelay{
		client:  client,
		channel: cfg.Channel,
		hub:     hub,
		logger:  logger,
	}
}

// Start subscribes to the relay channel and forwards frames until Close.
func (r *RedisRelay) Start(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping redis")
	}

	sub := r.client.Subscribe(context.Background(), r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return errors.Wrapf(err, "subscribe to %s", r.channel)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.mu.Lock()
	r.sub = sub
	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	go r.forward(loopCtx, sub, done)

	r.logger.Info("[RedisRelay] Subscribed",
		slog.String("channel", r.channel),
	)

	return nil
}

func (r *RedisRelay) forward(ctx context.Context, sub *redis.PubSub, done chan struct{}) {
	defer close(done)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			r.hub.deliver([]byte(msg.Payload))
		}
	}
}

// Publish sends the frame to every instance, this one included.
func (r *RedisRelay) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(service.Frame{Event: channel, Data: payload})
	if err != nil {
		return errors.Wrap(err, "encode realtime frame")
	}

	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return errors.Wrapf(err, "publish %s to redis", channel)
	}

	return nil
}

// Close stops the subscription loop and releases the Redis client.
func (r *RedisRelay) Close() error {
	r.mu.Lock()
	sub, cancel, done := r.sub, r.cancel, r.done
	r.sub, r.cancel, r.done = nil, nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if sub != nil {
		_ = sub.Close()
	}
	if done != nil {
		<-done
	}

	return errors.WithStack(r.client.Close())
}
