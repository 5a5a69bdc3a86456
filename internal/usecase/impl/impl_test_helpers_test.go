package impl

import (
	"io"
	"log/slog"
	"time"

	"azan/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notification.BatchSize = 500
	cfg.Notification.Concurrency = 2
	cfg.Notification.ChannelID = "prayer-times"
	cfg.Notification.DeliveryTimeout = 5 * time.Second

	return cfg
}

func strPtr(value string) *string {
	return &value
}
