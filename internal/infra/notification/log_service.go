package notification

import (
	"context"
	"log/slog"

	"azan/internal/domain/service"
)

// logService accepts every message and only logs it. Used when no push
// provider is configured, e.g. local development.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that logs instead of sending.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) IsValidToken(token string) bool {
	return isRegistrationToken(token)
}

func (s *logService) MaxBatchSize() int {
	return firebaseMaxBatchSize
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogPush] Notification batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.Bool("silent", msg.Silent),
		slog.Any("data", msg.Data),
	)

	return len(tokens), 0, nil, nil
}
