package service

import (
	"context"
)

// PushMessage is the provider-neutral content of one push delivery.
type PushMessage struct {
	Title     string
	Body      string
	Data      map[string]string
	Sound     string
	ChannelID string
	// Silent marks a data-only message that wakes the client without a visible alert.
	Silent bool
}

// NotificationService defines the interface for push notification providers
type NotificationService interface {
	// IsValidToken reports whether token is structurally acceptable to the provider.
	IsValidToken(token string) bool

	// MaxBatchSize is the provider's per-request recipient limit.
	MaxBatchSize() int

	// SendBatchNotification sends one message to multiple device tokens.
	// Returns success count, failure count, the tokens the provider reported as
	// permanently invalid, and an error when the whole batch failed in transport.
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
