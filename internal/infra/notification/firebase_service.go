package notification

import (
	"context"
	"fmt"

	"azan/config"
	"azan/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	// firebaseMaxBatchSize is the SendEachForMulticast recipient limit
	firebaseMaxBatchSize = 500
	firebaseMaxTokenLen  = 4096
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// IsValidToken rejects tokens FCM would refuse before a request is made.
func (s *firebaseService) IsValidToken(token string) bool {
	return isRegistrationToken(token)
}

func (s *firebaseService) MaxBatchSize() int {
	return firebaseMaxBatchSize
}

// SendBatchNotification sends one message to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > firebaseMaxBatchSize {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), firebaseMaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(tokens, msg))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		// Only permanent token errors lead to pruning; quota and server errors do not.
		if messaging.IsUnregistered(sendResponse.Error) ||
			messaging.IsSenderIDMismatch(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

func buildMulticastMessage(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	if msg.Silent {
		return &messaging.MulticastMessage{
			Tokens: tokens,
			Data:   msg.Data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-push-type": "background",
					"apns-priority":  "5",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{ContentAvailable: true},
				},
			},
		}
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     msg.Sound,
				ChannelID: msg.ChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: msg.Sound},
			},
		},
	}
}

func isRegistrationToken(token string) bool {
	if token == "" || len(token) > firebaseMaxTokenLen {
		return false
	}

	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == ':':
		default:
			return false
		}
	}

	return true
}
