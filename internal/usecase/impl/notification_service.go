package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"azan/config"
	"azan/internal/domain/entity"
	"azan/internal/domain/repository"
	"azan/internal/domain/service"
	"azan/internal/errors"
	"azan/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPushSound  = "default"
	gatewayComponent  = "notification_gateway"
	defaultBatchLimit = 500
)

type notificationService struct {
	logger          *slog.Logger
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	reporter        service.ErrorReporter
	batchSize       int
	concurrency     int
	channelID       string
}

// NewNotificationService creates the push gateway
func NewNotificationService(
	cfg *config.Config,
	logger *slog.Logger,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	reporter service.ErrorReporter,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:          logger,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		reporter:        reporter,
		batchSize:       cfg.Notification.BatchSize,
		concurrency:     max(1, cfg.Notification.Concurrency),
		channelID:       cfg.Notification.ChannelID,
	}
}

// DeliverTriggerEvent sends the visible notification for a fired trigger
func (s *notificationService) DeliverTriggerEvent(ctx context.Context, event *entity.TriggerEvent) (*entity.DeliveryReport, error) {
	return s.deliver(ctx, "trigger", buildTriggerMessage(event, s.channelID))
}

// NotifyDataChanged sends a silent data-only push
func (s *notificationService) NotifyDataChanged(ctx context.Context, kind string) (*entity.DeliveryReport, error) {
	msg := &service.PushMessage{
		Data: map[string]string{
			"type": usecase.DataChangedType,
			"kind": kind,
		},
		Silent: true,
	}

	return s.deliver(ctx, "data_changed", msg)
}

func buildTriggerMessage(event *entity.TriggerEvent, channelID string) *service.PushMessage {
	body := fmt.Sprintf("It's time for %s", event.Name)
	if event.Category != "" && event.Category != entity.CategoryPrayer {
		body = fmt.Sprintf("%s: %s", event.Category, body)
	}

	sound := ""
	if event.SoundLocator != nil {
		sound = *event.SoundLocator
	}

	return &service.PushMessage{
		Title: event.Name,
		Body:  body,
		Data: map[string]string{
			"id":          strconv.FormatInt(event.ID, 10),
			"name":        event.Name,
			"time":        event.Time,
			"category":    event.Category,
			"sound":       sound,
			"triggeredAt": event.TriggeredAt.UTC().Format(time.RFC3339),
		},
		Sound:     defaultPushSound,
		ChannelID: channelID,
	}
}

// deliver loads every registration, drops malformed tokens and submits the
// rest in batches. A failed batch is reported and not retried; tokens the
// provider marks as permanently invalid are deleted once each.
func (s *notificationService) deliver(ctx context.Context, kind string, msg *service.PushMessage) (*entity.DeliveryReport, error) {
	devices, err := s.deviceRepo.ListDeviceRegistrations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device registrations")
	}

	report := &entity.DeliveryReport{Registered: len(devices)}
	tokens := make([]string, 0, len(devices))
	seen := make(map[string]struct{}, len(devices))
	for _, device := range devices {
		if _, dup := seen[device.Token]; dup {
			continue
		}
		seen[device.Token] = struct{}{}

		if !s.notificationSvc.IsValidToken(device.Token) {
			report.Skipped++
			s.logger.WarnContext(ctx, "Skipping malformed push token",
				slog.Int64("device_id", device.ID),
			)

			continue
		}
		tokens = append(tokens, device.Token)
	}

	if len(tokens) == 0 {
		return report, nil
	}

	var (
		mu     sync.Mutex
		pruned = make(map[string]struct{})
	)

	group := new(errgroup.Group)
	group.SetLimit(s.concurrency)

	for _, batch := range chunkTokens(tokens, s.effectiveBatchSize()) {
		report.Batches++

		group.Go(func() error {
			sent, failed, invalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
			if err != nil {
				s.reporter.Report(ctx, gatewayComponent, "send_batch", err,
					slog.String("kind", kind),
					slog.Int("batch_size", len(batch)),
				)

				mu.Lock()
				report.FailedBatches++
				report.Failed += len(batch)
				mu.Unlock()

				return nil
			}

			mu.Lock()
			report.Sent += sent
			report.Failed += failed
			var toPrune []string
			for _, token := range invalid {
				if _, done := pruned[token]; done {
					continue
				}
				pruned[token] = struct{}{}
				toPrune = append(toPrune, token)
			}
			mu.Unlock()

			for _, token := range toPrune {
				s.prune(ctx, token, report, &mu)
			}

			return nil
		})
	}

	_ = group.Wait()

	s.logger.InfoContext(ctx, "Push delivery finished",
		slog.String("kind", kind),
		slog.Int("registered", report.Registered),
		slog.Int("skipped", report.Skipped),
		slog.Int("batches", report.Batches),
		slog.Int("failed_batches", report.FailedBatches),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("pruned", report.Pruned),
	)

	return report, nil
}

func (s *notificationService) prune(ctx context.Context, token string, report *entity.DeliveryReport, mu *sync.Mutex) {
	err := s.deviceRepo.DeleteDeviceRegistration(ctx, token)
	switch {
	case err == nil:
		mu.Lock()
		report.Pruned++
		mu.Unlock()
	case errors.Is(err, repository.ErrDeviceNotFound):
		// already unregistered
	default:
		s.reporter.Report(ctx, gatewayComponent, "prune_token", err)
	}
}

func (s *notificationService) effectiveBatchSize() int {
	size := s.batchSize
	if limit := s.notificationSvc.MaxBatchSize(); limit > 0 && (size <= 0 || size > limit) {
		size = limit
	}
	if size <= 0 {
		size = defaultBatchLimit
	}

	return size
}

func chunkTokens(tokens []string, size int) [][]string {
	batches := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		batches = append(batches, tokens[start:end])
	}

	return batches
}
