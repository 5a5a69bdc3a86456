package usecase

import (
	"context"

	"azan/internal/domain/entity"
)

// DataChangedType is the data payload type of a silent refresh push.
const DataChangedType = "data_changed"

// NotificationUsecase delivers pushes to every registered device in batches,
// pruning registrations the provider reports as permanently invalid.
type NotificationUsecase interface {
	// DeliverTriggerEvent sends the visible notification for a fired trigger.
	DeliverTriggerEvent(ctx context.Context, event *entity.TriggerEvent) (*entity.DeliveryReport, error)

	// NotifyDataChanged sends a silent data-only push asking clients to refetch kind.
	NotifyDataChanged(ctx context.Context, kind string) (*entity.DeliveryReport, error)
}
