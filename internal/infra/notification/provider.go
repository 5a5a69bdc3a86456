package notification

import (
	"context"
	"log/slog"

	"azan/config"
	"azan/internal/domain/constants"
	"azan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for NotificationService, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates the push provider selected in configuration
func NewNotificationService(params ProviderParams) (service.NotificationService, error) {
	logger := params.Logger

	switch params.Config.Notification.Provider {
	case constants.PushProviderFirebase:
		if params.Config.Firebase == nil {
			return nil, errors.New("firebase config is required for firebase provider")
		}
		logger.Info("Using Firebase push provider",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseService(params.Ctx, params.Config.Firebase)

	case constants.PushProviderLog, "":
		logger.Info("Using log push provider, notifications are not sent")

		return NewLogService(logger), nil

	default:
		return nil, errors.Errorf("unknown notification provider: %s", params.Config.Notification.Provider)
	}
}

// Module provides the push provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
