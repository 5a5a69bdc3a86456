package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"azan/internal/domain/entity"
	domainerrors "azan/internal/domain/errors"
	"azan/internal/domain/repository"
	"azan/internal/errors"
	"azan/internal/usecase"
)

type deviceService struct {
	logger     *slog.Logger
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	deviceRepo repository.DeviceRepository,
) usecase.DeviceUsecase {
	return &deviceService{
		logger:     logger,
		txManager:  txManager,
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new token or updates the platform of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, info *usecase.DeviceInfo) (*entity.DeviceRegistration, bool, error) {
	token := strings.TrimSpace(info.Token)
	if token == "" {
		return nil, false, domainerrors.ErrInvalidDeviceToken
	}

	platform := entity.Platform(strings.ToLower(strings.TrimSpace(info.Platform)))
	if platform != "" && !platform.IsValid() {
		return nil, false, domainerrors.ErrInvalidPlatform
	}

	var (
		device  *entity.DeviceRegistration
		created bool
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewDeviceRepository()

		existing, err := repo.FindDeviceByToken(ctx, token)
		switch {
		case err == nil:
			device = existing
			if platform == "" || existing.Platform == platform {
				return nil
			}
			if err := repo.UpdatePlatform(ctx, token, platform); err != nil {
				return fmt.Errorf("failed to update device platform: %w", err)
			}
			device.Platform = platform

			return nil

		case errors.Is(err, repository.ErrDeviceNotFound):
			newDevice := &entity.DeviceRegistration{Token: token, Platform: platform}
			if newDevice.Platform == "" {
				newDevice.Platform = entity.PlatformAndroid
			}
			if err := repo.CreateDevice(ctx, newDevice); err != nil {
				return err
			}
			device, created = newDevice, true

			return nil

		default:
			return fmt.Errorf("failed to find device by token: %w", err)
		}
	})

	// A concurrent registration of the same token won the insert.
	if errors.Is(err, repository.ErrDuplicateDevice) {
		existing, findErr := s.deviceRepo.FindDeviceByToken(ctx, token)
		if findErr != nil {
			return nil, false, fmt.Errorf("failed to find device by token: %w", findErr)
		}

		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s.logger.InfoContext(ctx, "Device registered",
		slog.Int64("device_id", device.ID),
		slog.String("platform", string(device.Platform)),
		slog.Bool("created", created),
	)

	return device, created, nil
}

// UnregisterDevice removes a device registration
func (s *deviceService) UnregisterDevice(ctx context.Context, token string) (bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return false, domainerrors.ErrInvalidDeviceToken
	}

	if err := s.deviceRepo.DeleteDeviceRegistration(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to delete device: %w", err)
	}

	return true, nil
}
