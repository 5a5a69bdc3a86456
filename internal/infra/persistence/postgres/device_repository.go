// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"azan/internal/domain/entity"
	domainerrors "azan/internal/domain/errors"
	"azan/internal/domain/repository"
	"azan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// ListDeviceRegistrations retrieves every registered device ordered by registration.
func (repo *deviceRepository) ListDeviceRegistrations(ctx context.Context) ([]*entity.DeviceRegistration, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.DeviceRegistration, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindDeviceByToken retrieves a device by its push token.
func (repo *deviceRepository) FindDeviceByToken(ctx context.Context, token string) (*entity.DeviceRegistration, error) {
	var deviceM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// CreateDevice persists a new device registration.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.DeviceRegistration) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// UpdatePlatform changes the platform stored for token.
func (repo *deviceRepository) UpdatePlatform(ctx context.Context, token string, platform entity.Platform) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("token = ?", token).
		Update("platform", string(platform))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device platform")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDeviceRegistration removes the device holding token.
func (repo *deviceRepository) DeleteDeviceRegistration(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceTokenModel to a domain DeviceRegistration entity.
func toDeviceDomain(data *model.DeviceTokenModel) *entity.DeviceRegistration {
	if data == nil {
		return nil
	}

	return &entity.DeviceRegistration{
		ID:        data.ID,
		Token:     data.Token,
		Platform:  entity.Platform(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain DeviceRegistration entity to a GORM DeviceTokenModel.
func fromDeviceDomain(data *entity.DeviceRegistration) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		Platform:  string(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
