// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"azan/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device registration is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a token that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the device registry operations.
type DeviceRepository interface {
	// ListDeviceRegistrations returns every registered device.
	ListDeviceRegistrations(ctx context.Context) ([]*entity.DeviceRegistration, error)

	// FindDeviceByToken retrieves a registration by its push token.
	FindDeviceByToken(ctx context.Context, token string) (*entity.DeviceRegistration, error)

	// CreateDevice persists a new registration.
	CreateDevice(ctx context.Context, device *entity.DeviceRegistration) error

	// UpdatePlatform changes the platform of an existing registration.
	UpdatePlatform(ctx context.Context, token string, platform entity.Platform) error

	// DeleteDeviceRegistration removes the registration holding token.
	DeleteDeviceRegistration(ctx context.Context, token string) error
}
