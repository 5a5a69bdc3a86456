package usecase

import (
	"context"

	"azan/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device registry use cases
type DeviceUsecase interface {
	// RegisterDevice registers a token, or updates its platform when it already exists.
	// created reports whether a new registration was stored.
	RegisterDevice(ctx context.Context, info *DeviceInfo) (device *entity.DeviceRegistration, created bool, err error)

	// UnregisterDevice removes a token. removed is false when it was not registered.
	UnregisterDevice(ctx context.Context, token string) (removed bool, err error)
}
