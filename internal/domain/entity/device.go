package entity

import "time"

// Platform is the mobile OS a device registered from.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// IsValid reports whether p is a supported platform.
func (p Platform) IsValid() bool {
	return p == PlatformIOS || p == PlatformAndroid
}

// DeviceRegistration is a push token registered by a mobile client.
type DeviceRegistration struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"` // unique
	Platform  Platform  `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
