package model

import (
	"time"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// It represents a device registered for push notifications.
type DeviceTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Token     string `gorm:"type:varchar(512);not null;uniqueIndex"`
	Platform  string `gorm:"type:varchar(10);not null;default:android"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

// AllModels lists every table the service owns, in migration order.
func AllModels() []any {
	return []any{
		&VoiceModel{},
		&EventModel{},
		&EventScheduleModel{},
		&PrayerModel{},
		&DeviceTokenModel{},
	}
}
