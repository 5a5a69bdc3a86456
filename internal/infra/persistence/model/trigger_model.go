package model

import (
	"time"
)

// VoiceModel is the GORM-specific struct for the 'voices' table.
type VoiceModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	SoundFile string `gorm:"column:sound_file;type:varchar(1024);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoiceModel) TableName() string {
	return "voices"
}

// EventModel is the GORM-specific struct for the 'events' table.
// Dates are ISO-8601 strings so they compare lexicographically in range queries.
type EventModel struct {
	ID           int64       `gorm:"primaryKey;autoIncrement"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Type         string      `gorm:"type:varchar(100);not null"`
	VoiceID      *int64      `gorm:"column:voice_id;index"`
	Voice        *VoiceModel `gorm:"foreignKey:VoiceID"`
	ScheduleMode string      `gorm:"column:schedule_mode;type:varchar(20);not null;default:daily"`
	Weekdays     []int       `gorm:"column:weekdays;serializer:json;type:text"`
	InactiveDays []int       `gorm:"column:inactive_days;serializer:json;type:text"`
	StartDate    *string     `gorm:"column:start_date;type:varchar(10)"`
	EndDate      *string     `gorm:"column:end_date;type:varchar(10)"`
	TimeMode     string      `gorm:"column:time_mode;type:varchar(10);not null;default:fixed"`
	FixedTime    *string     `gorm:"column:fixed_time;type:varchar(5);index"`
	IsActive     bool        `gorm:"column:is_active;not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Schedules []EventScheduleModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventScheduleModel is the GORM-specific struct for the 'event_schedules' table,
// one row per date a custom-time event fires.
type EventScheduleModel struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	EventID   int64       `gorm:"column:event_id;not null;uniqueIndex:idx_event_schedules_event_date"`
	Event     *EventModel `gorm:"foreignKey:EventID"`
	Date      string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_event_schedules_event_date;index:idx_event_schedules_date_time"`
	Time      string      `gorm:"type:varchar(5);not null;index:idx_event_schedules_date_time"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventScheduleModel) TableName() string {
	return "event_schedules"
}

// PrayerModel is the GORM-specific struct for the legacy 'prayers' table.
type PrayerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);not null"`
	Time      string `gorm:"type:varchar(5);not null"`
	SoundFile string `gorm:"column:sound_file;type:varchar(1024);not null"`
	Date      string `gorm:"type:varchar(10);not null;index"`
	IsActive  bool   `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrayerModel) TableName() string {
	return "prayers"
}
