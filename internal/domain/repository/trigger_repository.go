package repository

import (
	"context"

	"azan/internal/domain/entity"
)

// TriggerRepository is the read-only query surface the trigger engine needs.
type TriggerRepository interface {
	// FindActiveTriggerDefinitions returns every active event definition with its voice loaded.
	FindActiveTriggerDefinitions(ctx context.Context) ([]*entity.TriggerDefinition, error)

	// FindOverrides returns the overrides scheduled exactly at date+clock whose
	// owning definition is active, with Trigger populated.
	FindOverrides(ctx context.Context, date, clock string) ([]*entity.ScheduleOverride, error)

	// FindOverridesForDate returns every override on date, regardless of time.
	FindOverridesForDate(ctx context.Context, date string) ([]*entity.ScheduleOverride, error)

	// FindActivePrayerRecords returns legacy single-date records due at date+clock.
	FindActivePrayerRecords(ctx context.Context, date, clock string) ([]*entity.TriggerDefinition, error)

	// FindPrayerRecordsForDate returns active legacy records on date.
	FindPrayerRecordsForDate(ctx context.Context, date string) ([]*entity.TriggerDefinition, error)
}
