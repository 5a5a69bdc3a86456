package postgres

import (
	"context"
	"time"

	"azan/internal/domain/entity"
	"azan/internal/domain/repository"
	"azan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// triggerRepository implements the repository.TriggerRepository interface.
// Every query is an equality or range predicate on the date and time columns.
type triggerRepository struct {
	db *gorm.DB
}

// NewTriggerRepository is the constructor for triggerRepository.
func NewTriggerRepository(db *gorm.DB) repository.TriggerRepository {
	return &triggerRepository{
		db: db,
	}
}

// FindActiveTriggerDefinitions retrieves every active event with its voice.
func (repo *triggerRepository) FindActiveTriggerDefinitions(ctx context.Context) ([]*entity.TriggerDefinition, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Preload("Voice").
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active events")
	}

	defs := make([]*entity.TriggerDefinition, 0, len(eventModels))
	for _, eventM := range eventModels {
		defs = append(defs, toTriggerDomain(eventM))
	}

	return defs, nil
}

// FindOverrides retrieves the schedule rows at exactly date and clock whose event is active.
func (repo *triggerRepository) FindOverrides(ctx context.Context, date, clock string) ([]*entity.ScheduleOverride, error) {
	var scheduleModels []*model.EventScheduleModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN events ON events.id = event_schedules.event_id AND events.is_active = ?", true).
		Preload("Event.Voice").
		Where("event_schedules.date = ? AND event_schedules.time = ?", date, clock).
		Order("event_schedules.id ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedule overrides")
	}

	return toOverridesDomain(scheduleModels), nil
}

// FindOverridesForDate retrieves every schedule row on date.
func (repo *triggerRepository) FindOverridesForDate(ctx context.Context, date string) ([]*entity.ScheduleOverride, error) {
	var scheduleModels []*model.EventScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedule overrides for date")
	}

	return toOverridesDomain(scheduleModels), nil
}

// FindActivePrayerRecords retrieves active legacy records at exactly date and clock.
func (repo *triggerRepository) FindActivePrayerRecords(ctx context.Context, date, clock string) ([]*entity.TriggerDefinition, error) {
	return repo.findPrayers(ctx, repo.db.Where("date = ? AND time = ? AND is_active = ?", date, clock, true))
}

// FindPrayerRecordsForDate retrieves active legacy records on date.
func (repo *triggerRepository) FindPrayerRecordsForDate(ctx context.Context, date string) ([]*entity.TriggerDefinition, error) {
	return repo.findPrayers(ctx, repo.db.Where("date = ? AND is_active = ?", date, true))
}

func (repo *triggerRepository) findPrayers(ctx context.Context, query *gorm.DB) ([]*entity.TriggerDefinition, error) {
	var prayerModels []*model.PrayerModel

	if err := query.WithContext(ctx).
		Order("time ASC, id ASC").
		Find(&prayerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prayer records")
	}

	defs := make([]*entity.TriggerDefinition, 0, len(prayerModels))
	for _, prayerM := range prayerModels {
		defs = append(defs, toPrayerDomain(prayerM))
	}

	return defs, nil
}

// --- Mapper Functions ---

func toTriggerDomain(data *model.EventModel) *entity.TriggerDefinition {
	if data == nil {
		return nil
	}

	def := &entity.TriggerDefinition{
		Key:          entity.TriggerKey{Source: entity.TriggerSourceEvent, ID: data.ID},
		ID:           data.ID,
		Name:         data.Name,
		Category:     data.Type,
		ScheduleMode: entity.ScheduleMode(data.ScheduleMode),
		TimeMode:     entity.TimeMode(data.TimeMode),
		FixedTime:    clockOf(deref(data.FixedTime)),
		Weekdays:     toWeekdays(data.Weekdays),
		InactiveDays: toWeekdays(data.InactiveDays),
		StartDate:    calendarDate(deref(data.StartDate)),
		EndDate:      calendarDate(deref(data.EndDate)),
		IsActive:     data.IsActive,
	}

	if data.Voice != nil {
		def.Voice = &entity.SoundAsset{
			ID:       data.Voice.ID,
			Name:     data.Voice.Name,
			Locator:  data.Voice.SoundFile,
			IsActive: data.Voice.IsActive,
		}
	}

	return def
}

func toPrayerDomain(data *model.PrayerModel) *entity.TriggerDefinition {
	return &entity.TriggerDefinition{
		Key:          entity.TriggerKey{Source: entity.TriggerSourcePrayer, ID: data.ID},
		ID:           data.ID,
		Name:         data.Name,
		Category:     entity.CategoryPrayer,
		ScheduleMode: entity.ScheduleModeSingleDate,
		TimeMode:     entity.TimeModeFixed,
		FixedTime:    clockOf(data.Time),
		Date:         calendarDate(data.Date),
		IsActive:     data.IsActive,
		SoundFile:    data.SoundFile,
	}
}

func toOverridesDomain(models []*model.EventScheduleModel) []*entity.ScheduleOverride {
	overrides := make([]*entity.ScheduleOverride, 0, len(models))
	for _, scheduleM := range models {
		overrides = append(overrides, &entity.ScheduleOverride{
			ID:        scheduleM.ID,
			TriggerID: scheduleM.EventID,
			Date:      calendarDate(scheduleM.Date),
			Time:      clockOf(scheduleM.Time),
			Trigger:   toTriggerDomain(scheduleM.Event),
		})
	}

	return overrides
}

func toWeekdays(days []int) []time.Weekday {
	if len(days) == 0 {
		return nil
	}

	weekdays := make([]time.Weekday, 0, len(days))
	for _, day := range days {
		weekdays = append(weekdays, time.Weekday(day))
	}

	return weekdays
}

// calendarDate keeps the YYYY-MM-DD part of a value read from a DATE or
// timestamp column, which drivers may render as RFC 3339.
func calendarDate(value string) string {
	if len(value) > 10 && (value[10] == 'T' || value[10] == ' ') {
		return value[:10]
	}

	return value
}

// clockOf trims the seconds a TIME column renders as HH:MM:SS.
func clockOf(value string) string {
	if len(value) > 5 && value[5] == ':' {
		return value[:5]
	}

	return value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
