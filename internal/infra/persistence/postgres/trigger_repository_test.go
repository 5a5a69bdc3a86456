package postgres

import (
	"context"
	"testing"
	"time"

	"azan/internal/domain/entity"
	"azan/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerRepository_FindActiveTriggerDefinitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewTriggerRepository(db)
	ctx := context.Background()

	voice := seedVoice(t, db, "Fajr adhan", "https://cdn.example.com/fajr.mp3")
	weekly := seedEvent(t, db, &model.EventModel{
		Name:         "Jumuah reminder",
		Type:         "reminder",
		VoiceID:      &voice.ID,
		ScheduleMode: string(entity.ScheduleModeWeekly),
		Weekdays:     []int{5},
		InactiveDays: []int{0, 6},
		StartDate:    strPtr("2024-03-01"),
		EndDate:      strPtr("2024-03-31"),
		TimeMode:     string(entity.TimeModeFixed),
		FixedTime:    strPtr("12:30"),
		IsActive:     true,
	})
	seedEvent(t, db, &model.EventModel{
		Name:         "Disabled",
		Type:         "reminder",
		ScheduleMode: string(entity.ScheduleModeDaily),
		TimeMode:     string(entity.TimeModeFixed),
		FixedTime:    strPtr("12:30"),
		IsActive:     false,
	})

	defs, err := repo.FindActiveTriggerDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, entity.TriggerKey{Source: entity.TriggerSourceEvent, ID: weekly.ID}, def.Key)
	assert.Equal(t, "Jumuah reminder", def.Name)
	assert.Equal(t, "reminder", def.Category)
	assert.Equal(t, entity.ScheduleModeWeekly, def.ScheduleMode)
	assert.Equal(t, []time.Weekday{time.Friday}, def.Weekdays)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, def.InactiveDays)
	assert.Equal(t, "2024-03-01", def.StartDate)
	assert.Equal(t, "2024-03-31", def.EndDate)
	assert.Equal(t, "12:30", def.FixedTime)
	require.NotNil(t, def.Voice)
	require.NotNil(t, def.SoundLocator())
	assert.Equal(t, "https://cdn.example.com/fajr.mp3", *def.SoundLocator())
	assert.NoError(t, def.Validate())
}

func TestTriggerRepository_FindActiveTriggerDefinitions_WithoutVoice(t *testing.T) {
	db := newTestDB(t)
	repo := NewTriggerRepository(db)

	seedEvent(t, db, &model.EventModel{
		Name:         "Silent",
		Type:         "reminder",
		ScheduleMode: string(entity.ScheduleModeDaily),
		TimeMode:     string(entity.TimeModeFixed),
		FixedTime:    strPtr("05:00"),
		IsActive:     true,
	})

	defs, err := repo.FindActiveTriggerDefinitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Nil(t, defs[0].Voice)
	assert.Nil(t, defs[0].SoundLocator())
	assert.Empty(t, defs[0].Weekdays)
}

func TestTriggerRepository_FindOverrides(t *testing.T) {
	db := newTestDB(t)
	repo := NewTriggerRepository(db)
	ctx := context.Background()

	voice := seedVoice(t, db, "Maghrib", "https://cdn.example.com/maghrib.mp3")
	custom := seedEvent(t, db, &model.EventModel{
		Name:         "Maghrib",
		Type:         "prayer",
		VoiceID:      &voice.ID,
		ScheduleMode: string(entity.ScheduleModeDaily),
		TimeMode:     string(entity.TimeModeCustom),
		IsActive:     true,
	})
	inactive := seedEvent(t, db, &model.EventModel{
		Name:         "Old Maghrib",
		Type:         "prayer",
		ScheduleMode: string(entity.ScheduleModeDaily),
		TimeMode:     string(entity.TimeModeCustom),
		IsActive:     false,
	})

	require.NoError(t, db.Create([]*model.EventScheduleModel{
		{EventID: custom.ID, Date: "2024-03-15", Time: "18:42"},
		{EventID: custom.ID, Date: "2024-03-16", Time: "18:43"},
		{EventID: inactive.ID, Date: "2024-03-15", Time: "18:42"},
	}).Error)

	overrides, err := repo.FindOverrides(ctx, "2024-03-15", "18:42")
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, custom.ID, overrides[0].TriggerID)
	assert.Equal(t, "18:42", overrides[0].Time)
	require.NotNil(t, overrides[0].Trigger)
	assert.Equal(t, entity.TimeModeCustom, overrides[0].Trigger.TimeMode)
	require.NotNil(t, overrides[0].Trigger.Voice)
	assert.Equal(t, "Maghrib", overrides[0].Trigger.Voice.Name)

	none, err := repo.FindOverrides(ctx, "2024-03-15", "18:43")
	require.NoError(t, err)
	assert.Empty(t, none)

	forDate, err := repo.FindOverridesForDate(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Len(t, forDate, 2)
}

func TestTriggerRepository_EventScheduleUniquePerDate(t *testing.T) {
	db := newTestDB(t)

	event := seedEvent(t, db, &model.EventModel{
		Name:         "Isha",
		Type:         "prayer",
		ScheduleMode: string(entity.ScheduleModeDaily),
		TimeMode:     string(entity.TimeModeCustom),
		IsActive:     true,
	})

	require.NoError(t, db.Create(&model.EventScheduleModel{EventID: event.ID, Date: "2024-03-15", Time: "20:00"}).Error)
	err := db.Create(&model.EventScheduleModel{EventID: event.ID, Date: "2024-03-15", Time: "20:05"}).Error
	require.Error(t, err)
	assert.True(t, isUniqueConstraintViolation(err))
}

func TestTriggerRepository_PrayerRecords(t *testing.T) {
	db := newTestDB(t)
	repo := NewTriggerRepository(db)
	ctx := context.Background()

	records := []*model.PrayerModel{
		{Name: "Asr", Time: "15:45", SoundFile: "https://cdn.example.com/asr.mp3", Date: "2024-03-15", IsActive: true},
		{Name: "Fajr", Time: "05:10", SoundFile: "https://cdn.example.com/fajr.mp3", Date: "2024-03-15", IsActive: true},
		{Name: "Fajr", Time: "05:11", SoundFile: "https://cdn.example.com/fajr.mp3", Date: "2024-03-16", IsActive: true},
	}
	require.NoError(t, db.Create(records).Error)

	due, err := repo.FindActivePrayerRecords(ctx, "2024-03-15", "05:10")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, entity.TriggerKey{Source: entity.TriggerSourcePrayer, ID: records[1].ID}, due[0].Key)
	assert.Equal(t, entity.ScheduleModeSingleDate, due[0].ScheduleMode)
	assert.Equal(t, entity.CategoryPrayer, due[0].Category)
	require.NotNil(t, due[0].SoundLocator())
	assert.Equal(t, "https://cdn.example.com/fajr.mp3", *due[0].SoundLocator())
	assert.NoError(t, due[0].Validate())

	today, err := repo.FindPrayerRecordsForDate(ctx, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "Fajr", today[0].Name)
	assert.Equal(t, "Asr", today[1].Name)
}

func TestTriggerRepository_NormalisesDriverRenderedDates(t *testing.T) {
	db := newTestDB(t)
	repo := NewTriggerRepository(db)
	ctx := context.Background()

	seedEvent(t, db, &model.EventModel{
		Name:         "Winter halaqa",
		Type:         "class",
		ScheduleMode: string(entity.ScheduleModeWeekly),
		Weekdays:     []int{5},
		StartDate:    strPtr("2024-01-01T00:00:00Z"),
		EndDate:      strPtr("2024-03-31 00:00:00+00:00"),
		TimeMode:     string(entity.TimeModeFixed),
		FixedTime:    strPtr("13:00:00"),
		IsActive:     true,
	})

	defs, err := repo.FindActiveTriggerDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, "2024-01-01", defs[0].StartDate)
	assert.Equal(t, "2024-03-31", defs[0].EndDate)
	assert.Equal(t, "13:00", defs[0].FixedTime)
	assert.NoError(t, defs[0].Validate())
}

func TestCalendarDateAndClock(t *testing.T) {
	dates := map[string]string{
		"2024-01-01":                "2024-01-01",
		"2024-01-01T00:00:00Z":      "2024-01-01",
		"2024-01-01 00:00:00+00:00": "2024-01-01",
		"":                          "",
	}
	for in, want := range dates {
		assert.Equal(t, want, calendarDate(in), in)
	}

	assert.Equal(t, "05:12", clockOf("05:12:00"))
	assert.Equal(t, "05:12", clockOf("05:12"))
	assert.Equal(t, "", clockOf(""))
}
