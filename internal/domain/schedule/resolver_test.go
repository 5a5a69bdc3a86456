package schedule

import (
	"fmt"
	"testing"
	"time"

	"azan/internal/domain/clock"
	"azan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, date, hhmm string) clock.LocalMinute {
	t.Helper()

	day, err := time.Parse(entity.DateLayout, date)
	require.NoError(t, err)

	return clock.LocalMinute{Date: date, Time: hhmm, Weekday: day.Weekday()}
}

func dailyFixed(fixed string, inactive ...time.Weekday) *entity.TriggerDefinition {
	return &entity.TriggerDefinition{
		ID:           1,
		Key:          entity.TriggerKey{Source: entity.TriggerSourceEvent, ID: 1},
		Name:         "Fajr",
		ScheduleMode: entity.ScheduleModeDaily,
		TimeMode:     entity.TimeModeFixed,
		FixedTime:    fixed,
		InactiveDays: inactive,
		IsActive:     true,
	}
}

func TestEvaluate_DailyFixed(t *testing.T) {
	def := dailyFixed("05:12")

	// 2024-01-07 is a Sunday; walk a full week.
	for offset := range 7 {
		date := time.Date(2024, 1, 7+offset, 0, 0, 0, 0, time.UTC).Format(entity.DateLayout)

		t.Run(date, func(t *testing.T) {
			assert.True(t, Evaluate(def, at(t, date, "05:12"), "").Due)
			assert.False(t, Evaluate(def, at(t, date, "05:11"), "").Due)
			assert.False(t, Evaluate(def, at(t, date, "05:13"), "").Due)
		})
	}
}

func TestEvaluate_DailyDecisionFields(t *testing.T) {
	decision := Evaluate(dailyFixed("05:12"), at(t, "2024-01-01", "05:12"), "")

	assert.Equal(t, Decision{Due: true, Time: "05:12", MinuteOfDay: 312, Reason: ReasonDue}, decision)

	decision = Evaluate(dailyFixed("05:12"), at(t, "2024-01-01", "05:13"), "")
	assert.Equal(t, ReasonDifferentTime, decision.Reason)
	assert.Equal(t, 312, decision.MinuteOfDay)
}

func TestEvaluate_InactiveDaysDominateEveryMode(t *testing.T) {
	friday := at(t, "2024-01-05", "13:00")

	daily := dailyFixed("13:00", time.Friday)
	weekly := dailyFixed("13:00", time.Friday)
	weekly.ScheduleMode = entity.ScheduleModeWeekly
	weekly.Weekdays = []time.Weekday{time.Friday}
	ranged := dailyFixed("13:00", time.Friday)
	ranged.ScheduleMode = entity.ScheduleModeDateRange
	ranged.StartDate, ranged.EndDate = "2024-01-01", "2024-01-31"

	for _, def := range []*entity.TriggerDefinition{daily, weekly, ranged} {
		decision := Evaluate(def, friday, "")
		assert.False(t, decision.Due, def.ScheduleMode)
		assert.Equal(t, ReasonExcludedDay, decision.Reason, def.ScheduleMode)
	}

	// The exclusion is only checked once the day is applicable.
	outside := dailyFixed("13:00", time.Friday)
	outside.ScheduleMode = entity.ScheduleModeDateRange
	outside.StartDate, outside.EndDate = "2024-02-01", "2024-02-28"
	assert.Equal(t, ReasonNotApplicable, Evaluate(outside, friday, "").Reason)
}

func TestEvaluate_WeeklyFriday(t *testing.T) {
	def := &entity.TriggerDefinition{
		ID:           2,
		Name:         "Jumu'ah",
		ScheduleMode: entity.ScheduleModeWeekly,
		Weekdays:     []time.Weekday{time.Friday},
		TimeMode:     entity.TimeModeFixed,
		FixedTime:    "13:00",
		IsActive:     true,
	}

	// 2024-01-07 (Sun) .. 2024-01-13 (Sat)
	for offset := range 7 {
		day := time.Date(2024, 1, 7+offset, 0, 0, 0, 0, time.UTC)
		date := day.Format(entity.DateLayout)

		t.Run(day.Weekday().String(), func(t *testing.T) {
			decision := Evaluate(def, at(t, date, "13:00"), "")
			assert.Equal(t, day.Weekday() == time.Friday, decision.Due)
		})
	}
}

func TestEvaluate_WeeklyWithBounds(t *testing.T) {
	def := &entity.TriggerDefinition{
		ScheduleMode: entity.ScheduleModeWeekly,
		Weekdays:     []time.Weekday{time.Monday, time.Wednesday},
		StartDate:    "2024-01-08",
		EndDate:      "2024-01-17",
		TimeMode:     entity.TimeModeFixed,
		FixedTime:    "07:00",
		IsActive:     true,
	}

	tests := []struct {
		date string
		due  bool
	}{
		{date: "2024-01-01", due: false}, // Monday before start
		{date: "2024-01-08", due: true},  // Monday on start
		{date: "2024-01-09", due: false}, // Tuesday
		{date: "2024-01-10", due: true},  // Wednesday
		{date: "2024-01-17", due: true},  // Wednesday on end
		{date: "2024-01-22", due: false}, // Monday after end
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.due, Evaluate(def, at(t, tt.date, "07:00"), "").Due)
		})
	}
}

func TestEvaluate_DateRangeCustomWithoutFallback(t *testing.T) {
	def := &entity.TriggerDefinition{
		ID:           3,
		Name:         "Ramadan Suhoor",
		ScheduleMode: entity.ScheduleModeDateRange,
		StartDate:    "2024-01-01",
		EndDate:      "2024-01-03",
		TimeMode:     entity.TimeModeCustom,
		FixedTime:    "06:10", // must never be used for custom definitions
		IsActive:     true,
	}
	overrides := map[string]string{
		"2024-01-01": "06:00",
		"2024-01-02": "06:05",
	}

	tests := []struct {
		date string
		at   string
		due  bool
	}{
		{date: "2024-01-01", at: "06:00", due: true},
		{date: "2024-01-01", at: "06:05", due: false},
		{date: "2024-01-02", at: "06:05", due: true},
		{date: "2024-01-02", at: "06:00", due: false},
		{date: "2024-01-03", at: "06:00", due: false},
		{date: "2024-01-03", at: "06:10", due: false},
		{date: "2024-01-04", at: "06:00", due: false},
		{date: "2023-12-31", at: "06:00", due: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.date, tt.at), func(t *testing.T) {
			assert.Equal(t, tt.due, Evaluate(def, at(t, tt.date, tt.at), overrides[tt.date]).Due)
		})
	}

	assert.Equal(t, ReasonNoTimeToday, Evaluate(def, at(t, "2024-01-03", "06:10"), "").Reason)
}

func TestEvaluate_DateRangeDayAfterEnd(t *testing.T) {
	def := dailyFixed("18:00")
	def.ScheduleMode = entity.ScheduleModeDateRange
	def.StartDate, def.EndDate = "2024-02-27", "2024-02-29"

	assert.True(t, Evaluate(def, at(t, "2024-02-29", "18:00"), "").Due)
	assert.False(t, Evaluate(def, at(t, "2024-03-01", "18:00"), "").Due)
}

func TestEvaluate_DateRangeMissingBoundsNeverDue(t *testing.T) {
	def := dailyFixed("18:00")
	def.ScheduleMode = entity.ScheduleModeDateRange
	def.StartDate = "2024-01-01"

	assert.Equal(t, ReasonNotApplicable, Evaluate(def, at(t, "2024-01-02", "18:00"), "").Reason)
}

func TestEvaluate_SingleDatePrayerRecord(t *testing.T) {
	record := &entity.TriggerDefinition{
		ID:           9,
		Key:          entity.TriggerKey{Source: entity.TriggerSourcePrayer, ID: 9},
		Name:         "Maghrib",
		ScheduleMode: entity.ScheduleModeSingleDate,
		TimeMode:     entity.TimeModeFixed,
		FixedTime:    "18:21",
		Date:         "2024-05-10",
		IsActive:     true,
	}

	assert.True(t, Evaluate(record, at(t, "2024-05-10", "18:21"), "").Due)
	assert.False(t, Evaluate(record, at(t, "2024-05-11", "18:21"), "").Due)
	assert.False(t, Evaluate(record, at(t, "2024-05-10", "18:22"), "").Due)

	record.IsActive = false
	assert.Equal(t, ReasonInactive, Evaluate(record, at(t, "2024-05-10", "18:21"), "").Reason)
}

func TestEvaluate_InactiveAndUnknown(t *testing.T) {
	def := dailyFixed("05:12")
	def.IsActive = false
	assert.Equal(t, ReasonInactive, Evaluate(def, at(t, "2024-01-01", "05:12"), "").Reason)
	assert.Equal(t, ReasonInactive, Evaluate(nil, at(t, "2024-01-01", "05:12"), "").Reason)

	unknown := dailyFixed("05:12")
	unknown.ScheduleMode = "monthly"
	assert.Equal(t, ReasonUnknownMode, Evaluate(unknown, at(t, "2024-01-01", "05:12"), "").Reason)

	malformed := dailyFixed("5:12")
	decision := Evaluate(malformed, at(t, "2024-01-01", "5:12"), "")
	assert.False(t, decision.Due)
	assert.Equal(t, ReasonMalformedClock, decision.Reason)
}

func TestEvaluate_IsPure(t *testing.T) {
	def := dailyFixed("05:12", time.Tuesday)
	now := at(t, "2024-01-01", "05:12")

	first := Evaluate(def, now, "")
	second := Evaluate(def, now, "")

	assert.Equal(t, first, second)
	assert.Equal(t, []time.Weekday{time.Tuesday}, def.InactiveDays)
}

func TestEffectiveTime(t *testing.T) {
	custom := dailyFixed("")
	custom.TimeMode = entity.TimeModeCustom

	got, reason := EffectiveTime(custom, at(t, "2024-01-01", "00:00"), "04:50")
	assert.Equal(t, "04:50", got)
	assert.Empty(t, reason)

	got, reason = EffectiveTime(dailyFixed("12:30"), at(t, "2024-01-01", "00:00"), "09:00")
	assert.Equal(t, "12:30", got)
	assert.Empty(t, reason)
}
