package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "05:12", want: 312},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "5:12", wantErr: true},
		{in: "05-12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriggerDefinition_Validate(t *testing.T) {
	base := func() *TriggerDefinition {
		return &TriggerDefinition{
			Name:         "Asr",
			ScheduleMode: ScheduleModeDaily,
			TimeMode:     TimeModeFixed,
			FixedTime:    "15:45",
			IsActive:     true,
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *TriggerDefinition)
		wantErr bool
	}{
		{name: "daily fixed", mutate: func(*TriggerDefinition) {}},
		{name: "bad fixed time", mutate: func(d *TriggerDefinition) { d.FixedTime = "25:00" }, wantErr: true},
		{name: "custom needs no fixed time", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode, d.TimeMode, d.FixedTime = ScheduleModeDateRange, TimeModeCustom, ""
			d.StartDate, d.EndDate = "2024-01-01", "2024-01-03"
		}},
		{name: "weekly without weekdays", mutate: func(d *TriggerDefinition) { d.ScheduleMode = ScheduleModeWeekly }, wantErr: true},
		{name: "weekly with one bound", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeWeekly
			d.Weekdays = []time.Weekday{time.Friday}
			d.StartDate = "2024-01-01"
		}},
		{name: "weekly with malformed bounds", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeWeekly
			d.Weekdays = []time.Weekday{time.Friday}
			d.StartDate, d.EndDate = "2024-1-1", "2024-02-01"
		}, wantErr: true},
		{name: "daily ignores stray bound", mutate: func(d *TriggerDefinition) { d.EndDate = "2024-01-31" }},
		{name: "date range without end", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeDateRange
			d.StartDate = "2024-01-01"
		}, wantErr: true},
		{name: "start after end", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeDateRange
			d.StartDate, d.EndDate = "2024-02-01", "2024-01-01"
		}, wantErr: true},
		{name: "inactive day out of range", mutate: func(d *TriggerDefinition) { d.InactiveDays = []time.Weekday{7} }, wantErr: true},
		{name: "single date", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeSingleDate
			d.Date = "2024-05-10"
		}},
		{name: "single date bad date", mutate: func(d *TriggerDefinition) {
			d.ScheduleMode = ScheduleModeSingleDate
			d.Date = "2024-13-10"
		}, wantErr: true},
		{name: "unknown mode", mutate: func(d *TriggerDefinition) { d.ScheduleMode = "hourly" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base()
			tt.mutate(def)

			err := def.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefinition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTriggerDefinition_SoundLocator(t *testing.T) {
	def := &TriggerDefinition{}
	assert.Nil(t, def.SoundLocator())

	def.SoundFile = "https://cdn.example.com/legacy.mp3"
	assert.Equal(t, "https://cdn.example.com/legacy.mp3", *def.SoundLocator())

	def.Voice = &SoundAsset{Name: "Makkah", Locator: "https://cdn.example.com/makkah.mp3"}
	assert.Equal(t, "https://cdn.example.com/makkah.mp3", *def.SoundLocator())
}
