// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strconv"
	"time"
)

// ScheduleMode is the recurrence family a trigger definition belongs to.
type ScheduleMode string

const (
	ScheduleModeDaily     ScheduleMode = "daily"
	ScheduleModeWeekly    ScheduleMode = "weekly"
	ScheduleModeDateRange ScheduleMode = "date_range"
	// ScheduleModeSingleDate is the legacy prayer record: one calendar date, one fixed time.
	ScheduleModeSingleDate ScheduleMode = "single_date"
)

// TimeMode tells whether the firing time is fixed or looked up per date.
type TimeMode string

const (
	TimeModeFixed  TimeMode = "fixed"
	TimeModeCustom TimeMode = "custom"
)

// TriggerSource identifies which table a definition was loaded from.
type TriggerSource string

const (
	TriggerSourceEvent  TriggerSource = "event"
	TriggerSourcePrayer TriggerSource = "prayer"
)

// CategoryPrayer is the category of legacy prayer records.
const CategoryPrayer = "prayer"

// TriggerKey is the identity used to deduplicate definitions within a tick.
type TriggerKey struct {
	Source TriggerSource
	ID     int64
}

func (k TriggerKey) String() string {
	return string(k.Source) + ":" + strconv.FormatInt(k.ID, 10)
}

// TriggerDefinition is a configured recurring (or one-shot) rule describing when
// an audio/notification event fires. Legacy prayer records are represented with
// ScheduleModeSingleDate and an inline sound locator.
type TriggerDefinition struct {
	Key          TriggerKey     `json:"-"`
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	ScheduleMode ScheduleMode   `json:"schedule_mode"`
	TimeMode     TimeMode       `json:"time_mode"`
	FixedTime    string         `json:"fixed_time,omitempty"`    // HH:MM
	Weekdays     []time.Weekday `json:"weekdays,omitempty"`      // weekly only
	InactiveDays []time.Weekday `json:"inactive_days,omitempty"` // excluded regardless of mode
	StartDate    string         `json:"start_date,omitempty"`    // YYYY-MM-DD, inclusive
	EndDate      string         `json:"end_date,omitempty"`      // YYYY-MM-DD, inclusive
	Date         string         `json:"date,omitempty"`          // single_date only
	IsActive     bool           `json:"is_active"`
	Voice        *SoundAsset    `json:"voice,omitempty"`
	SoundFile    string         `json:"sound_file,omitempty"` // legacy inline locator
}

// SoundLocator returns the playable audio URL, or nil when the definition has none.
func (d *TriggerDefinition) SoundLocator() *string {
	if d.Voice != nil && d.Voice.Locator != "" {
		locator := d.Voice.Locator
		return &locator
	}
	if d.SoundFile != "" {
		locator := d.SoundFile
		return &locator
	}

	return nil
}

// HasWeekday reports whether weekday is in the weekly selection.
func (d *TriggerDefinition) HasWeekday(weekday time.Weekday) bool {
	return containsWeekday(d.Weekdays, weekday)
}

// IsExcludedOn reports whether weekday is one of the inactive days.
func (d *TriggerDefinition) IsExcludedOn(weekday time.Weekday) bool {
	return containsWeekday(d.InactiveDays, weekday)
}

// Validate checks the invariants a definition must satisfy to be evaluated.
// Date bounds are only checked where the schedule mode reads them: daily
// ignores them and weekly uses them only when both are set.
func (d *TriggerDefinition) Validate() error {
	switch d.ScheduleMode {
	case ScheduleModeDaily:
	case ScheduleModeWeekly:
		if len(d.Weekdays) == 0 {
			return fmt.Errorf("%w: weekly schedule needs at least one weekday", ErrInvalidDefinition)
		}
		if err := validateWeekdays(d.Weekdays); err != nil {
			return err
		}
		if d.StartDate != "" && d.EndDate != "" {
			if err := validateBounds(d.StartDate, d.EndDate); err != nil {
				return err
			}
		}
	case ScheduleModeDateRange:
		if d.StartDate == "" || d.EndDate == "" {
			return fmt.Errorf("%w: date_range needs start and end date", ErrInvalidDefinition)
		}
		if err := validateBounds(d.StartDate, d.EndDate); err != nil {
			return err
		}
	case ScheduleModeSingleDate:
		if !IsDate(d.Date) {
			return fmt.Errorf("%w: invalid date %q", ErrInvalidDefinition, d.Date)
		}
		if d.TimeMode != TimeModeFixed {
			return fmt.Errorf("%w: single date records use a fixed time", ErrInvalidDefinition)
		}
	default:
		return fmt.Errorf("%w: unknown schedule mode %q", ErrInvalidDefinition, d.ScheduleMode)
	}

	switch d.TimeMode {
	case TimeModeFixed:
		if _, err := ParseClock(d.FixedTime); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
	case TimeModeCustom:
	default:
		return fmt.Errorf("%w: unknown time mode %q", ErrInvalidDefinition, d.TimeMode)
	}

	return validateWeekdays(d.InactiveDays)
}

func validateBounds(start, end string) error {
	if !IsDate(start) || !IsDate(end) {
		return fmt.Errorf("%w: invalid date bounds %q..%q", ErrInvalidDefinition, start, end)
	}
	if start > end {
		return fmt.Errorf("%w: start date %s after end date %s", ErrInvalidDefinition, start, end)
	}

	return nil
}

func containsWeekday(days []time.Weekday, weekday time.Weekday) bool {
	for _, day := range days {
		if day == weekday {
			return true
		}
	}

	return false
}

func validateWeekdays(days []time.Weekday) error {
	for _, day := range days {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidDefinition, day)
		}
	}

	return nil
}
