// Package schedule decides whether a trigger definition is due at a local minute.
package schedule

import (
	"azan/internal/domain/clock"
	"azan/internal/domain/entity"
)

// Reason explains a Decision. It is used for debug logging only.
type Reason string

const (
	ReasonDue            Reason = "due"
	ReasonInactive       Reason = "inactive"
	ReasonNotApplicable  Reason = "not_applicable"
	ReasonExcludedDay    Reason = "excluded_weekday"
	ReasonNoTimeToday    Reason = "no_time_today"
	ReasonDifferentTime  Reason = "different_time"
	ReasonUnknownMode    Reason = "unknown_mode"
	ReasonMalformedClock Reason = "malformed_time"
)

// Decision is the outcome of evaluating one definition at one minute.
type Decision struct {
	Due bool
	// Time is the effective HH:MM for the day, empty when there is none.
	Time string
	// MinuteOfDay is Time as minutes since midnight, -1 when Time is empty.
	MinuteOfDay int
	Reason      Reason
}

// Evaluate reports whether def is due at now. overrideTime is the override for
// now.Date when def uses custom times, or "" when no override exists.
//
// Applicability (schedule mode, date bounds) is checked first, then the
// inactive-day exclusion, then the effective time is compared by exact HH:MM.
func Evaluate(def *entity.TriggerDefinition, now clock.LocalMinute, overrideTime string) Decision {
	effective, reason := EffectiveTime(def, now, overrideTime)
	if reason != "" {
		return Decision{MinuteOfDay: -1, Reason: reason}
	}

	minuteOfDay, err := entity.ParseClock(effective)
	if err != nil {
		return Decision{Time: effective, MinuteOfDay: -1, Reason: ReasonMalformedClock}
	}

	if effective != now.Time {
		return Decision{Time: effective, MinuteOfDay: minuteOfDay, Reason: ReasonDifferentTime}
	}

	return Decision{Due: true, Time: effective, MinuteOfDay: minuteOfDay, Reason: ReasonDue}
}

// EffectiveTime resolves the HH:MM def fires at on day.Date, ignoring day.Time.
// A non-empty Reason means the definition has no trigger time that day.
func EffectiveTime(def *entity.TriggerDefinition, day clock.LocalMinute, overrideTime string) (string, Reason) {
	if def == nil || !def.IsActive {
		return "", ReasonInactive
	}

	applicable, known := isApplicable(def, day)
	if !known {
		return "", ReasonUnknownMode
	}
	if !applicable {
		return "", ReasonNotApplicable
	}

	if def.IsExcludedOn(day.Weekday) {
		return "", ReasonExcludedDay
	}

	switch def.TimeMode {
	case entity.TimeModeFixed:
		if def.FixedTime == "" {
			return "", ReasonNoTimeToday
		}

		return def.FixedTime, ""
	case entity.TimeModeCustom:
		// No fallback to FixedTime: a custom definition without an override
		// for the day does not fire that day.
		if overrideTime == "" {
			return "", ReasonNoTimeToday
		}

		return overrideTime, ""
	default:
		return "", ReasonUnknownMode
	}
}

func isApplicable(def *entity.TriggerDefinition, day clock.LocalMinute) (applicable, known bool) {
	switch def.ScheduleMode {
	case entity.ScheduleModeDaily:
		return true, true
	case entity.ScheduleModeWeekly:
		if !def.HasWeekday(day.Weekday) {
			return false, true
		}
		if def.StartDate != "" && def.EndDate != "" {
			return withinBounds(day.Date, def.StartDate, def.EndDate), true
		}

		return true, true
	case entity.ScheduleModeDateRange:
		if def.StartDate == "" || def.EndDate == "" {
			return false, true
		}

		return withinBounds(day.Date, def.StartDate, def.EndDate), true
	case entity.ScheduleModeSingleDate:
		return def.Date == day.Date, true
	default:
		return false, false
	}
}

// withinBounds compares zero-padded ISO dates lexicographically.
func withinBounds(date, start, end string) bool {
	return start <= date && date <= end
}
