// Package clock converts instants into local calendar minutes under a fixed UTC offset.
//
// Named time zones are deliberately not consulted: the offset is added to the
// UTC instant and calendar fields are re-derived from the shifted value.
package clock

import (
	"fmt"
	"time"

	"azan/internal/domain/entity"
)

const (
	// MaxOffsetMinutes is the widest offset in use (UTC+14:00 / UTC-14:00).
	MaxOffsetMinutes = 14 * 60
)

// LocalMinute is one calendar minute in the configured local time.
type LocalMinute struct {
	Date    string       `json:"date"`    // YYYY-MM-DD
	Time    string       `json:"time"`    // HH:MM
	Weekday time.Weekday `json:"weekday"` // 0 = Sunday
}

func (m LocalMinute) String() string {
	return m.Date + " " + m.Time
}

// ClampOffset bounds offsetMinutes to ±14h.
func ClampOffset(offsetMinutes int) int {
	return max(-MaxOffsetMinutes, min(MaxOffsetMinutes, offsetMinutes))
}

// Resolve returns the local calendar minute of instant shifted by offsetMinutes.
func Resolve(instant time.Time, offsetMinutes int) LocalMinute {
	shifted := instant.UTC().Add(time.Duration(ClampOffset(offsetMinutes)) * time.Minute)

	return LocalMinute{
		Date:    shifted.Format(entity.DateLayout),
		Time:    shifted.Format(entity.ClockLayout),
		Weekday: shifted.Weekday(),
	}
}

// Resolver yields the current local minute.
type Resolver struct {
	offsetMinutes int
	now           func() time.Time
}

// NewResolver creates a Resolver for the given offset. A nil now uses time.Now.
func NewResolver(offsetMinutes int, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}

	return &Resolver{
		offsetMinutes: ClampOffset(offsetMinutes),
		now:           now,
	}
}

// Now returns the current instant and its local minute.
func (r *Resolver) Now() (time.Time, LocalMinute) {
	instant := r.now()

	return instant, Resolve(instant, r.offsetMinutes)
}

// OffsetMinutes returns the effective (clamped) offset.
func (r *Resolver) OffsetMinutes() int {
	return r.offsetMinutes
}

// Label renders the offset as UTC+hh:mm.
func (r *Resolver) Label() string {
	sign := '+'
	offset := r.offsetMinutes
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/60, offset%60)
}
