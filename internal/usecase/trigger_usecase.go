// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"azan/internal/domain/clock"
	"azan/internal/domain/entity"
)

// TickResult describes one dispatcher pass.
type TickResult struct {
	TickID string                 `json:"tick_id"`
	Minute clock.LocalMinute      `json:"minute"`
	Events []*entity.TriggerEvent `json:"events"`
	// Repeated is set when the minute was already evaluated and nothing was emitted.
	Repeated bool `json:"repeated"`
}

// DaySchedule is the resolved list of triggers firing on one local date.
type DaySchedule struct {
	Date     string                     `json:"date"`
	Weekday  time.Weekday               `json:"weekday"`
	Timezone string                     `json:"timezone"`
	Triggers []*entity.ScheduledTrigger `json:"triggers"`
}

// TriggerUsecase is the per-minute trigger engine.
type TriggerUsecase interface {
	// Tick evaluates every definition at the local minute of instant and fans
	// the due ones out. Delivery to devices continues after Tick returns.
	Tick(ctx context.Context, instant time.Time) (*TickResult, error)

	// TodaySchedule resolves the triggers firing on the current local date.
	TodaySchedule(ctx context.Context) (*DaySchedule, error)

	// Drain waits for detached deliveries started by earlier ticks.
	Drain(ctx context.Context) error
}
