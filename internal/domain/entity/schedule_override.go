package entity

// ScheduleOverride is the firing time of a custom-time definition on one date.
// At most one override exists per (TriggerID, Date).
type ScheduleOverride struct {
	ID        int64              `json:"id"`
	TriggerID int64              `json:"trigger_id"`
	Date      string             `json:"date"` // YYYY-MM-DD
	Time      string             `json:"time"` // HH:MM
	Trigger   *TriggerDefinition `json:"-"`    // owning definition when loaded with the override
}
