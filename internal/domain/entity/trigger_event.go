package entity

import "time"

// TriggerEvent is emitted once per due definition per tick and fanned out to the
// realtime channel and the push gateway.
type TriggerEvent struct {
	ID           int64         `json:"id"`
	Source       TriggerSource `json:"source"`
	Name         string        `json:"name"`
	Time         string        `json:"time"`
	SoundLocator *string       `json:"soundUrl"`
	Category     string        `json:"category"`
	TriggeredAt  time.Time     `json:"triggeredAt"`
}

// ScheduledTrigger is one entry of the resolved schedule for a day.
type ScheduledTrigger struct {
	ID           int64         `json:"id"`
	Source       TriggerSource `json:"source"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Time         string        `json:"time"`
	VoiceName    string        `json:"voiceName,omitempty"`
	SoundLocator *string       `json:"soundUrl"`
}

// DeliveryReport summarizes one gateway delivery across all batches.
type DeliveryReport struct {
	Registered    int `json:"registered"`
	Skipped       int `json:"skipped"` // structurally invalid tokens
	Batches       int `json:"batches"`
	FailedBatches int `json:"failed_batches"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	Pruned        int `json:"pruned"`
}
