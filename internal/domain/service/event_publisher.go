package service

import (
	"context"
)

// Broadcaster publishes payloads to currently connected realtime viewers.
// Publish is fire-and-forget: viewers connecting later miss the message.
type Broadcaster interface {
	// Publish delivers payload on channel to every connected viewer.
	Publish(ctx context.Context, channel string, payload any) error

	// Close releases any resources held by the broadcaster
	Close() error
}

// Frame is the wire shape sent to realtime viewers.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
