// Package delivery holds the long-running entry points started by main.
package delivery

import "context"

// Delivery is a component that serves until its fx OnStop hook shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
