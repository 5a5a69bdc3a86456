package service

import (
	"context"
	"log/slog"
)

// ErrorReporter receives failures from background work that has no caller to return them to.
type ErrorReporter interface {
	Report(ctx context.Context, component, operation string, err error, attrs ...slog.Attr)
}
