package logs

import (
	"context"
	"log/slog"
	"sync/atomic"

	"azan/internal/domain/service"
)

// Reporter is the slog-backed ErrorReporter. It also counts reports so the
// health endpoint can expose them.
type Reporter struct {
	logger *slog.Logger
	count  atomic.Int64
}

// NewReporter creates a Reporter that logs at error level
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// NewErrorReporter exposes the Reporter as a service.ErrorReporter for Fx
func NewErrorReporter(r *Reporter) service.ErrorReporter {
	return r
}

// Report logs err with component and operation attributes
func (r *Reporter) Report(ctx context.Context, component, operation string, err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}
	r.count.Add(1)

	fields := make([]slog.Attr, 0, len(attrs)+3)
	fields = append(fields,
		slog.String("component", component),
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	fields = append(fields, attrs...)

	r.logger.LogAttrs(ctx, slog.LevelError, operation+" failed", fields...)
}

// Count returns the number of reported failures since start
func (r *Reporter) Count() int64 {
	return r.count.Load()
}
