package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWatch_Observe(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatch{
		logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnAt: 50 * time.Millisecond,
	}
	ctx := context.Background()

	w.observe(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Zero(t, buf.Len(), "no new waits means no log")

	w.observe(ctx,
		sql.DBStats{WaitCount: 1, WaitDuration: 10 * time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond, InUse: 4},
	)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, float64(2), record["waits"])
	assert.Equal(t, float64(4), record["in_use"])
	assert.Equal(t, float64(50*time.Millisecond), record["avg_wait"])
}
