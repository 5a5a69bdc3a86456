package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"azan/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	base := slog.New(slog.DiscardHandler)

	quiet := newGormSlogLogger(base, &config.Config{})
	sql, params := quiet.ParamsFilter(context.Background(), "SELECT * FROM devices WHERE token = ?", "secret-token")
	assert.Equal(t, "SELECT * FROM devices WHERE token = ?", sql)
	assert.Nil(t, params)

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	verbose := newGormSlogLogger(base, debugCfg)
	_, params = verbose.ParamsFilter(context.Background(), "SELECT 1", "secret-token")
	assert.Equal(t, []any{"secret-token"}, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = 10 * time.Millisecond
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
	rows := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), rows, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len(), "record not found is not logged")

	l.Trace(ctx, time.Now().Add(-time.Second), rows, nil)
	assert.Contains(t, buf.String(), "Slow query")
	assert.Contains(t, buf.String(), "component=gorm")
}
