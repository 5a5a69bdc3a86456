package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"broadcast": map[string]any{
			"pubsub": map[string]any{"topicId": ""},
		},
		"clock": map[string]any{"utcOffsetMinutes": 330},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"BROADCAST_PUBSUB_TOPICID": "broadcast.pubsub.topicId",
		"CLOCK_UTCOFFSETMINUTES":   "clock.utcOffsetMinutes",
		"CLOCK__UTCOFFSETMINUTES":  "clock.utcOffsetMinutes",
		"NOTIFICATION_BATCHSIZE":   "notification.batchsize",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "clock:\n  utcOffsetMinutes: 330\nscheduler:\n  enabled: true\n  tickTimeout: 30s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "azan-test.yaml"), []byte(yaml), 0o600))

	t.Setenv("CLOCK_UTCOFFSETMINUTES", "-180")
	t.Setenv("SCHEDULER_TICKTIMEOUT", "10s")

	cfg, err := LoadWithEnv[Config]("azan-test", dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Clock.UTCOffsetMinutes)
	assert.Equal(t, -180, cfg.Clock.OffsetMinutes())
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.TickTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("absent", t.TempDir())
	assert.ErrorContains(t, err, "absent.yaml not found")
}
