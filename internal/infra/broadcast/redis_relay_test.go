package broadcast

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"azan/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Redis when REDIS_ADDR is set.
func TestRedisRelay_ForwardsToLocalHub(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	hub, server := newTestHub(t)
	relay := NewRedisRelay(&config.RedisConfig{Addr: addr, Channel: "azan:test:" + t.Name()}, hub, hub.logger)

	ctx := context.Background()
	require.NoError(t, relay.Start(ctx))
	t.Cleanup(func() { _ = relay.Close() })

	conn := dialHub(t, server)
	waitForSessions(t, hub, 1)

	require.NoError(t, relay.Publish(ctx, "live:announcement", map[string]string{"title": "Live Announcement"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	assert.Equal(t, "live:announcement", frame.Event)
	assert.Equal(t, "Live Announcement", frame.Data["title"])

}
