package broadcast

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"azan/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Realtime.HeartbeatInterval = time.Second
	cfg.Realtime.SendBuffer = 4

	hub := NewHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	t.Cleanup(func() {
		_ = hub.Close()
		server.Close()
	})

	return hub, server
}

func dialHub(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func waitForSessions(t *testing.T, hub *Hub, want int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.SessionCount() == want
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishReachesEveryViewer(t *testing.T) {
	hub, server := newTestHub(t)

	first := dialHub(t, server)
	second := dialHub(t, server)
	waitForSessions(t, hub, 2)

	payload := map[string]any{"id": 7, "name": "Fajr"}
	require.NoError(t, hub.Publish(context.Background(), "azan:trigger", payload))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var frame struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &frame))
		assert.Equal(t, "azan:trigger", frame.Event)
		assert.Equal(t, "Fajr", frame.Data["name"])
	}
}

func TestHub_PublishWithoutViewers(t *testing.T) {
	hub, _ := newTestHub(t)

	assert.NoError(t, hub.Publish(context.Background(), "azan:trigger", map[string]string{"name": "Asr"}))
	assert.Zero(t, hub.SessionCount())
}

func TestHub_ViewerDisconnectIsRemoved(t *testing.T) {
	hub, server := newTestHub(t)

	conn := dialHub(t, server)
	waitForSessions(t, hub, 1)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	waitForSessions(t, hub, 0)
}

func TestHub_CloseDisconnectsViewers(t *testing.T) {
	hub, server := newTestHub(t)

	conn := dialHub(t, server)
	waitForSessions(t, hub, 1)

	require.NoError(t, hub.Close())
	assert.Zero(t, hub.SessionCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnserializablePayload(t *testing.T) {
	hub, _ := newTestHub(t)

	err := hub.Publish(context.Background(), "azan:trigger", make(chan int))
	assert.Error(t, err)
}
