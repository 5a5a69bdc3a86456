// Package broadcast fans realtime frames out to connected websocket viewers,
// optionally relayed across instances through Redis or exported to Pub/Sub.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"azan/config"
	"azan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait        = 10 * time.Second
	maxMessageSize   = 4096
	defaultHeartbeat = 30 * time.Second
	defaultBuffer    = 16
)

// Hub tracks connected viewers and writes every published frame to each of them.
// A viewer whose buffer is full or whose write fails is dropped.
type Hub struct {
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	heartbeat  time.Duration
	sendBuffer int

	mu       sync.RWMutex
	sessions map[*session]struct{}
	closed   bool
}

type session struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

// NewHub creates the in-process viewer hub.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	allowed := cfg.Realtime.AllowedOrigins

	heartbeat := cfg.Realtime.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	sendBuffer := cfg.Realtime.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = defaultBuffer
	}

	return &Hub{
		logger:     logger,
		heartbeat:  heartbeat,
		sendBuffer: sendBuffer,
		sessions:   make(map[*session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}

				return slices.Contains(allowed, r.Header.Get("Origin"))
			},
		},
	}
}

// ServeWS upgrades the request and registers the viewer until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade")
	}

	s := &session{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()

		return errors.New("hub is closed")
	}
	h.sessions[s] = struct{}{}
	count := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("[Realtime] Viewer connected",
		slog.String("session_id", s.id),
		slog.Int("sessions", count),
	)

	go s.writePump()
	go s.readPump()

	return nil
}

// Publish encodes payload as a frame for channel and writes it to every viewer.
func (h *Hub) Publish(_ context.Context, channel string, payload any) error {
	data, err := json.Marshal(service.Frame{Event: channel, Data: payload})
	if err != nil {
		return errors.Wrap(err, "encode realtime frame")
	}

	delivered := h.deliver(data)
	h.logger.Debug("[Realtime] Frame published",
		slog.String("channel", channel),
		slog.Int("viewers", delivered),
	)

	return nil
}

// deliver queues an encoded frame on every session without blocking.
func (h *Hub) deliver(data []byte) int {
	h.mu.RLock()
	var slow []*session
	delivered := 0
	for s := range h.sessions {
		select {
		case s.send <- data:
			delivered++
		default:
			slow = append(slow, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range slow {
		h.logger.Warn("[Realtime] Viewer send buffer full, dropping session",
			slog.String("session_id", s.id),
		)
		s.close()
	}

	return delivered
}

// SessionCount returns the number of connected viewers.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions)
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	sessions := make([]*session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}

	return nil
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	_, ok := h.sessions[s]
	delete(h.sessions, s)
	count := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.logger.Info("[Realtime] Viewer disconnected",
			slog.String("session_id", s.id),
			slog.Int("sessions", count),
		)
	}
}

// close unregisters the session and stops its write pump; the read pump
// exits once the connection is closed by the write pump.
func (s *session) close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.send)
	})
}

// readPump discards client messages and keeps the read deadline fresh on pong.
func (s *session) readPump() {
	defer s.close()

	pongWait := s.hub.heartbeat * 2
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.hub.logger.Debug("[Realtime] Viewer read failed",
					slog.String("session_id", s.id),
					slog.Any("error", err),
				)
			}

			return
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(s.hub.heartbeat)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
		s.close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.hub.logger.Debug("[Realtime] Viewer write failed",
					slog.String("session_id", s.id),
					slog.Any("error", err),
				)

				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
